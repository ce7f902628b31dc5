package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vaultpass/vaultpass-tools/internal/config"
	"github.com/vaultpass/vaultpass-tools/internal/handler"
)

// errInterrupted carries exit status 1 after the interrupt message was printed.
var errInterrupted = errors.New("interrupted")

func main() {
	level := new(slog.LevelVar)
	level.Set(slog.LevelWarn)
	slog.SetDefault(config.NewLogger(os.Stderr, level))

	cfg := config.Load()
	level.Set(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd(rng *rand.Rand) *cobra.Command {
	var demo bool

	cmd := &cobra.Command{
		Use:   "rps",
		Short: "Play rock-paper-scissors against the CPU",
		Long: `rps plays one round of rock-paper-scissors on the console.
Pick 1 (Rock), 2 (Paper) or 3 (Scissors); the CPU picks at random.

Use --demo to play a non-interactive round with a random move.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			h := handler.NewGameHandler(cmd.InOrStdin(), cmd.OutOrStdout(), rng)

			if demo {
				h.PlayDemo()
				return nil
			}

			if err := h.PlayInteractive(cmd.Context()); err != nil {
				if !errors.Is(err, handler.ErrInterrupted) {
					slog.Error("game aborted", "error", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "\nInterrupted by user.")
				cmd.SilenceErrors = true
				return errInterrupted
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&demo, "demo", false, "play one non-interactive round with a random move")

	return cmd
}
