package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/vaultpass/vaultpass-tools/internal/clipboard"
	"github.com/vaultpass/vaultpass-tools/internal/config"
	"github.com/vaultpass/vaultpass-tools/internal/handler"
	"github.com/vaultpass/vaultpass-tools/internal/model"
	"github.com/vaultpass/vaultpass-tools/internal/service"
)

// logLevel backs the default logger; stdout stays reserved for passwords.
var logLevel = new(slog.LevelVar)

func main() {
	logLevel.Set(slog.LevelWarn)
	slog.SetDefault(config.NewLogger(os.Stderr, logLevel))

	cfg := config.Load()
	logLevel.Set(cfg.LogLevel)

	if err := newRootCmd(cfg).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(cfg config.Config) *cobra.Command {
	req := model.GenerateRequest{Length: cfg.Length, Count: cfg.Count, Symbols: cfg.Symbols}
	var verbose bool

	cmd := &cobra.Command{
		Use:   "passgen",
		Short: "Generate secure passwords",
		Long: `passgen generates random passwords that contain at least one character
from every enabled category (lowercase, uppercase, digits, symbols).

Defaults can be set with PASSGEN_LENGTH, PASSGEN_COUNT and PASSGEN_SYMBOLS,
either in the environment or in a .env file.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logLevel.Set(slog.LevelDebug)
			}

			h := handler.NewGeneratorHandler(service.NewGeneratorService(clipboard.System{}), cmd.OutOrStdout())
			if err := h.Run(req); err != nil {
				slog.Error("password generation failed", "error", err)
				return err
			}
			return nil
		},
	}

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintf(c.ErrOrStderr(), "Error: %v\n\n%s", err, c.UsageString())
		return err
	})

	f := cmd.Flags()
	f.IntVarP(&req.Length, "length", "l", req.Length, "password length")
	f.IntVarP(&req.Count, "count", "c", req.Count, "how many passwords to generate")
	f.BoolVar(&req.NoUppercase, "no-uppercase", false, "exclude uppercase letters")
	f.BoolVar(&req.NoLowercase, "no-lowercase", false, "exclude lowercase letters")
	f.BoolVar(&req.NoDigits, "no-digits", false, "exclude digits")
	f.BoolVar(&req.NoSymbols, "no-symbols", false, "exclude symbols")
	f.BoolVar(&req.Copy, "copy", false, "copy the first password to the clipboard")
	f.BoolVar(&req.Hash, "hash", false, "print an argon2id hash of each password")
	f.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")

	return cmd
}
