package handler

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/vaultpass/vaultpass-tools/internal/game"
)

// ErrInterrupted is returned when interactive play ends before a valid move is read.
var ErrInterrupted = errors.New("interrupted by user")

const menu = `Choose an option (type the number):
  1) Rock
  2) Paper
  3) Scissors
Your choice: `

// GameHandler drives rock-paper-scissors on a console.
type GameHandler struct {
	in  io.Reader
	out io.Writer
	rng game.Source
}

// NewGameHandler creates a GameHandler. rng drives both the CPU and demo moves.
func NewGameHandler(in io.Reader, out io.Writer, rng game.Source) *GameHandler {
	return &GameHandler{in: in, out: out, rng: rng}
}

// PlayInteractive prompts until a valid move is entered and plays one round.
// It returns ErrInterrupted when ctx is cancelled or input ends.
func (h *GameHandler) PlayInteractive(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	lines := make(chan string)
	readErr := make(chan error, 1)

	// Scanning runs apart from the prompt loop so a signal can cut a blocked read short.
	go func() {
		sc := bufio.NewScanner(h.in)
		for sc.Scan() {
			select {
			case lines <- sc.Text():
			case <-ctx.Done():
				return
			}
		}
		if err := sc.Err(); err != nil {
			readErr <- err
			return
		}
		readErr <- io.EOF
	}()

	for {
		fmt.Fprint(h.out, menu)

		select {
		case <-ctx.Done():
			return ErrInterrupted
		case err := <-readErr:
			if errors.Is(err, io.EOF) {
				return ErrInterrupted
			}
			return fmt.Errorf("%w: reading input: %v", ErrInterrupted, err)
		case line := <-lines:
			choice, err := game.ParseChoice(line)
			if err != nil {
				slog.Debug("rejected menu input", "input", line)
				fmt.Fprint(h.out, "Invalid input. Please enter 1, 2 or 3.\n\n")
				continue
			}
			h.printRound(game.Play(choice, h.rng))
			return nil
		}
	}
}

// PlayDemo plays one round with a random player move without reading input.
func (h *GameHandler) PlayDemo() {
	fmt.Fprint(h.out, "Demo mode: generating a sample round...\n\n")
	h.printRound(game.Play(game.RandomChoice(h.rng), h.rng))
}

func (h *GameHandler) printRound(r game.Round) {
	fmt.Fprintln(h.out, "\nResults:")
	fmt.Fprintf(h.out, "  You chose: %s\n", r.Player)
	fmt.Fprintf(h.out, "  CPU chose: %s\n\n", r.CPU)

	switch r.Outcome {
	case game.Tie:
		fmt.Fprintln(h.out, "It's a tie!")
	case game.FirstWins:
		fmt.Fprintln(h.out, "You win!")
	default:
		fmt.Fprintln(h.out, "The CPU wins.")
	}
}
