// Package game implements rock-paper-scissors rules.
package game

import (
	"errors"
	"strings"
)

// ErrInvalidChoice is returned by ParseChoice for anything other than "1", "2" or "3".
var ErrInvalidChoice = errors.New("invalid choice: enter 1, 2 or 3")

// Choice is a move in the game.
type Choice int

const (
	Rock Choice = iota + 1
	Paper
	Scissors
)

// Choices lists every move in menu order.
var Choices = []Choice{Rock, Paper, Scissors}

func (c Choice) String() string {
	switch c {
	case Rock:
		return "Rock"
	case Paper:
		return "Paper"
	case Scissors:
		return "Scissors"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is one of the three moves.
func (c Choice) Valid() bool {
	return c >= Rock && c <= Scissors
}

// beats maps each move to the one it defeats.
var beats = map[Choice]Choice{
	Rock:     Scissors,
	Scissors: Paper,
	Paper:    Rock,
}

// Outcome is the result of comparing two moves.
type Outcome int

const (
	Tie Outcome = iota
	FirstWins
	SecondWins
)

func (o Outcome) String() string {
	switch o {
	case Tie:
		return "tie"
	case FirstWins:
		return "first-wins"
	case SecondWins:
		return "second-wins"
	default:
		return "unknown"
	}
}

// Resolve compares first against second.
func Resolve(first, second Choice) Outcome {
	if first == second {
		return Tie
	}
	if beats[first] == second {
		return FirstWins
	}
	return SecondWins
}

// Source is the randomness used to pick the opponent's move.
// *math/rand/v2.Rand satisfies it.
type Source interface {
	IntN(n int) int
}

// RandomChoice picks a move uniformly at random.
func RandomChoice(src Source) Choice {
	return Choices[src.IntN(len(Choices))]
}

// ParseChoice maps menu input to a move.
func ParseChoice(input string) (Choice, error) {
	switch strings.TrimSpace(input) {
	case "1":
		return Rock, nil
	case "2":
		return Paper, nil
	case "3":
		return Scissors, nil
	default:
		return 0, ErrInvalidChoice
	}
}

// Round is one played round.
type Round struct {
	Player  Choice
	CPU     Choice
	Outcome Outcome // from the player's point of view
}

// Play resolves a round between the player and a CPU move drawn from src.
func Play(player Choice, src Source) Round {
	cpu := RandomChoice(src)
	return Round{Player: player, CPU: cpu, Outcome: Resolve(player, cpu)}
}
