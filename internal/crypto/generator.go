package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
)

const (
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	DigitChars     = "0123456789"

	// SymbolChars leaves out quotes, backslash and backtick so results paste cleanly into shells.
	SymbolChars = "!#$%&()*+,-./:;?@[]^_{|}~"

	DefaultLength = 12
)

var (
	ErrInvalidArgument = errors.New("invalid argument")

	ErrInvalidLength      = fmt.Errorf("%w: password length must be greater than 0", ErrInvalidArgument)
	ErrNoCharacterTypes   = fmt.Errorf("%w: all character types are disabled, enable at least one", ErrInvalidArgument)
	ErrLengthInsufficient = fmt.Errorf("%w: password length is less than the number of character groups", ErrInvalidArgument)
	ErrEmptyGroup         = fmt.Errorf("%w: character group is empty", ErrInvalidArgument)
)

// randReader is swapped out in tests to simulate entropy failures.
var randReader io.Reader = rand.Reader

// Group is a named set of characters a password may draw from.
type Group struct {
	Name  string
	Chars []rune
}

// NewGroup builds a Group from the characters of s.
func NewGroup(name, s string) Group {
	return Group{Name: name, Chars: []rune(s)}
}

// GeneratorOptions selects which built-in groups a password is built from.
type GeneratorOptions struct {
	Length    int
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool

	// SymbolSet replaces SymbolChars when non-empty.
	SymbolSet string
}

// DefaultOptions returns 12 characters with all types enabled.
func DefaultOptions() GeneratorOptions {
	return GeneratorOptions{
		Length:    DefaultLength,
		Uppercase: true,
		Lowercase: true,
		Numbers:   true,
		Symbols:   true,
	}
}

// Groups returns the enabled groups in a fixed order: lowercase, uppercase, digits, symbols.
func (o GeneratorOptions) Groups() []Group {
	var groups []Group
	if o.Lowercase {
		groups = append(groups, NewGroup("lowercase", LowercaseChars))
	}
	if o.Uppercase {
		groups = append(groups, NewGroup("uppercase", UppercaseChars))
	}
	if o.Numbers {
		groups = append(groups, NewGroup("digits", DigitChars))
	}
	if o.Symbols {
		symbols := o.SymbolSet
		if symbols == "" {
			symbols = SymbolChars
		}
		groups = append(groups, NewGroup("symbols", symbols))
	}
	return groups
}

// Generate creates a single password from the given options.
func Generate(opts GeneratorOptions) (string, error) {
	return GeneratePassword(opts.Length, opts.Groups())
}

// GenerateBatch creates count passwords, each generated independently.
// A count below 1 yields an empty batch once the groups are known to be usable.
func GenerateBatch(count int, opts GeneratorOptions) ([]string, error) {
	groups := opts.Groups()
	if len(groups) == 0 {
		return nil, ErrNoCharacterTypes
	}
	if count < 1 {
		return []string{}, nil
	}

	passwords := make([]string, 0, count)
	for i := 0; i < count; i++ {
		pw, err := GeneratePassword(opts.Length, groups)
		if err != nil {
			return nil, err
		}
		passwords = append(passwords, pw)
	}
	return passwords, nil
}

// GeneratePassword returns a password of the given length containing at least one
// character from every group. The remaining positions are drawn uniformly from the
// union of all groups and the result is shuffled with crypto/rand.
func GeneratePassword(length int, groups []Group) (string, error) {
	if length <= 0 {
		return "", ErrInvalidLength
	}
	if len(groups) == 0 {
		return "", ErrNoCharacterTypes
	}
	if length < len(groups) {
		return "", fmt.Errorf("%w (length %d, groups %d)", ErrLengthInsufficient, length, len(groups))
	}

	var pool []rune
	for _, g := range groups {
		if len(g.Chars) == 0 {
			return "", fmt.Errorf("%w: %q", ErrEmptyGroup, g.Name)
		}
		pool = append(pool, g.Chars...)
	}

	result := make([]rune, length)

	// One from each group first.
	for i, g := range groups {
		ch, err := randChar(g.Chars)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	for i := len(groups); i < length; i++ {
		ch, err := randChar(pool)
		if err != nil {
			return "", err
		}
		result[i] = ch
	}

	if err := secureShuffle(result); err != nil {
		return "", err
	}

	return string(result), nil
}

// randIndex returns a uniform index in [0, n).
func randIndex(n int) (int, error) {
	v, err := rand.Int(randReader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("reading random source: %w", err)
	}
	return int(v.Int64()), nil
}

func randChar(charset []rune) (rune, error) {
	i, err := randIndex(len(charset))
	if err != nil {
		return 0, err
	}
	return charset[i], nil
}

// secureShuffle performs a Fisher-Yates shuffle; every permutation is equally likely.
func secureShuffle(data []rune) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := randIndex(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}
