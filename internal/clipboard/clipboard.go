// Package clipboard copies text to the system clipboard on a best-effort basis.
package clipboard

import (
	"errors"
	"fmt"
	"log/slog"

	atotto "github.com/atotto/clipboard"
)

// ErrUnavailable is returned when the platform has no usable clipboard utility.
var ErrUnavailable = errors.New("no clipboard utility available")

// Copier places text on a clipboard.
type Copier interface {
	Copy(text string) error
}

// System writes to the native clipboard (pbcopy, xclip, xsel, wl-copy, Windows API).
type System struct{}

// Copy writes text to the system clipboard.
func (System) Copy(text string) error {
	if atotto.Unsupported {
		return ErrUnavailable
	}
	if err := atotto.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}

// Attempt copies text with c, turning a panic inside the copier into an error.
func Attempt(c Copier, text string) (err error) {
	if c == nil {
		return ErrUnavailable
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("clipboard copy panicked: %v", r)
		}
	}()

	return c.Copy(text)
}

// TryCopy copies text with c and reports whether it succeeded. It never panics
// and never returns an error; failures are logged at debug level.
func TryCopy(c Copier, text string) bool {
	if err := Attempt(c, text); err != nil {
		slog.Debug("clipboard copy failed", "error", err)
		return false
	}
	return true
}
