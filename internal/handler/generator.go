package handler

import (
	"errors"
	"fmt"
	"io"

	"github.com/vaultpass/vaultpass-tools/internal/crypto"
	"github.com/vaultpass/vaultpass-tools/internal/model"
	"github.com/vaultpass/vaultpass-tools/internal/service"
)

// GeneratorHandler renders passgen results to a console.
type GeneratorHandler struct {
	service *service.GeneratorService
	out     io.Writer
}

// NewGeneratorHandler creates a new GeneratorHandler writing to out.
func NewGeneratorHandler(svc *service.GeneratorService, out io.Writer) *GeneratorHandler {
	return &GeneratorHandler{service: svc, out: out}
}

// Run generates the requested passwords and prints them as a numbered list.
// Invalid arguments are reported on out and are not returned as errors.
func (h *GeneratorHandler) Run(req model.GenerateRequest) error {
	resp, err := h.service.Generate(req)
	if err != nil {
		if isValidationError(err) {
			fmt.Fprintf(h.out, "Error: %v\n", err)
			return nil
		}
		return err
	}

	fmt.Fprintf(h.out, "\nGenerated %d password(s):\n", len(resp.Passwords))
	for i, pw := range resp.Passwords {
		fmt.Fprintf(h.out, "%d. %s\n", i+1, pw)
		if resp.Hashes != nil {
			fmt.Fprintf(h.out, "   argon2id: %s\n", resp.Hashes[i])
		}
	}

	if resp.CopyRequested {
		if resp.Copied {
			fmt.Fprintln(h.out, "\nThe first password was copied to the clipboard.")
		} else {
			fmt.Fprintf(h.out, "\nCould not copy to the clipboard: %v.\n", resp.CopyErr)
		}
	}
	return nil
}

func isValidationError(err error) bool {
	return errors.Is(err, crypto.ErrInvalidArgument)
}
