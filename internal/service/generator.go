package service

import (
	"fmt"
	"log/slog"

	"github.com/vaultpass/vaultpass-tools/internal/clipboard"
	"github.com/vaultpass/vaultpass-tools/internal/crypto"
	"github.com/vaultpass/vaultpass-tools/internal/model"
)

// GeneratorService handles password generation business logic.
type GeneratorService struct {
	clipboard clipboard.Copier
	hash      func(string) (string, error)
}

// NewGeneratorService creates a new GeneratorService. A nil copier disables --copy.
func NewGeneratorService(copier clipboard.Copier) *GeneratorService {
	return &GeneratorService{
		clipboard: copier,
		hash:      crypto.HashPassword,
	}
}

// Generate produces the passwords described by req.
func (s *GeneratorService) Generate(req model.GenerateRequest) (model.GenerateResponse, error) {
	opts := crypto.GeneratorOptions{
		Length:    req.Length,
		Uppercase: !req.NoUppercase,
		Lowercase: !req.NoLowercase,
		Numbers:   !req.NoDigits,
		Symbols:   !req.NoSymbols,
		SymbolSet: req.Symbols,
	}

	passwords, err := crypto.GenerateBatch(req.Count, opts)
	if err != nil {
		return model.GenerateResponse{}, err
	}
	slog.Debug("passwords generated", "count", len(passwords), "length", opts.Length, "groups", len(opts.Groups()))

	resp := model.GenerateResponse{Passwords: passwords}

	if req.Hash {
		resp.Hashes = make([]string, 0, len(passwords))
		for i, pw := range passwords {
			h, err := s.hash(pw)
			if err != nil {
				return model.GenerateResponse{}, fmt.Errorf("hashing password %d: %w", i+1, err)
			}
			resp.Hashes = append(resp.Hashes, h)
		}
	}

	if req.Copy && len(passwords) > 0 {
		resp.CopyRequested = true
		if err := clipboard.Attempt(s.clipboard, passwords[0]); err != nil {
			slog.Debug("clipboard copy failed", "error", err)
			resp.CopyErr = err
		} else {
			resp.Copied = true
		}
	}

	return resp, nil
}
