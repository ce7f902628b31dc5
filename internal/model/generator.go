package model

// GenerateRequest represents a passgen invocation after flag and env resolution.
// The No* fields mirror the CLI switches so the zero value enables every category.
type GenerateRequest struct {
	Length      int
	Count       int
	NoUppercase bool
	NoLowercase bool
	NoDigits    bool
	NoSymbols   bool
	Symbols     string // overrides the built-in symbol group when set
	Copy        bool
	Hash        bool
}

// GenerateResponse holds the generated passwords and the side effects requested for them.
type GenerateResponse struct {
	Passwords     []string
	Hashes        []string // parallel to Passwords, nil unless Hash was requested
	CopyRequested bool
	Copied        bool
	CopyErr       error // why the copy failed, nil when Copied
}
