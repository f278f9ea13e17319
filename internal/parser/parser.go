// Package parser turns free-form text or receipt images into structured
// transaction candidates. The AI-backed parser is the primary
// implementation; a deterministic keyword parser covers operation without an
// API key.
package parser

import (
	"context"
	"errors"

	"fjacquet/smartfinance/internal/models"
)

// ErrNoParse signals that the input could not be understood as any
// transaction. The caller should ask the user to reword, nothing was stored.
var ErrNoParse = errors.New("no transaction recognized")

// Parser extracts transaction candidates from user input. One input may
// yield several results.
type Parser interface {
	ParseText(ctx context.Context, text, lang string) ([]models.ParseResult, error)
	ParseImage(ctx context.Context, data []byte, mimeType, lang string) ([]models.ParseResult, error)
}
