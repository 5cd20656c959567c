package token

import (
	"fmt"
	"strings"
)

// Kind classifies a lexical token.
type Kind int

const (
	// SectionMarker is a run of '=' opening a heading line. Level carries 1-6.
	SectionMarker Kind = iota
	// BoldDelimiter is '**', opening or closing a bold span.
	BoldDelimiter
	// ItalicDelimiter is '_', opening or closing an italic span.
	ItalicDelimiter
	// LineBreak is a single newline.
	LineBreak
	// BlockSeparator is two or more consecutive newlines, delimiting blocks.
	BlockSeparator
	// TextRun is a maximal run of plain text between markers and whitespace.
	TextRun
)

func (k Kind) String() string {
	switch k {
	case SectionMarker:
		return "SectionMarker"
	case BoldDelimiter:
		return "BoldDelimiter"
	case ItalicDelimiter:
		return "ItalicDelimiter"
	case LineBreak:
		return "LineBreak"
	case BlockSeparator:
		return "BlockSeparator"
	case TextRun:
		return "TextRun"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Span is a half-open byte range [Start, End) into the source text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Token is one lexical unit. Tokens are produced once by the lexer and
// consumed left to right by the parser; they are never mutated.
type Token struct {
	Kind Kind
	// Level is the heading level for SectionMarker tokens (1-6), 0 otherwise.
	Level int
	// Text is the verbatim source text for TextRun tokens, "" otherwise.
	Text string
	Span Span
}

// Description returns a human-readable name for error messages.
func (t Token) Description() string {
	switch t.Kind {
	case SectionMarker:
		return fmt.Sprintf("level %d heading (%s)", t.Level, strings.Repeat("=", t.Level))
	case BoldDelimiter:
		return "bold delimiter (**)"
	case ItalicDelimiter:
		return "italic delimiter (_)"
	case LineBreak:
		return "newline"
	case BlockSeparator:
		return "blank line"
	case TextRun:
		return fmt.Sprintf("text %q", t.Text)
	}
	return t.Kind.String()
}
