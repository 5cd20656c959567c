package parser

import (
	"fmt"
	"strings"
)

// ErrorKind classifies a parse failure.
type ErrorKind int

const (
	// UnexpectedToken: a token matched no alternative of the current production.
	UnexpectedToken ErrorKind = iota
	// UnclosedDelimiter: a bold or italic opener was never matched.
	UnclosedDelimiter
	// InvalidStructure: the token sequence violated a structural constraint.
	InvalidStructure
	// UnexpectedEOF: a production needed at least one more token.
	UnexpectedEOF
)

func (k ErrorKind) String() string {
	switch k {
	case UnexpectedToken:
		return "unexpected_token"
	case UnclosedDelimiter:
		return "unclosed_delimiter"
	case InvalidStructure:
		return "invalid_structure"
	case UnexpectedEOF:
		return "unexpected_eof"
	}
	return fmt.Sprintf("error_kind_%d", int(k))
}

// ParseError is one structural problem found during parsing. Pos is a byte
// offset into the source text, taken from the offending token's span.
type ParseError struct {
	Kind ErrorKind
	Pos  int

	// UnexpectedToken
	Expected string
	Actual   string

	// UnclosedDelimiter: "bold" or "italic".
	Delimiter string

	// InvalidStructure / UnexpectedEOF
	Message string
	Context string
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case UnexpectedToken:
		return fmt.Sprintf("unexpected token at position %d: expected %s, got %s", e.Pos, e.Expected, e.Actual)
	case UnclosedDelimiter:
		return fmt.Sprintf("unclosed %s delimiter starting at position %d", e.Delimiter, e.Pos)
	case InvalidStructure:
		return fmt.Sprintf("invalid structure: %s", e.Message)
	case UnexpectedEOF:
		return fmt.Sprintf("unexpected end of input: %s", e.Context)
	}
	return fmt.Sprintf("parse error at position %d", e.Pos)
}

// ErrorList is every problem found in one pass, in source order. The parser
// does not stop at the first error; it resynchronizes at the next block
// separator or heading marker and keeps going.
type ErrorList []*ParseError

func (l ErrorList) Error() string {
	if len(l) == 1 {
		return l[0].Error()
	}
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("%d parse errors: %s", len(l), strings.Join(msgs, "; "))
}
