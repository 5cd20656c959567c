package parser

import (
	"fmt"

	"github.com/dgallion1/adocparse/internal/doctree"
	"github.com/dgallion1/adocparse/internal/token"
)

// parseInlines converts a bounded token sub-sequence (a paragraph body or a
// heading title) into inline nodes. Every TextRun flows verbatim into a
// Text leaf. Errors are recorded into errs; on a malformed span the span's
// children are spliced into the surrounding sequence so no text is lost.
func parseInlines(toks []token.Token, errs *ErrorList, maxNesting int) []doctree.Inline {
	p := &inlineParser{toks: toks, errs: errs, maxNesting: maxNesting}
	return p.sequence(nil, 0)
}

type inlineParser struct {
	toks       []token.Token
	pos        int
	errs       *ErrorList
	maxNesting int
}

func (p *inlineParser) record(e *ParseError) { *p.errs = append(*p.errs, e) }

// sequence parses inline nodes until the sub-sequence ends or a delimiter
// closes one of the spans in open. A delimiter whose kind is already open
// always closes the nearest open span of that kind, so a bold span cannot
// nest directly inside bold, nor italic inside italic.
func (p *inlineParser) sequence(open []token.Kind, depth int) []doctree.Inline {
	var out []doctree.Inline
	for p.pos < len(p.toks) {
		t := p.toks[p.pos]
		switch t.Kind {
		case token.TextRun:
			out = append(out, &doctree.Text{Value: t.Text, Loc: t.Span})
			p.pos++

		case token.BoldDelimiter, token.ItalicDelimiter:
			if kindOpen(open, t.Kind) {
				return out
			}
			out = append(out, p.span(open, depth)...)

		default:
			// Structural tokens never reach the inline parser from the
			// block parser, but Parse accepts arbitrary token slices.
			p.record(&ParseError{
				Kind:     UnexpectedToken,
				Pos:      t.Span.Start,
				Expected: "inline content",
				Actual:   t.Description(),
			})
			p.pos++
		}
	}
	return out
}

// span parses one delimited formatting span whose opener sits at p.pos.
// It returns the single formatted node, or the span's children when the
// span could not be completed.
func (p *inlineParser) span(open []token.Kind, depth int) []doctree.Inline {
	opener := p.toks[p.pos]

	if depth+1 > p.maxNesting {
		p.record(&ParseError{
			Kind:    InvalidStructure,
			Pos:     opener.Span.Start,
			Message: fmt.Sprintf("inline formatting nested deeper than %d levels", p.maxNesting),
		})
		p.pos++
		return nil
	}

	p.pos++
	children := p.sequence(append(open, opener.Kind), depth+1)

	if p.pos < len(p.toks) && p.toks[p.pos].Kind == opener.Kind {
		closer := p.toks[p.pos]
		p.pos++
		if len(children) == 0 {
			p.record(&ParseError{
				Kind:     UnexpectedToken,
				Pos:      closer.Span.Start,
				Expected: "formatted text between delimiters",
				Actual:   closer.Description(),
			})
			return nil
		}
		loc := token.Span{Start: opener.Span.Start, End: closer.Span.End}
		if opener.Kind == token.BoldDelimiter {
			return []doctree.Inline{&doctree.Bold{Content: children, Loc: loc}}
		}
		return []doctree.Inline{&doctree.Italic{Content: children, Loc: loc}}
	}

	// No closer: either the sub-sequence ran out, or the next delimiter
	// closes an enclosing span instead. No implicit auto-close.
	p.record(&ParseError{
		Kind:      UnclosedDelimiter,
		Pos:       opener.Span.Start,
		Delimiter: delimiterName(opener.Kind),
	})
	return children
}

func kindOpen(open []token.Kind, k token.Kind) bool {
	for _, o := range open {
		if o == k {
			return true
		}
	}
	return false
}

func delimiterName(k token.Kind) string {
	if k == token.BoldDelimiter {
		return "bold"
	}
	return "italic"
}
