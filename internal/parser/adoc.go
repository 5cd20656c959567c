package parser

import (
	"io"

	"github.com/dgallion1/adocparse/internal/doctree"
	"github.com/dgallion1/adocparse/internal/lexer"
	"github.com/dgallion1/adocparse/internal/token"
)

// DefaultMaxNesting bounds inline formatting depth. The inline parser uses
// one stack frame per nesting level, so the limit keeps adversarially deep
// input from exhausting the call stack. Section nesting is iterative and
// needs no limit.
const DefaultMaxNesting = 200

// ADocParser handles native markup files (.adoc, .asciidoc, .txt) through
// the lexer and the token parser.
type ADocParser struct {
	// MaxNesting overrides DefaultMaxNesting when > 0.
	MaxNesting int
}

// Parse lexes and parses r. When the document has structural problems the
// returned error is an ErrorList and the document still carries everything
// that parsed cleanly.
func (p *ADocParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	limit := p.MaxNesting
	if limit <= 0 {
		limit = DefaultMaxNesting
	}
	return ParseWithLimit(lexer.Lex(string(src)), limit)
}

// Parse converts a token sequence into a document tree. It reports every
// structural problem found in one pass: after an error it resynchronizes at
// the next block separator or heading marker and continues, so the returned
// ErrorList covers the whole input and the document is the best partial
// tree. The error is nil on clean input.
func Parse(toks []token.Token) (*doctree.Document, error) {
	return ParseWithLimit(toks, DefaultMaxNesting)
}

// ParseWithLimit is Parse with an explicit inline nesting limit.
func ParseWithLimit(toks []token.Token, maxNesting int) (*doctree.Document, error) {
	p := &docParser{toks: toks, maxNesting: maxNesting}
	doc := p.parseDocument()
	if len(p.errs) > 0 {
		return doc, p.errs
	}
	return doc, nil
}

type docParser struct {
	toks       []token.Token
	pos        int
	errs       ErrorList
	maxNesting int
}

func (p *docParser) eof() bool         { return p.pos >= len(p.toks) }
func (p *docParser) peek() token.Token { return p.toks[p.pos] }

func (p *docParser) record(e *ParseError) { p.errs = append(p.errs, e) }

// parseDocument drives the block grammar. Section nesting uses an explicit
// stack of open sections keyed by level: a new heading pops every open
// section with level >= its own, then attaches to whatever remains open.
// Equal and shallower headings therefore become siblings, not children.
func (p *docParser) parseDocument() *doctree.Document {
	doc := &doctree.Document{}
	var stack []*doctree.Section

	attach := func(b doctree.Block) {
		if n := len(stack); n > 0 {
			stack[n-1].Children = append(stack[n-1].Children, b)
		} else {
			doc.Blocks = append(doc.Blocks, b)
		}
	}

	for !p.eof() {
		t := p.peek()
		switch t.Kind {
		case token.BlockSeparator:
			// Separators delimit blocks and carry no payload.
			p.pos++

		case token.SectionMarker:
			sec, ok := p.parseHeading()
			if !ok {
				p.resync()
				continue
			}
			for len(stack) > 0 && stack[len(stack)-1].Level >= sec.Level {
				stack = stack[:len(stack)-1]
			}
			attach(sec)
			stack = append(stack, sec)

		case token.TextRun, token.BoldDelimiter, token.ItalicDelimiter:
			attach(p.parseParagraph())

		default:
			// A lone LineBreak cannot start a block.
			p.record(&ParseError{
				Kind:     UnexpectedToken,
				Pos:      t.Span.Start,
				Expected: "section heading or paragraph",
				Actual:   t.Description(),
			})
			p.resync()
		}
	}

	return doc
}

// parseHeading consumes a SectionMarker, its title tokens, and the line
// terminator. On failure it records the error and reports !ok so the
// caller can resynchronize.
func (p *docParser) parseHeading() (*doctree.Section, bool) {
	marker := p.peek()
	p.pos++

	if marker.Level < 1 || marker.Level > 6 {
		p.record(&ParseError{
			Kind:    InvalidStructure,
			Pos:     marker.Span.Start,
			Message: "section level must be between 1 and 6",
		})
		return nil, false
	}

	start := p.pos
	for !p.eof() && isInlineToken(p.peek().Kind) {
		p.pos++
	}
	titleToks := p.toks[start:p.pos]

	if len(titleToks) == 0 {
		if p.eof() {
			p.record(&ParseError{Kind: UnexpectedEOF, Pos: marker.Span.End, Context: "section title"})
		} else {
			p.record(&ParseError{
				Kind:     UnexpectedToken,
				Pos:      p.peek().Span.Start,
				Expected: "section title",
				Actual:   p.peek().Description(),
			})
		}
		return nil, false
	}

	sec := &doctree.Section{
		Level: marker.Level,
		Title: parseInlines(titleToks, &p.errs, p.maxNesting),
		Loc:   token.Span{Start: marker.Span.Start, End: titleToks[len(titleToks)-1].Span.End},
	}

	// The heading line ends at a newline or blank line; end of input is an
	// implicit terminator. Anything else (another marker on the same line)
	// is reported, and the offender is left for the block loop.
	if !p.eof() {
		switch p.peek().Kind {
		case token.LineBreak, token.BlockSeparator:
			p.pos++
		default:
			p.record(&ParseError{
				Kind:     UnexpectedToken,
				Pos:      p.peek().Span.Start,
				Expected: "newline or blank line after section title",
				Actual:   p.peek().Description(),
			})
		}
	}

	return sec, true
}

// parseParagraph consumes a maximal run of inline tokens plus an optional
// trailing newline.
func (p *docParser) parseParagraph() *doctree.Paragraph {
	start := p.pos
	for !p.eof() && isInlineToken(p.peek().Kind) {
		p.pos++
	}
	slice := p.toks[start:p.pos]

	para := &doctree.Paragraph{
		Content: parseInlines(slice, &p.errs, p.maxNesting),
		Loc:     token.Span{Start: slice[0].Span.Start, End: slice[len(slice)-1].Span.End},
	}

	if !p.eof() && p.peek().Kind == token.LineBreak {
		p.pos++
	}
	return para
}

// resync skips ahead to the next block separator or heading marker, the
// two block boundaries the grammar can always restart from.
func (p *docParser) resync() {
	for !p.eof() {
		switch p.peek().Kind {
		case token.BlockSeparator, token.SectionMarker:
			return
		}
		p.pos++
	}
}

func isInlineToken(k token.Kind) bool {
	return k == token.TextRun || k == token.BoldDelimiter || k == token.ItalicDelimiter
}
