// Package doctree defines the document tree produced by parsing. The tree
// is built once per parse call and is read-only for downstream consumers
// (renderers, the outline builder, the HTTP API).
package doctree

import (
	"strings"

	"github.com/dgallion1/adocparse/internal/token"
)

// Document is the root of a parsed document. It owns its blocks; every node
// below it has exactly one parent.
type Document struct {
	Blocks []Block
}

// Block is a structural unit: a Section or a Paragraph.
type Block interface {
	Span() token.Span
	block()
}

// Section is a heading with nested content. Level is 1-6.
type Section struct {
	Level    int
	Title    []Inline
	Children []Block
	Loc      token.Span
}

// Paragraph is a run of inline content.
type Paragraph struct {
	Content []Inline
	Loc     token.Span
}

// Inline is a span-level unit: Text, Bold, or Italic. Bold and Italic
// recurse, so formatting nests to arbitrary depth.
type Inline interface {
	Span() token.Span
	inline()
}

// Text is a plain text leaf carrying the verbatim source text.
type Text struct {
	Value string
	Loc   token.Span
}

// Bold is a '**'-delimited span. Content is never empty.
type Bold struct {
	Content []Inline
	Loc     token.Span
}

// Italic is a '_'-delimited span. Content is never empty.
type Italic struct {
	Content []Inline
	Loc     token.Span
}

func (s *Section) Span() token.Span   { return s.Loc }
func (p *Paragraph) Span() token.Span { return p.Loc }
func (t *Text) Span() token.Span      { return t.Loc }
func (b *Bold) Span() token.Span      { return b.Loc }
func (i *Italic) Span() token.Span    { return i.Loc }

func (*Section) block()   {}
func (*Paragraph) block() {}
func (*Text) inline()     {}
func (*Bold) inline()     {}
func (*Italic) inline()   {}

// PlainText concatenates the text leaves under the given inlines in order,
// separated by single spaces. The lexer discards inter-word whitespace, so
// one space per boundary is the canonical spacing.
func PlainText(inlines []Inline) string {
	return strings.Join(TextLeaves(inlines), " ")
}

// TextLeaves returns the text leaf values under the given inlines in order,
// without any separator. Used to check that no source text is dropped or
// duplicated by the parser.
func TextLeaves(inlines []Inline) []string {
	var out []string
	var walk func(ns []Inline)
	walk = func(ns []Inline) {
		for _, n := range ns {
			switch n := n.(type) {
			case *Text:
				out = append(out, n.Value)
			case *Bold:
				walk(n.Content)
			case *Italic:
				walk(n.Content)
			}
		}
	}
	walk(inlines)
	return out
}
