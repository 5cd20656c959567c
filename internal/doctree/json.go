package doctree

import (
	"encoding/json"

	"github.com/dgallion1/adocparse/internal/token"
)

// JSON marshaling with a "type" discriminator on every node, so the tree
// survives the trip through the HTTP API and the CLI --json output.

func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Blocks []Block `json:"blocks"`
	}{Blocks: d.Blocks})
}

func (s *Section) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type     string     `json:"type"`
		Level    int        `json:"level"`
		Title    []Inline   `json:"title"`
		Children []Block    `json:"children"`
		Span     token.Span `json:"span"`
	}{"section", s.Level, s.Title, s.Children, s.Loc})
}

func (p *Paragraph) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string     `json:"type"`
		Content []Inline   `json:"content"`
		Span    token.Span `json:"span"`
	}{"paragraph", p.Content, p.Loc})
}

func (t *Text) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string     `json:"type"`
		Text string     `json:"text"`
		Span token.Span `json:"span"`
	}{"text", t.Value, t.Loc})
}

func (b *Bold) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string     `json:"type"`
		Content []Inline   `json:"content"`
		Span    token.Span `json:"span"`
	}{"bold", b.Content, b.Loc})
}

func (i *Italic) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    string     `json:"type"`
		Content []Inline   `json:"content"`
		Span    token.Span `json:"span"`
	}{"italic", i.Content, i.Loc})
}
