package render

import (
	"strings"
	"testing"

	"github.com/dgallion1/adocparse/internal/doctree"
	"github.com/dgallion1/adocparse/internal/lexer"
	"github.com/dgallion1/adocparse/internal/parser"
)

func parseSource(t *testing.T, src string) *doctree.Document {
	t.Helper()
	doc, err := parser.Parse(lexer.Lex(src))
	if err != nil {
		t.Fatalf("unexpected parse errors for %q: %v", src, err)
	}
	return doc
}

func TestADoc_Canonical(t *testing.T) {
	doc := parseSource(t, "= Title\n\nword **bold** _ital_\n\n== Sub\n\nmore\n")
	want := "= Title\n\nword **bold** _ital_\n\n== Sub\n\nmore\n"
	if got := ADoc(doc); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestADoc_RoundTripIdempotent(t *testing.T) {
	// Rendering, reparsing and rendering again is a fixed point: the first
	// render normalizes spacing, the second reproduces it exactly.
	sources := []string{
		"= Title\n\n\n\nbody   with   extra    spaces\n",
		"**a _b_ c**\n",
		"= A\n== B\n=== C\n\nleaf\n",
		"one\ntwo\n\nthree\n",
	}
	for _, src := range sources {
		once := ADoc(parseSource(t, src))
		twice := ADoc(parseSource(t, once))
		if once != twice {
			t.Errorf("round trip not idempotent for %q:\nfirst:  %q\nsecond: %q", src, once, twice)
		}
	}
}

func TestADoc_EmptyDocument(t *testing.T) {
	if got := ADoc(&doctree.Document{}); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}

func TestHTML_Structure(t *testing.T) {
	doc := parseSource(t, "= Title\n\nword **bold** _ital_\n")
	want := "<h1>Title</h1>\n<p>word <strong>bold</strong> <em>ital</em></p>\n"
	if got := HTML(doc); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestHTML_EscapesText(t *testing.T) {
	doc := &doctree.Document{Blocks: []doctree.Block{
		&doctree.Paragraph{Content: []doctree.Inline{
			&doctree.Text{Value: "<script>&"},
		}},
	}}
	got := HTML(doc)
	if strings.Contains(got, "<script>") {
		t.Errorf("unescaped markup in %q", got)
	}
	if !strings.Contains(got, "&lt;script&gt;&amp;") {
		t.Errorf("expected escaped text in %q", got)
	}
}

func TestText_StripsFormatting(t *testing.T) {
	doc := parseSource(t, "= Title\n\nword **bold** _ital_\n")
	want := "Title\n\nword bold ital\n"
	if got := Text(doc); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
