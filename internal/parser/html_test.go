package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/adocparse/internal/doctree"
)

func parseHTMLDoc(t *testing.T, src string) *doctree.Document {
	t.Helper()
	doc, err := (&HTMLParser{}).Parse(strings.NewReader(src), "doc.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return doc
}

func TestHTML_HeadingHierarchy(t *testing.T) {
	src := `<html><body>
		<h1>A</h1>
		<h2>B</h2>
		<p>under B</p>
		<h1>C</h1>
	</body></html>`
	doc := parseHTMLDoc(t, src)
	if len(doc.Blocks) != 2 {
		t.Fatalf("expected 2 top-level blocks, got %d", len(doc.Blocks))
	}
	a := asSection(t, doc.Blocks[0])
	if doctree.PlainText(a.Title) != "A" {
		t.Errorf("expected section A, got %q", doctree.PlainText(a.Title))
	}
	b := asSection(t, a.Children[0])
	if b.Level != 2 || len(b.Children) != 1 {
		t.Fatalf("expected level-2 B with 1 child, got level %d with %d", b.Level, len(b.Children))
	}
	para := asParagraph(t, b.Children[0])
	if got := doctree.PlainText(para.Content); got != "under B" {
		t.Errorf("expected %q, got %q", "under B", got)
	}
}

func TestHTML_InlineMapping(t *testing.T) {
	doc := parseHTMLDoc(t, `<body><p>plain <strong>bold</strong> and <em>ital</em></p></body>`)
	para := asParagraph(t, doc.Blocks[0])
	if got := doctree.PlainText(para.Content); got != "plain bold and ital" {
		t.Errorf("unexpected text %q", got)
	}

	var bold *doctree.Bold
	var italic *doctree.Italic
	for _, n := range para.Content {
		switch n := n.(type) {
		case *doctree.Bold:
			bold = n
		case *doctree.Italic:
			italic = n
		}
	}
	if bold == nil || doctree.PlainText(bold.Content) != "bold" {
		t.Errorf("expected Bold %q, got %#v", "bold", bold)
	}
	if italic == nil || doctree.PlainText(italic.Content) != "ital" {
		t.Errorf("expected Italic %q, got %#v", "ital", italic)
	}
}

func TestHTML_BAndITagsMapToo(t *testing.T) {
	doc := parseHTMLDoc(t, `<body><p><b>x</b> <i>y</i></p></body>`)
	para := asParagraph(t, doc.Blocks[0])
	if len(para.Content) != 2 {
		t.Fatalf("expected 2 inlines, got %d", len(para.Content))
	}
	if _, ok := para.Content[0].(*doctree.Bold); !ok {
		t.Errorf("expected Bold, got %T", para.Content[0])
	}
	if _, ok := para.Content[1].(*doctree.Italic); !ok {
		t.Errorf("expected Italic, got %T", para.Content[1])
	}
}

func TestHTML_ScriptAndNavSkipped(t *testing.T) {
	src := `<body>
		<nav><p>menu</p></nav>
		<script>var x = 1;</script>
		<p>real content</p>
		<footer><p>legal</p></footer>
	</body>`
	doc := parseHTMLDoc(t, src)
	if len(doc.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Blocks))
	}
	para := asParagraph(t, doc.Blocks[0])
	if got := doctree.PlainText(para.Content); got != "real content" {
		t.Errorf("expected %q, got %q", "real content", got)
	}
}

func TestHTML_WhitespaceCollapsed(t *testing.T) {
	doc := parseHTMLDoc(t, "<body><p>a\n\t  b   c</p></body>")
	para := asParagraph(t, doc.Blocks[0])
	if got := doctree.PlainText(para.Content); got != "a b c" {
		t.Errorf("expected collapsed %q, got %q", "a b c", got)
	}
}

func TestHTML_ListItemsBecomeParagraphs(t *testing.T) {
	doc := parseHTMLDoc(t, `<body><ul><li>one</li><li>two</li></ul></body>`)
	if len(doc.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(doc.Blocks))
	}
	for i, want := range []string{"one", "two"} {
		para := asParagraph(t, doc.Blocks[i])
		if got := doctree.PlainText(para.Content); got != want {
			t.Errorf("block[%d]: expected %q, got %q", i, want, got)
		}
	}
}
