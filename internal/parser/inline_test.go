package parser

import (
	"testing"

	"github.com/dgallion1/adocparse/internal/doctree"
	"github.com/dgallion1/adocparse/internal/lexer"
)

func singleParagraph(t *testing.T, src string) *doctree.Paragraph {
	t.Helper()
	doc := mustParse(t, src)
	if len(doc.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(doc.Blocks))
	}
	return asParagraph(t, doc.Blocks[0])
}

func TestInline_Bold(t *testing.T) {
	para := singleParagraph(t, "**word**")
	if len(para.Content) != 1 {
		t.Fatalf("expected 1 inline, got %d", len(para.Content))
	}
	bold, ok := para.Content[0].(*doctree.Bold)
	if !ok {
		t.Fatalf("expected Bold, got %T", para.Content[0])
	}
	if len(bold.Content) != 1 {
		t.Fatalf("expected 1 child, got %d", len(bold.Content))
	}
	text, ok := bold.Content[0].(*doctree.Text)
	if !ok || text.Value != "word" {
		t.Errorf("expected Text %q, got %#v", "word", bold.Content[0])
	}
}

func TestInline_Italic(t *testing.T) {
	para := singleParagraph(t, "_word_")
	italic, ok := para.Content[0].(*doctree.Italic)
	if !ok {
		t.Fatalf("expected Italic, got %T", para.Content[0])
	}
	if got := doctree.PlainText(italic.Content); got != "word" {
		t.Errorf("expected %q, got %q", "word", got)
	}
}

func TestInline_NestedItalicInsideBold(t *testing.T) {
	para := singleParagraph(t, "**bold _and italic_**")
	if len(para.Content) != 1 {
		t.Fatalf("expected 1 inline, got %d", len(para.Content))
	}
	bold, ok := para.Content[0].(*doctree.Bold)
	if !ok {
		t.Fatalf("expected Bold, got %T", para.Content[0])
	}
	if len(bold.Content) != 2 {
		t.Fatalf("expected 2 children, got %d", len(bold.Content))
	}
	if _, ok := bold.Content[0].(*doctree.Text); !ok {
		t.Errorf("expected Text first, got %T", bold.Content[0])
	}
	italic, ok := bold.Content[1].(*doctree.Italic)
	if !ok {
		t.Fatalf("expected Italic second, got %T", bold.Content[1])
	}
	if got := doctree.PlainText(italic.Content); got != "and italic" {
		t.Errorf("expected %q, got %q", "and italic", got)
	}
}

func TestInline_NestedBoldInsideItalic(t *testing.T) {
	para := singleParagraph(t, "_a **b** c_")
	italic, ok := para.Content[0].(*doctree.Italic)
	if !ok {
		t.Fatalf("expected Italic, got %T", para.Content[0])
	}
	if len(italic.Content) != 3 {
		t.Fatalf("expected 3 children, got %d", len(italic.Content))
	}
	if _, ok := italic.Content[1].(*doctree.Bold); !ok {
		t.Errorf("expected Bold in the middle, got %T", italic.Content[1])
	}
}

func TestInline_NoSelfNesting(t *testing.T) {
	// A bold delimiter inside an open bold span closes it; the next pair
	// opens a fresh span. Self-nesting cannot occur.
	para := singleParagraph(t, "**a** b **c**")
	if len(para.Content) != 3 {
		t.Fatalf("expected 3 inlines, got %d", len(para.Content))
	}
	if _, ok := para.Content[0].(*doctree.Bold); !ok {
		t.Errorf("expected Bold first, got %T", para.Content[0])
	}
	if _, ok := para.Content[1].(*doctree.Text); !ok {
		t.Errorf("expected Text second, got %T", para.Content[1])
	}
	if _, ok := para.Content[2].(*doctree.Bold); !ok {
		t.Errorf("expected Bold third, got %T", para.Content[2])
	}
}

func TestInline_BalancedPairsMatchInputDepth(t *testing.T) {
	// Well-formed cross-kind nesting: output depth equals delimiter depth.
	para := singleParagraph(t, "_a **b** c_ and **_d_**")
	italic, ok := para.Content[0].(*doctree.Italic)
	if !ok {
		t.Fatalf("expected Italic first, got %T", para.Content[0])
	}
	if _, ok := italic.Content[1].(*doctree.Bold); !ok {
		t.Errorf("expected Bold inside Italic, got %T", italic.Content[1])
	}
	bold, ok := para.Content[2].(*doctree.Bold)
	if !ok {
		t.Fatalf("expected Bold third, got %T", para.Content[2])
	}
	if _, ok := bold.Content[0].(*doctree.Italic); !ok {
		t.Errorf("expected Italic inside Bold, got %T", bold.Content[0])
	}
}

func TestInline_UnclosedBold(t *testing.T) {
	doc, errs := parseText(t, "**word")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	e := errs[0]
	if e.Kind != UnclosedDelimiter {
		t.Errorf("expected UnclosedDelimiter, got %v", e.Kind)
	}
	if e.Delimiter != "bold" {
		t.Errorf("expected bold delimiter, got %q", e.Delimiter)
	}
	if e.Pos != 0 {
		t.Errorf("expected opening position 0, got %d", e.Pos)
	}
	// The text survives in the partial tree.
	para := asParagraph(t, doc.Blocks[0])
	if got := doctree.PlainText(para.Content); got != "word" {
		t.Errorf("expected recovered text %q, got %q", "word", got)
	}
}

func TestInline_UnclosedItalicPosition(t *testing.T) {
	_, errs := parseText(t, "word _oops")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	e := errs[0]
	if e.Kind != UnclosedDelimiter || e.Delimiter != "italic" {
		t.Errorf("expected unclosed italic, got %v %q", e.Kind, e.Delimiter)
	}
	if e.Pos != 5 {
		t.Errorf("expected opening position 5, got %d", e.Pos)
	}
}

func TestInline_MisnestedDelimiters(t *testing.T) {
	// **a _b** : the bold closer arrives while italic is open. The italic
	// span is reported unclosed; the bold span still closes.
	doc, errs := parseText(t, "**a _b**")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Kind != UnclosedDelimiter || errs[0].Delimiter != "italic" {
		t.Errorf("expected unclosed italic, got %v %q", errs[0].Kind, errs[0].Delimiter)
	}
	para := asParagraph(t, doc.Blocks[0])
	bold, ok := para.Content[0].(*doctree.Bold)
	if !ok {
		t.Fatalf("expected Bold, got %T", para.Content[0])
	}
	if got := doctree.PlainText(bold.Content); got != "a b" {
		t.Errorf("expected spliced content %q, got %q", "a b", got)
	}
}

func TestInline_EmptySpanRejected(t *testing.T) {
	// A delimiter pair must wrap at least one inline node.
	_, errs := parseText(t, "a **** b")
	if len(errs) != 1 {
		t.Fatalf("expected 1 error, got %d: %v", len(errs), errs)
	}
	if errs[0].Kind != UnexpectedToken {
		t.Errorf("expected UnexpectedToken, got %v", errs[0].Kind)
	}
}

func TestInline_NestingDepthLimit(t *testing.T) {
	doc, err := ParseWithLimit(lexer.Lex("**_x_**"), 1)
	if err == nil {
		t.Fatal("expected a depth error")
	}
	errs := err.(ErrorList)
	found := false
	for _, e := range errs {
		if e.Kind == InvalidStructure {
			found = true
		}
	}
	if !found {
		t.Errorf("expected InvalidStructure among %v", errs)
	}
	if doc == nil {
		t.Fatal("expected a partial document")
	}
}

func TestInline_TextAroundFormatting(t *testing.T) {
	para := singleParagraph(t, "word **bold** word _italic_")
	if len(para.Content) != 4 {
		t.Fatalf("expected 4 inlines, got %d", len(para.Content))
	}
	wantTypes := []string{"text", "bold", "text", "italic"}
	for i, n := range para.Content {
		var got string
		switch n.(type) {
		case *doctree.Text:
			got = "text"
		case *doctree.Bold:
			got = "bold"
		case *doctree.Italic:
			got = "italic"
		}
		if got != wantTypes[i] {
			t.Errorf("inline[%d]: expected %s, got %s", i, wantTypes[i], got)
		}
	}
}

func TestInline_SpanCoversDelimiters(t *testing.T) {
	src := "**word**"
	para := singleParagraph(t, src)
	bold := para.Content[0].(*doctree.Bold)
	if bold.Loc.Start != 0 || bold.Loc.End != len(src) {
		t.Errorf("expected span 0..%d, got %d..%d", len(src), bold.Loc.Start, bold.Loc.End)
	}
}
