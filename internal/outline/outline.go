// Package outline flattens a document tree into structure-aware entries:
// one per section, carrying the heading breadcrumb and the section's own
// paragraph text.
package outline

import (
	"strings"

	"github.com/dgallion1/adocparse/internal/doctree"
)

// Entry is one section (or the leading headingless run of paragraphs) in
// document order.
type Entry struct {
	Breadcrumb []string `json:"breadcrumb"` // Heading hierarchy, e.g. ["Results", "Revenue", "Q4"]
	Text       string   `json:"text"`       // Paragraph text directly under this heading
	Words      int      `json:"words"`
}

// Build walks doc and produces its outline.
func Build(doc *doctree.Document) []Entry {
	var entries []Entry
	walkBlocks(doc.Blocks, nil, &entries)
	return entries
}

func walkBlocks(blocks []doctree.Block, breadcrumb []string, entries *[]Entry) {
	var paras []string

	flush := func() {
		if len(paras) == 0 {
			return
		}
		text := strings.Join(paras, "\n\n")
		*entries = append(*entries, Entry{
			Breadcrumb: copyBreadcrumb(breadcrumb),
			Text:       text,
			Words:      CountWords(text),
		})
		paras = nil
	}

	for _, b := range blocks {
		switch b := b.(type) {
		case *doctree.Paragraph:
			paras = append(paras, doctree.PlainText(b.Content))
		case *doctree.Section:
			flush()
			bc := append(copyBreadcrumb(breadcrumb), doctree.PlainText(b.Title))
			if !hasParagraphs(b.Children) {
				// Emit the heading itself so empty sections still appear.
				*entries = append(*entries, Entry{Breadcrumb: bc})
			}
			walkBlocks(b.Children, bc, entries)
		}
	}
	flush()
}

func hasParagraphs(blocks []doctree.Block) bool {
	for _, b := range blocks {
		if _, ok := b.(*doctree.Paragraph); ok {
			return true
		}
	}
	return false
}

func copyBreadcrumb(bc []string) []string {
	out := make([]string, len(bc))
	copy(out, bc)
	return out
}

// CountWords counts whitespace-separated words.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
