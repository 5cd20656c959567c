// Package render turns a document tree back into text. The parser defines
// no serialization of its own; these walks are the downstream consumers.
package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/dgallion1/adocparse/internal/doctree"
)

// ADoc renders the canonical markup text for doc. Parsing the result
// yields a tree that renders to the same text again: the lexer discards
// inter-word whitespace, so one space per token boundary is the canonical
// spacing.
func ADoc(doc *doctree.Document) string {
	parts := adocBlocks(doc.Blocks)
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func adocBlocks(blocks []doctree.Block) []string {
	var parts []string
	for _, b := range blocks {
		switch b := b.(type) {
		case *doctree.Section:
			parts = append(parts, strings.Repeat("=", b.Level)+" "+adocInlines(b.Title))
			parts = append(parts, adocBlocks(b.Children)...)
		case *doctree.Paragraph:
			parts = append(parts, adocInlines(b.Content))
		}
	}
	return parts
}

func adocInlines(ns []doctree.Inline) string {
	var parts []string
	for _, n := range ns {
		switch n := n.(type) {
		case *doctree.Text:
			parts = append(parts, n.Value)
		case *doctree.Bold:
			parts = append(parts, "**"+adocInlines(n.Content)+"**")
		case *doctree.Italic:
			parts = append(parts, "_"+adocInlines(n.Content)+"_")
		}
	}
	return strings.Join(parts, " ")
}

// HTML renders doc as an HTML fragment, one element per line.
func HTML(doc *doctree.Document) string {
	var lines []string
	htmlBlocks(doc.Blocks, &lines)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func htmlBlocks(blocks []doctree.Block, lines *[]string) {
	for _, b := range blocks {
		switch b := b.(type) {
		case *doctree.Section:
			*lines = append(*lines, fmt.Sprintf("<h%d>%s</h%d>", b.Level, htmlInlines(b.Title), b.Level))
			htmlBlocks(b.Children, lines)
		case *doctree.Paragraph:
			*lines = append(*lines, "<p>"+htmlInlines(b.Content)+"</p>")
		}
	}
}

func htmlInlines(ns []doctree.Inline) string {
	var parts []string
	for _, n := range ns {
		switch n := n.(type) {
		case *doctree.Text:
			parts = append(parts, html.EscapeString(n.Value))
		case *doctree.Bold:
			parts = append(parts, "<strong>"+htmlInlines(n.Content)+"</strong>")
		case *doctree.Italic:
			parts = append(parts, "<em>"+htmlInlines(n.Content)+"</em>")
		}
	}
	return strings.Join(parts, " ")
}

// Text renders doc as plain text: heading and paragraph text only, blocks
// separated by blank lines.
func Text(doc *doctree.Document) string {
	var parts []string
	textBlocks(doc.Blocks, &parts)
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "\n\n") + "\n"
}

func textBlocks(blocks []doctree.Block, parts *[]string) {
	for _, b := range blocks {
		switch b := b.(type) {
		case *doctree.Section:
			*parts = append(*parts, doctree.PlainText(b.Title))
			textBlocks(b.Children, parts)
		case *doctree.Paragraph:
			*parts = append(*parts, doctree.PlainText(b.Content))
		}
	}
}
