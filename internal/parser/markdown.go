package parser

import (
	"bytes"
	"io"

	"github.com/dgallion1/adocparse/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownParser handles Markdown files using goldmark. Headings become
// sections via the same level stack the native parser uses, and emphasis
// maps onto Bold/Italic, so downstream consumers see one tree shape
// regardless of the input format.
type MarkdownParser struct{}

func (p *MarkdownParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	reader := text.NewReader(src)
	root := md.Parser().Parse(reader)

	tree := &doctree.Document{}
	var stack []*doctree.Section

	attach := func(b doctree.Block) {
		if n := len(stack); n > 0 {
			stack[n-1].Children = append(stack[n-1].Children, b)
		} else {
			tree.Blocks = append(tree.Blocks, b)
		}
	}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			level := node.Level
			if level > 6 {
				level = 6
			}
			sec := &doctree.Section{
				Level: level,
				Title: mdInlines(node, src),
			}
			for len(stack) > 0 && stack[len(stack)-1].Level >= level {
				stack = stack[:len(stack)-1]
			}
			attach(sec)
			stack = append(stack, sec)

		case *ast.Paragraph:
			if content := mdInlines(node, src); len(content) > 0 {
				attach(&doctree.Paragraph{Content: content})
			}

		default:
			// Lists, code blocks and the rest fold into plain-text
			// paragraphs; their structure is out of scope.
			if t := mdBlockText(n, src); t != "" {
				attach(&doctree.Paragraph{Content: []doctree.Inline{&doctree.Text{Value: t}}})
			}
		}
	}

	return tree, nil
}

// mdInlines converts goldmark inline children into doctree inlines.
// Emphasis level 1 is italic, level 2 bold; anything else is flattened.
func mdInlines(n ast.Node, src []byte) []doctree.Inline {
	var out []doctree.Inline
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			if v := string(c.Value(src)); v != "" {
				out = append(out, &doctree.Text{Value: v})
			}
		case *ast.Emphasis:
			content := mdInlines(c, src)
			if len(content) == 0 {
				continue
			}
			if c.Level >= 2 {
				out = append(out, &doctree.Bold{Content: content})
			} else {
				out = append(out, &doctree.Italic{Content: content})
			}
		default:
			out = append(out, mdInlines(c, src)...)
		}
	}
	return out
}

// mdBlockText gets the raw text content of a non-paragraph block node.
func mdBlockText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	if n.Type() == ast.TypeBlock {
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(src))
		}
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if t, ok := c.(*ast.Text); ok {
			buf.Write(t.Value(src))
			if t.HardLineBreak() || t.SoftLineBreak() {
				buf.WriteByte('\n')
			}
		} else {
			buf.WriteString(mdBlockText(c, src))
		}
	}
	return string(bytes.TrimSpace(buf.Bytes()))
}
