package parser

import (
	"fmt"
	"io"
	"strings"

	"github.com/dgallion1/adocparse/internal/doctree"
	"golang.org/x/net/html"
)

// HTMLParser handles HTML files. h1-h6 become sections, text-bearing
// elements become paragraphs, and b/strong/i/em map onto Bold/Italic.
type HTMLParser struct{}

func (p *HTMLParser) Parse(r io.Reader, filename string) (*doctree.Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	tree := &doctree.Document{}
	var stack []*doctree.Section

	attach := func(b doctree.Block) {
		if n := len(stack); n > 0 {
			stack[n-1].Children = append(stack[n-1].Children, b)
		} else {
			tree.Blocks = append(tree.Blocks, b)
		}
	}

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			if level := headingLevel(n.Data); level > 0 {
				sec := &doctree.Section{
					Level: level,
					Title: htmlInlines(n),
				}
				for len(stack) > 0 && stack[len(stack)-1].Level >= level {
					stack = stack[:len(stack)-1]
				}
				attach(sec)
				stack = append(stack, sec)
				return
			}

			switch n.Data {
			case "script", "style", "nav", "footer", "header":
				return
			case "p", "li", "td", "blockquote":
				if content := htmlInlines(n); len(content) > 0 {
					attach(&doctree.Paragraph{Content: content})
				}
				return
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}

	if body := findBody(root); body != nil {
		walk(body)
	} else {
		walk(root)
	}

	return tree, nil
}

// htmlInlines converts the inline content of an element. Nested block
// elements are flattened into the surrounding sequence.
func htmlInlines(n *html.Node) []doctree.Inline {
	var out []doctree.Inline
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == html.TextNode:
			// Collapse runs of whitespace the way the lexer does.
			if v := strings.Join(strings.Fields(c.Data), " "); v != "" {
				out = append(out, &doctree.Text{Value: v})
			}
		case c.Type == html.ElementNode && (c.Data == "b" || c.Data == "strong"):
			if content := htmlInlines(c); len(content) > 0 {
				out = append(out, &doctree.Bold{Content: content})
			}
		case c.Type == html.ElementNode && (c.Data == "i" || c.Data == "em"):
			if content := htmlInlines(c); len(content) > 0 {
				out = append(out, &doctree.Italic{Content: content})
			}
		default:
			out = append(out, htmlInlines(c)...)
		}
	}
	return out
}

func headingLevel(tag string) int {
	switch tag {
	case "h1":
		return 1
	case "h2":
		return 2
	case "h3":
		return 3
	case "h4":
		return 4
	case "h5":
		return 5
	case "h6":
		return 6
	}
	return 0
}

func findBody(n *html.Node) *html.Node {
	if n.Type == html.ElementNode && n.Data == "body" {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if b := findBody(c); b != nil {
			return b
		}
	}
	return nil
}
