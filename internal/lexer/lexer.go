// Package lexer converts raw markup text into the flat token sequence
// consumed by the parser. Rules are ordered regular expressions anchored at
// the current position; the first match wins.
package lexer

import (
	"regexp"

	"github.com/dgallion1/adocparse/internal/token"
)

// Lexical rules, tried in order. Blank lines must come before single
// newlines, and section markers greedily match the longest run of '='
// (capped at 6 below).
var (
	reBlockSep = regexp.MustCompile(`\A\n\n+`)
	reNewline  = regexp.MustCompile(`\A\n`)
	reSpace    = regexp.MustCompile(`\A[ \t]+`)
	reMarker   = regexp.MustCompile(`\A={1,6}`)
	reBold     = regexp.MustCompile(`\A\*\*`)
	reItalic   = regexp.MustCompile(`\A_`)
	reText     = regexp.MustCompile(`\A[^\s*_=]+`)
)

// Lex tokenizes src into an ordered token sequence. Inline whitespace
// between words is discarded, two or more consecutive newlines fold into a
// single BlockSeparator, and anything that is not a recognized marker or
// delimiter folds into maximal TextRun spans. Bytes matching no rule (a
// lone '*', for example) are skipped, mirroring the upstream lexer.
func Lex(src string) []token.Token {
	var toks []token.Token
	pos := 0

	for pos < len(src) {
		rest := src[pos:]

		if m := reBlockSep.FindString(rest); m != "" {
			toks = append(toks, tok(token.BlockSeparator, pos, len(m)))
			pos += len(m)
			continue
		}
		if m := reNewline.FindString(rest); m != "" {
			toks = append(toks, tok(token.LineBreak, pos, len(m)))
			pos += len(m)
			continue
		}
		if m := reSpace.FindString(rest); m != "" {
			pos += len(m)
			continue
		}
		if m := reMarker.FindString(rest); m != "" {
			t := tok(token.SectionMarker, pos, len(m))
			t.Level = len(m)
			toks = append(toks, t)
			pos += len(m)
			continue
		}
		if m := reBold.FindString(rest); m != "" {
			toks = append(toks, tok(token.BoldDelimiter, pos, len(m)))
			pos += len(m)
			continue
		}
		if m := reItalic.FindString(rest); m != "" {
			toks = append(toks, tok(token.ItalicDelimiter, pos, len(m)))
			pos += len(m)
			continue
		}
		if m := reText.FindString(rest); m != "" {
			t := tok(token.TextRun, pos, len(m))
			t.Text = m
			toks = append(toks, t)
			pos += len(m)
			continue
		}

		// Unrecognized byte (stray '*' and the like).
		pos++
	}

	return toks
}

func tok(kind token.Kind, pos, width int) token.Token {
	return token.Token{Kind: kind, Span: token.Span{Start: pos, End: pos + width}}
}
