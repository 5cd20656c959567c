package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dgallion1/adocparse/internal/doctree"
	"github.com/dgallion1/adocparse/internal/parser"
	"github.com/spf13/cobra"
)

var parseJSON bool

var parseCmd = &cobra.Command{
	Use:   "parse FILE",
	Short: "Parse a document and print its tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().BoolVar(&parseJSON, "json", false, "print the tree as JSON")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	data, filename, err := readInput(args[0])
	if err != nil {
		return err
	}

	p, err := parser.ForFile(filename)
	if err != nil {
		return err
	}
	doc, err := p.Parse(bytes.NewReader(data), filename)

	var errList parser.ErrorList
	if err != nil && !errors.As(err, &errList) {
		return err
	}

	if parseJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(doc); encErr != nil {
			return encErr
		}
	} else {
		printBlocks(doc.Blocks, 0)
		fmt.Printf("\ntotal: %d top-level blocks\n", len(doc.Blocks))
	}

	if len(errList) > 0 {
		fmt.Fprintf(os.Stderr, "\n%d parse error(s):\n", len(errList))
		for _, e := range errList {
			fmt.Fprintln(os.Stderr, " -", e)
		}
		os.Exit(1)
	}
	return nil
}

func printBlocks(blocks []doctree.Block, indent int) {
	pad := strings.Repeat("  ", indent)
	for _, b := range blocks {
		switch b := b.(type) {
		case *doctree.Section:
			fmt.Printf("%sSection (level %d): %q\n", pad, b.Level, doctree.PlainText(b.Title))
			printBlocks(b.Children, indent+1)
		case *doctree.Paragraph:
			fmt.Printf("%sParagraph\n", pad)
			printInlines(b.Content, indent+1)
		}
	}
}

func printInlines(inlines []doctree.Inline, indent int) {
	pad := strings.Repeat("  ", indent)
	for _, n := range inlines {
		switch n := n.(type) {
		case *doctree.Text:
			fmt.Printf("%sText %q\n", pad, n.Value)
		case *doctree.Bold:
			fmt.Printf("%sBold\n", pad)
			printInlines(n.Content, indent+1)
		case *doctree.Italic:
			fmt.Printf("%sItalic\n", pad)
			printInlines(n.Content, indent+1)
		}
	}
}
