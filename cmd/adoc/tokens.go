package main

import (
	"fmt"
	"strings"

	"github.com/dgallion1/adocparse/internal/lexer"
	"github.com/spf13/cobra"
)

var tokensCmd = &cobra.Command{
	Use:   "tokens FILE",
	Short: "Dump the token sequence for a markup file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
}

func runTokens(cmd *cobra.Command, args []string) error {
	data, _, err := readInput(args[0])
	if err != nil {
		return err
	}

	toks := lexer.Lex(string(data))

	fmt.Printf("%-16s %-8s %-20s %s\n", "KIND", "LEVEL", "TEXT", "SPAN")
	fmt.Println(strings.Repeat("-", 60))
	for _, t := range toks {
		level := ""
		if t.Level > 0 {
			level = fmt.Sprint(t.Level)
		}
		text := t.Text
		if len(text) > 20 {
			text = text[:17] + "..."
		}
		fmt.Printf("%-16s %-8s %-20s %d..%d\n", t.Kind, level, text, t.Span.Start, t.Span.End)
	}
	fmt.Printf("\ntotal: %d tokens\n", len(toks))
	return nil
}
