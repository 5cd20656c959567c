package main

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/dgallion1/adocparse/internal/outline"
	"github.com/dgallion1/adocparse/internal/parser"
	"github.com/spf13/cobra"
)

var outlineCmd = &cobra.Command{
	Use:   "outline FILE",
	Short: "Print the section outline of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutline,
}

func init() {
	rootCmd.AddCommand(outlineCmd)
}

func runOutline(cmd *cobra.Command, args []string) error {
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

	for _, e := range outline.Build(doc) {
		crumb := strings.Join(e.Breadcrumb, " > ")
		if crumb == "" {
			crumb = "(document)"
		}
		fmt.Printf("%s  [%d words]\n", crumb, e.Words)
	}
	return nil
}
