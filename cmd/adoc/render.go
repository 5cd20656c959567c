package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/dgallion1/adocparse/internal/parser"
	"github.com/dgallion1/adocparse/internal/render"
	"github.com/spf13/cobra"
)

var renderFormat string

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Parse a document and render it (html, adoc, text)",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderFormat, "format", "html", "output format: html, adoc, text")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
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
	for _, e := range errList {
		fmt.Fprintln(os.Stderr, "parse error:", e)
	}

	switch renderFormat {
	case "html":
		fmt.Print(render.HTML(doc))
	case "adoc":
		fmt.Print(render.ADoc(doc))
	case "text":
		fmt.Print(render.Text(doc))
	default:
		return fmt.Errorf("unsupported render format: %s", renderFormat)
	}
	return nil
}
