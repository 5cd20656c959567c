// Command adoc is a small inspection CLI for the parser: it dumps tokens,
// parsed trees, rendered output, and outlines for local files.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "adoc",
	Short:         "Inspect and convert lightweight markup documents",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// readInput reads the named file, or stdin when path is "-".
func readInput(path string) ([]byte, string, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		return data, "stdin.adoc", err
	}
	data, err := os.ReadFile(path)
	return data, path, err
}
