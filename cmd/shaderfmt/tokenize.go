package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"shaderfmt/internal/diagfmt"
	"shaderfmt/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file>",
	Short: "Dump the token stream of a shader file",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "text", "output format (text|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	outputFormat, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}

	fileSet, toks, bag, err := driver.TokenizeFile(args[0], maxDiagnostics)
	if err != nil {
		bag.Sort()
		diagfmt.Pretty(os.Stderr, bag, fileSet, diagfmt.PrettyOpts{Color: colorEnabled(cmd)})
		return fmt.Errorf("tokenize: %s: %w", args[0], err)
	}

	switch outputFormat {
	case "text":
		return diagfmt.FormatTokensPretty(os.Stdout, toks, fileSet)
	case "json":
		return diagfmt.FormatTokensJSON(os.Stdout, toks)
	default:
		return fmt.Errorf("tokenize: unsupported output format %q", outputFormat)
	}
}
