package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] file.js...",
	Short: "Tokenize JavaScript source files",
	Long:  `Tokenize breaks JavaScript source files down into tokens, with their locations and literal values`,
	Args:  cobra.MinimumNArgs(1),
	RunE:  runTokenize,
}

func init() {
	addScanFlags(tokenizeCmd)
	tokenizeCmd.Flags().Bool("stream", false, "decode files while scanning instead of reading them into memory first")
	tokenizeCmd.Flags().Int("width", 0, "maximum columns of a literal in pretty output (default 40)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	switch s.format {
	case "pretty", "json", "msgpack":
	default:
		return fmt.Errorf("unknown format %q (must be pretty, json or msgpack)", s.format)
	}

	results, err := forEachFile(cmd.Context(), args, s.jobs, func(path string) (*fileResult, error) {
		return tokenizeFile(path, s.scan)
	})
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}

	out := cmd.OutOrStdout()
	switch s.format {
	case "json":
		err = writeJSON(out, results)
	case "msgpack":
		err = writeMsgpack(out, results)
	default:
		err = writeTokensPretty(out, results, s.width)
	}
	if err != nil {
		return err
	}

	failed, tokens := 0, 0
	for _, res := range results {
		tokens += len(res.Tokens)
		if res.Error != nil {
			failed++
			if s.format == "pretty" {
				writeDiagnostic(os.Stderr, res.Path, res.Error)
			}
		}
	}
	if !s.quiet {
		fmt.Fprintf(os.Stderr, "scanned %d file(s), %d token(s)\n", len(results), tokens)
	}
	if failed != 0 {
		return fmt.Errorf("%d file(s) with lexical errors", failed)
	}
	return nil
}
