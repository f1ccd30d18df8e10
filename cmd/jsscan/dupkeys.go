package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tdewolff/jsscan"
	"github.com/tdewolff/jsscan/buffer"
	"github.com/tdewolff/jsscan/js"
)

var dupkeysCmd = &cobra.Command{
	Use:   "dupkeys [flags] file.js...",
	Short: "Report duplicate keys in object literals",
	Long: `Dupkeys reports keys that occur twice in the same object literal, comparing numeric keys by value.
Keys are recognized from tokens alone: an identifier, string or number right after { or , and right before :.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDupkeys,
}

func init() {
	addScanFlags(dupkeysCmd)
}

// duplicateKey is a key that occurred before at Previous in the same object.
type duplicateKey struct {
	Key      string `json:"key"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Previous int    `json:"-"`
	Offset   int    `json:"-"`

	PreviousLine   int `json:"previousLine"`
	PreviousColumn int `json:"previousColumn"`
}

type dupkeysResult struct {
	Path       string         `json:"path"`
	Duplicates []duplicateKey `json:"duplicates"`
}

func isPropertyKey(tt js.TokenType) bool {
	return js.IsIdentifier(tt) || tt == js.StringToken || tt == js.NumericToken ||
		tt == js.EscapedKeywordToken || tt == js.EscapedStrictReservedWordToken
}

// findDuplicateKeys keeps a duplicate finder per open brace and reports keys that repeat at the same level.
func findDuplicateKeys(stream buffer.Stream, o js.Options) []duplicateKey {
	z := js.NewScanner(stream, o)
	w := newTokenWalker(z, o)

	var dups []duplicateKey
	var objects []*js.DuplicateFinder
	prev := js.UninitializedToken
	for {
		tt := w.Next()
		switch {
		case tt == js.EOSToken:
			return dups
		case tt == js.OpenBraceToken:
			objects = append(objects, &js.DuplicateFinder{})
		case tt == js.CloseBraceToken:
			if 0 < len(objects) {
				objects = objects[:len(objects)-1]
			}
		case isPropertyKey(tt) && (prev == js.OpenBraceToken || prev == js.CommaToken) && z.Peek() == js.ColonToken && 0 < len(objects):
			offset := z.Location().Begin
			if previous, ok := z.FindSymbol(objects[len(objects)-1], offset); ok {
				dups = append(dups, duplicateKey{
					Key:      z.LiteralString(),
					Previous: previous,
					Offset:   offset,
				})
			}
		}
		prev = tt
	}
}

func dupkeysFile(path string, s scanSettings) (*dupkeysResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	src, err := buffer.ReadAll(f, s.encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to read: %w", err)
	}
	res := &dupkeysResult{Path: path, Duplicates: findDuplicateKeys(buffer.NewMemory(src), s.options)}
	for i, dup := range res.Duplicates {
		res.Duplicates[i].Line, res.Duplicates[i].Column, _ = jsscan.Position(src, dup.Offset)
		res.Duplicates[i].PreviousLine, res.Duplicates[i].PreviousColumn, _ = jsscan.Position(src, dup.Previous)
	}
	return res, nil
}

func runDupkeys(cmd *cobra.Command, args []string) error {
	s, err := resolveSettings(cmd)
	if err != nil {
		return err
	}
	switch s.format {
	case "pretty", "json":
	default:
		return fmt.Errorf("unknown format %q (must be pretty or json)", s.format)
	}

	results, err := forEachFile(cmd.Context(), args, s.jobs, func(path string) (*dupkeysResult, error) {
		return dupkeysFile(path, s.scan)
	})
	if err != nil {
		return fmt.Errorf("dupkeys failed: %w", err)
	}

	if s.format == "json" {
		return writeJSON(cmd.OutOrStdout(), results)
	}
	n := 0
	for _, res := range results {
		writeDuplicatesPretty(cmd.OutOrStdout(), res)
		n += len(res.Duplicates)
	}
	if !s.quiet {
		fmt.Fprintf(os.Stderr, "found %d duplicate key(s) in %d file(s)\n", n, len(results))
	}
	return nil
}
