package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/tdewolff/jsscan"
	"github.com/tdewolff/jsscan/js"
)

var (
	headerColor   = color.New(color.Bold)
	locationColor = color.New(color.Faint)
	keywordColor  = color.New(color.FgBlue, color.Bold)
	stringColor   = color.New(color.FgGreen)
	numberColor   = color.New(color.FgMagenta)
	regExpColor   = color.New(color.FgCyan)
	errorColor    = color.New(color.FgRed, color.Bold)
)

func tokenColor(tt js.TokenType) *color.Color {
	switch {
	case tt == js.IllegalToken:
		return errorColor
	case js.IsKeyword(tt), tt == js.EscapedKeywordToken, tt == js.EscapedStrictReservedWordToken:
		return keywordColor
	case tt == js.StringToken, js.IsTemplate(tt):
		return stringColor
	case tt == js.NumericToken:
		return numberColor
	case tt == js.RegExpToken:
		return regExpColor
	}
	return nil
}

func writeTokensPretty(w io.Writer, results []*fileResult, width int) error {
	for _, res := range results {
		if _, err := fmt.Fprintln(w, headerColor.Sprint(res.Path)); err != nil {
			return err
		}
		for _, t := range res.Tokens {
			loc := fmt.Sprintf("%d-%d", t.Begin, t.End)
			kind := runewidth.FillRight(t.Kind, 14)
			if c := tokenColor(t.tt); c != nil {
				kind = c.Sprint(kind)
			}
			line := locationColor.Sprint(runewidth.FillRight(loc, 11)) + " " + kind
			if t.Literal != "" || js.IsTemplate(t.tt) || t.tt == js.StringToken {
				line += " \"" + jsscan.Printable(t.Literal, width) + "\""
			}
			if t.Raw != "" {
				line += " raw=\"" + jsscan.Printable(t.Raw, width) + "\""
			}
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		if res.SourceURL != "" {
			fmt.Fprintf(w, "sourceURL: %s\n", res.SourceURL)
		}
		if res.SourceMappingURL != "" {
			fmt.Fprintf(w, "sourceMappingURL: %s\n", res.SourceMappingURL)
		}
		if res.HTMLComment {
			fmt.Fprintln(w, "found HTML-like comment")
		}
	}
	return nil
}

func writeDiagnostic(w io.Writer, path string, err *jsscan.Error) {
	fmt.Fprintf(w, "%s: %s %s\n", headerColor.Sprint(path), errorColor.Sprint("error:"), err.Error())
}

func writeDuplicatesPretty(w io.Writer, res *dupkeysResult) {
	for _, dup := range res.Duplicates {
		fmt.Fprintf(w, "%s:%d:%d: duplicate key %s (previous at %d:%d)\n",
			headerColor.Sprint(res.Path), dup.Line, dup.Column,
			keywordColor.Sprint("\""+jsscan.Printable(dup.Key, 0)+"\""), dup.PreviousLine, dup.PreviousColumn)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeMsgpack(w io.Writer, v any) error {
	return msgpack.NewEncoder(w).Encode(v)
}
