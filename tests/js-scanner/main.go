//go:build gofuzz

package fuzz

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"github.com/tdewolff/jsscan/buffer"
	"github.com/tdewolff/jsscan/js"
)

type token struct {
	tt      js.TokenType
	loc     js.Location
	literal string
}

func tokenize(z *js.Scanner) []token {
	var tokens []token
	for {
		tt := z.Next()
		if tt == js.EOSToken {
			return tokens
		}
		tokens = append(tokens, token{tt, z.Location(), z.LiteralString()})
	}
}

// Fuzz checks that in-memory and streaming input scan alike, and that rewinding to a bookmark replays the same tokens.
func Fuzz(data []byte) int {
	if !utf8.Valid(data) {
		return 0
	}

	tokens := tokenize(js.NewScanner(buffer.NewMemoryString(string(data)), js.Options{}))
	tokens2 := tokenize(js.NewScanner(buffer.NewReader(bytes.NewReader(data)), js.Options{}))
	if fmt.Sprint(tokens) != fmt.Sprint(tokens2) {
		fmt.Println("Memory:", tokens)
		fmt.Println("Reader:", tokens2)
		panic("token streams not equal")
	}
	if len(tokens) == 0 {
		return 0
	}

	z := js.NewScanner(buffer.NewMemoryString(string(data)), js.Options{})
	z.Next()
	if !z.SetBookmark() {
		panic("bookmark not set")
	}
	tokenize(z)
	z.ResetToBookmark()
	if tokens3 := tokenize(z); fmt.Sprint(tokens[1:]) != fmt.Sprint(tokens3) {
		fmt.Println("Scan: ", tokens[1:])
		fmt.Println("Reset:", tokens3)
		panic("token streams not equal after reset")
	}
	return 1
}
