package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/tdewolff/jsscan"
	"github.com/tdewolff/jsscan/buffer"
	"github.com/tdewolff/jsscan/js"
)

// tokenWalker drives a scanner the way a parser would. It decides whether a slash starts a regular expression and, with manual templates, whether a closing brace continues a template.
type tokenWalker struct {
	z      *js.Scanner
	prev   js.TokenType
	manual bool
	braces []bool // true for a template substitution
}

func newTokenWalker(z *js.Scanner, o js.Options) *tokenWalker {
	return &tokenWalker{z: z, manual: o.ManualTemplates}
}

func (w *tokenWalker) Next() js.TokenType {
	z := w.z
	continuation := false
	switch z.Peek() {
	case js.DivToken, js.DivEqToken:
		if regExpAllowed(w.prev) && z.ScanRegExpPattern(z.Peek() == js.DivEqToken) {
			z.ScanRegExpFlags()
		}
	case js.CloseBraceToken:
		if w.manual && 0 < len(w.braces) && w.braces[len(w.braces)-1] {
			z.ScanTemplateContinuation()
			continuation = true
		}
	}

	tt := z.Next()
	if w.manual {
		switch {
		case continuation:
			if tt != js.TemplateSpanToken {
				w.braces = w.braces[:len(w.braces)-1]
			}
		case tt == js.TemplateSpanToken:
			w.braces = append(w.braces, true)
		case tt == js.OpenBraceToken:
			w.braces = append(w.braces, false)
		case tt == js.CloseBraceToken && 0 < len(w.braces):
			w.braces = w.braces[:len(w.braces)-1]
		}
	}
	w.prev = tt
	return tt
}

// regExpAllowed returns true if a slash after prev starts a regular expression rather than a division.
func regExpAllowed(prev js.TokenType) bool {
	switch prev {
	case js.IdentifierToken, js.NumericToken, js.StringToken, js.RegExpToken, js.TemplateTailToken,
		js.CloseParenToken, js.CloseBracketToken, js.CloseBraceToken, js.IncrToken, js.DecrToken,
		js.ThisToken, js.SuperToken, js.NullToken, js.TrueToken, js.FalseToken:
		return false
	case js.AsyncToken, js.LetToken, js.StaticToken:
		return false // used as identifiers
	}
	return true
}

////////////////////////////////////////////////////////////////

type tokenRecord struct {
	Kind          string `json:"kind" msgpack:"kind"`
	Begin         int    `json:"begin" msgpack:"begin"`
	End           int    `json:"end" msgpack:"end"`
	Literal       string `json:"literal,omitempty" msgpack:"literal,omitempty"`
	Raw           string `json:"raw,omitempty" msgpack:"raw,omitempty"`
	Smi           *int   `json:"smi,omitempty" msgpack:"smi,omitempty"`
	NewlineBefore bool   `json:"newlineBefore,omitempty" msgpack:"newline_before,omitempty"`

	tt js.TokenType
}

type fileResult struct {
	Path             string        `json:"path" msgpack:"path"`
	Tokens           []tokenRecord `json:"tokens" msgpack:"tokens"`
	Error            *jsscan.Error `json:"error,omitempty" msgpack:"error,omitempty"`
	SourceURL        string        `json:"sourceURL,omitempty" msgpack:"source_url,omitempty"`
	SourceMappingURL string        `json:"sourceMappingURL,omitempty" msgpack:"source_mapping_url,omitempty"`
	HTMLComment      bool          `json:"htmlComment,omitempty" msgpack:"html_comment,omitempty"`
}

// scanTokens scans all tokens of stream. The lexical error, if any, is left in the returned scanner.
func scanTokens(path string, stream buffer.Stream, o js.Options) (*fileResult, *js.Scanner) {
	z := js.NewScanner(stream, o)
	w := newTokenWalker(z, o)
	res := &fileResult{Path: path}
	for {
		newline := z.HasAnyLineTerminatorBeforeNext()
		tt := w.Next()
		if tt == js.EOSToken {
			break
		}
		loc := z.Location()
		rec := tokenRecord{
			Kind:          tt.String(),
			Begin:         loc.Begin,
			End:           loc.End,
			Literal:       z.LiteralString(),
			NewlineBefore: newline,
			tt:            tt,
		}
		if raw := z.RawLiteral(); raw != nil {
			rec.Raw = raw.String()
		}
		if smi, ok := z.SmiValue(); ok {
			rec.Smi = &smi
		}
		res.Tokens = append(res.Tokens, rec)
	}
	res.SourceURL = z.SourceURL().String()
	res.SourceMappingURL = z.SourceMappingURL().String()
	res.HTMLComment = z.FoundHTMLComment()
	return res, z
}

// tokenizeFile scans the file at path. A lexical error is part of the result, while failing to read the file is returned as an error.
func tokenizeFile(path string, s scanSettings) (*fileResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	var src []uint16
	var stream buffer.Stream
	if s.stream {
		stream = buffer.NewReaderEncoding(f, s.encoding)
	} else {
		if src, err = buffer.ReadAll(f, s.encoding); err != nil {
			return nil, fmt.Errorf("failed to read: %w", err)
		}
		stream = buffer.NewMemory(src)
	}

	res, z := scanTokens(path, stream, s.options)
	if r, ok := stream.(*buffer.Reader); ok && r.Err() != nil {
		return nil, fmt.Errorf("failed to read: %w", r.Err())
	}
	if z.HasError() {
		if src == nil {
			// the stream discarded the source, decode it again for the error context
			if _, err := f.Seek(0, io.SeekStart); err != nil {
				return nil, fmt.Errorf("failed to rewind: %w", err)
			}
			if src, err = buffer.ReadAll(f, s.encoding); err != nil {
				return nil, fmt.Errorf("failed to read: %w", err)
			}
		}
		res.Error = jsscan.NewErrorScanner(z, src)
	}
	return res, nil
}

// forEachFile runs fn for every path with at most jobs running at once. Results are stored by index, so their order follows paths.
func forEachFile[T any](ctx context.Context, paths []string, jobs int, fn func(path string) (T, error)) ([]T, error) {
	results := make([]T, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))
	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			res, err := fn(path)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
