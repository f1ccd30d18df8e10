package js

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/tdewolff/test"

	"github.com/tdewolff/jsscan/buffer"
)

func TestBookmark(t *testing.T) {
	src := "a(b, 'c') => d + 1.5"
	z := NewScanner(buffer.NewMemoryString(src), Options{})
	test.T(t, z.Next(), IdentifierToken)
	want := tokenize(NewScanner(buffer.NewMemoryString(src), Options{}))[1:]

	b := NewBookmark(z)
	test.That(t, !b.HasBeenSet())
	test.That(t, b.Set(), "bookmark must be set")
	test.That(t, b.HasBeenSet())
	test.That(t, !b.Set(), "second bookmark must fail")

	for z.Next() != ArrowToken {
	}
	b.Reset()
	test.That(t, b.HasBeenReset())
	test.That(t, !b.HasBeenSet())
	test.T(t, z.Current(), IdentifierToken)
	test.String(t, z.LiteralString(), "a")
	test.T(t, z.Location(), Location{0, 1})
	test.T(t, z.Peek(), OpenParenToken)

	b.Reset()
	if diff := cmp.Diff(want, tokenize(z)); diff != "" {
		t.Errorf("tokens mismatch after reset (-want +got):\n%s", diff)
	}
	b.Release()
	test.That(t, !b.HasBeenReset())
}

func TestBookmarkLiterals(t *testing.T) {
	z := NewScanner(buffer.NewMemoryString("foo `bar` baz qux quux"), Options{})
	test.T(t, z.Next(), IdentifierToken)
	test.That(t, z.SetBookmark())
	for z.Next() != EOSToken {
	}
	z.ResetToBookmark()
	test.String(t, z.LiteralString(), "foo")
	test.String(t, z.NextLiteral().String(), "bar")
	test.String(t, z.NextRawLiteral().String(), "bar")
	test.T(t, z.Next(), TemplateTailToken)
	test.String(t, z.LiteralString(), "bar")
	test.T(t, z.Next(), IdentifierToken)
	test.String(t, z.LiteralString(), "baz")
}

func TestBookmarkTemplate(t *testing.T) {
	z := NewScanner(buffer.NewMemoryString("`a${ b }c` x"), Options{})
	test.T(t, z.Next(), TemplateSpanToken)
	test.That(t, z.SetBookmark())
	test.T(t, z.Next(), IdentifierToken)
	test.T(t, z.Next(), TemplateTailToken)
	z.ResetToBookmark()

	tokens := tokenize(z)
	test.T(t, len(tokens), 3)
	test.T(t, tokens[0].Kind, IdentifierToken)
	test.T(t, tokens[1].Kind, TemplateTailToken)
	test.T(t, tokens[2].Kind, IdentifierToken)
}

func TestBookmarkFailure(t *testing.T) {
	z := NewScanner(buffer.NewMemoryString("a b c"), Options{})
	z.Next()
	z.PeekAhead()
	b := NewBookmark(z)
	test.That(t, !b.Set(), "bookmark after PeekAhead must fail")
	b.Reset()
	test.That(t, !b.HasBeenReset(), "reset without bookmark must do nothing")
	test.T(t, z.Next(), IdentifierToken)
	test.String(t, z.LiteralString(), "b")

	test.That(t, b.Set())
	b.Release()
	z.Next()
	b.Reset()
	test.String(t, z.LiteralString(), "c")
	test.T(t, z.Next(), EOSToken)
}

func TestBookmarkKeepsError(t *testing.T) {
	z := NewScanner(buffer.NewMemoryString("a 'b"), Options{})
	z.Next()
	test.That(t, z.SetBookmark())
	tokenize(z)
	test.T(t, z.ErrorKind(), ErrUnterminatedString)
	z.ResetToBookmark()
	test.T(t, z.ErrorKind(), ErrUnterminatedString)
	test.T(t, z.Peek(), IllegalToken)
}

func TestBookmarkReader(t *testing.T) {
	var sb strings.Builder
	for i := 0; i < 50; i++ {
		sb.WriteString("f(x, `y${z}\U0001F600`, /* c */ 'w');\n")
	}
	src := sb.String()

	defer func(minBuf int) { buffer.MinBuf = minBuf }(buffer.MinBuf)
	buffer.MinBuf = 8

	want := tokenize(NewScanner(buffer.NewMemoryString(src), Options{}))
	z := NewScanner(buffer.NewReader(strings.NewReader(src)), Options{})
	var got []token
	for i := 0; i < 20; i++ {
		got = append(got, token{z.Next(), z.Location(), z.LiteralString()})
	}
	test.That(t, z.SetBookmark())
	for i := 0; i < 100; i++ {
		z.Next()
	}
	z.ResetToBookmark()
	got = append(got, tokenize(z)...)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("tokens mismatch (-memory +reader):\n%s", diff)
	}
}

func TestBookmarkRepeated(t *testing.T) {
	var tests = []string{
		"a(b, 'c') => d + 1.5",
		"`a${ {b: `c${d}e`} }f` / g",
		"\U0001F600 x\U00010400y = '\U0001F600\\u{1F600}'",
		"x <!-- y\n--> z\n/* \u2028 */ w",
	}
	defer func(minBuf int) { buffer.MinBuf = minBuf }(buffer.MinBuf)
	for _, src := range tests {
		t.Run(src, func(t *testing.T) {
			want := tokenize(NewScanner(buffer.NewMemoryString(src), Options{}))
			for _, minBuf := range []int{4096, 2, 5} {
				buffer.MinBuf = minBuf
				for _, stream := range []buffer.Stream{buffer.NewMemoryString(src), buffer.NewReader(strings.NewReader(src))} {
					z := NewScanner(stream, Options{})
					var got []token
					for {
						for k := 0; k < 3; k++ {
							test.That(t, z.SetBookmark(), "bookmark must be set")
							z.ResetToBookmark()
						}
						tt := z.Next()
						if tt == EOSToken {
							break
						}
						got = append(got, token{tt, z.Location(), z.LiteralString()})
					}
					if diff := cmp.Diff(want, got); diff != "" {
						t.Errorf("tokens mismatch with %T and MinBuf=%d (-want +got):\n%s", stream, minBuf, diff)
					}
				}
			}
		})
	}
}
