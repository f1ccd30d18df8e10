package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/tdewolff/jsscan/buffer"
	"github.com/tdewolff/jsscan/js"
)

func duplicateKeys(dups []duplicateKey) []string {
	keys := []string{}
	for _, dup := range dups {
		keys = append(keys, dup.Key)
	}
	return keys
}

func TestFindDuplicateKeys(t *testing.T) {
	var tests = []struct {
		js       string
		expected []string
	}{
		{"({a: 1, 'a': 2, b: {a: 3}, 1: 4, 1.0: 5, c: `${ {d: 1, d: 2} }`})", []string{"a", "1.0", "d"}},
		{"x = /{a:1,a:2}/; y = {k: 1, k: 2}", []string{"k"}},
		{"({a, a})", []string{}},
		{"f({a: 1}, {a: 2})", []string{}},
		{"({get a() {}, a: 1})", []string{}},
		{"({\\u0061: 1, a: 2})", []string{"a"}},
	}
	for _, tt := range tests {
		t.Run(tt.js, func(t *testing.T) {
			for _, manual := range []bool{false, true} {
				dups := findDuplicateKeys(buffer.NewMemoryString(tt.js), js.Options{ManualTemplates: manual})
				assert.Equal(t, tt.expected, duplicateKeys(dups), "manual templates %v", manual)
			}
		})
	}
}

func TestDupkeysFile(t *testing.T) {
	enc, err := htmlindex.Get("utf-8")
	require.NoError(t, err)
	path := writeFile(t, "test.js", "{a:1,\n a:2}")

	res, err := dupkeysFile(path, scanSettings{encoding: enc})
	require.NoError(t, err)
	require.Len(t, res.Duplicates, 1)
	dup := res.Duplicates[0]
	assert.Equal(t, "a", dup.Key)
	assert.Equal(t, 2, dup.Line)
	assert.Equal(t, 2, dup.Column)
	assert.Equal(t, 1, dup.PreviousLine)
	assert.Equal(t, 2, dup.PreviousColumn)
}
