package js

import (
	"github.com/tdewolff/jsscan/buffer"
)

type bookmarkState uint8

const (
	bookmarkNone bookmarkState = iota
	bookmarkSet
	bookmarkApplied
)

// bookmark holds the scanner state to rewind to. The stream position is bookmarked by the stream itself, the literals of the current and next token are copied since their pool slots will be reused.
type bookmark struct {
	state          bookmarkState
	c0             int32
	current, next  tokenDesc
	literals       [2]buffer.Literal
	raws           [2]buffer.Literal
	braceDepth     int
	templateDepths []int
}

// SetBookmark records the scanner state so that ResetToBookmark can rewind to it. It fails if a bookmark is outstanding, after PeekAhead, or if the stream cannot rewind from here.
func (s *Scanner) SetBookmark() bool {
	if s.mark.state == bookmarkSet || s.nextNext.kind != UninitializedToken || !s.src.SetBookmark() {
		return false
	}
	m := &s.mark
	m.state = bookmarkSet
	m.c0 = s.c0
	m.current, m.next = s.current, s.next
	m.literals[0].CopyFrom(s.literalOf(&s.current))
	m.raws[0].CopyFrom(s.rawLiteralOf(&s.current))
	m.literals[1].CopyFrom(s.literalOf(&s.next))
	m.raws[1].CopyFrom(s.rawLiteralOf(&s.next))
	m.braceDepth = s.braceDepth
	m.templateDepths = append(m.templateDepths[:0], s.templateDepths...)
	return true
}

// ResetToBookmark rewinds to the state recorded by SetBookmark. It does nothing if no bookmark is set or if it was already applied. Recorded errors and octal positions are kept.
func (s *Scanner) ResetToBookmark() {
	m := &s.mark
	if m.state != bookmarkSet {
		return
	}
	s.src.ResetToBookmark()
	s.c0 = m.c0
	s.current = s.restoreDesc(m.current, 0)
	s.next = s.restoreDesc(m.next, 1)
	s.nextNext = emptyDesc()
	s.holding = false
	s.braceDepth = m.braceDepth
	s.templateDepths = append(s.templateDepths[:0], m.templateDepths...)
	m.state = bookmarkApplied
}

// restoreDesc puts the copied literals of a bookmarked token into pool slot i.
func (s *Scanner) restoreDesc(t tokenDesc, i int8) tokenDesc {
	if t.literal != noLiteral {
		s.literals[i].CopyFrom(&s.mark.literals[i])
		t.literal = i
	}
	if t.raw != noLiteral {
		s.raws[i].CopyFrom(&s.mark.raws[i])
		t.raw = i
	}
	return t
}

func (s *Scanner) dropBookmark() {
	s.mark.state = bookmarkNone
	if d, ok := s.src.(interface{ DropBookmark() }); ok {
		d.DropBookmark()
	}
}

////////////////////////////////////////////////////////////////

// Bookmark is a single rewind point for speculative scanning, such as telling an arrow function's parameters apart from a parenthesized expression. Release it when done, whether or not it was reset to.
type Bookmark struct {
	s *Scanner
}

// NewBookmark returns an unset bookmark for s.
func NewBookmark(s *Scanner) *Bookmark {
	return &Bookmark{s}
}

// Set records the current scanner state and returns false if that is not possible.
func (b *Bookmark) Set() bool {
	return b.s.SetBookmark()
}

// Reset rewinds the scanner to the recorded state.
func (b *Bookmark) Reset() {
	b.s.ResetToBookmark()
}

// HasBeenSet returns true if the bookmark is set and not yet reset to.
func (b *Bookmark) HasBeenSet() bool {
	return b.s.mark.state == bookmarkSet
}

// HasBeenReset returns true if the scanner was rewound to the bookmark.
func (b *Bookmark) HasBeenReset() bool {
	return b.s.mark.state == bookmarkApplied
}

// Release forgets the bookmark, allowing the stream to discard the source it retained for it.
func (b *Bookmark) Release() {
	b.s.dropBookmark()
}
