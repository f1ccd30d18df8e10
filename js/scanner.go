package js

import (
	"math"

	"github.com/tdewolff/jsscan/buffer"
	"github.com/tdewolff/jsscan/strconv"
)

const noLiteral int8 = -1

// tokenDesc describes a scanned token. The literal and raw fields are indices into the scanner's literal pools.
type tokenDesc struct {
	kind                TokenType
	loc                 Location
	literal, raw        int8
	smi                 int // -1 if not a small integer
	escaped             bool
	afterLineTerminator bool
}

func emptyDesc() tokenDesc {
	return tokenDesc{literal: noLiteral, raw: noLiteral, smi: -1}
}

type advanceMode uint8

const (
	checkSurrogate advanceMode = 1 << iota // combine a lead surrogate with the trail surrogate that follows
	captureRaw                             // copy the consumed character into the raw literal
)

// Scanner tokenizes ECMAScript source read from a buffer.Stream. It keeps one token of lookahead, the token returned by Peek, and scans a second on request by PeekAhead.
// Literal values returned by the accessors remain valid until the token is two calls to Next behind.
type Scanner struct {
	src buffer.Stream
	o   Options
	c0  int32

	current, next, nextNext tokenDesc
	held                    tokenDesc // current token during PeekAhead
	holding                 bool

	literals [3]buffer.Literal
	raws     [3]buffer.Literal

	sourceURL        buffer.Literal
	sourceMappingURL buffer.Literal
	magicName        buffer.Literal
	foundHTMLComment bool

	octalPos  Location
	octalKind OctalKind

	errKind ErrorKind
	errLoc  Location

	braceDepth     int
	templateDepths []int // brace depth at each open template substitution

	mark bookmark
}

// NewScanner returns a new Scanner for the given stream and scans the first token.
func NewScanner(src buffer.Stream, o Options) *Scanner {
	s := &Scanner{
		src:      src,
		o:        o,
		current:  emptyDesc(),
		next:     emptyDesc(),
		nextNext: emptyDesc(),
		octalPos: InvalidLocation(),
		errLoc:   InvalidLocation(),
	}
	s.advance()
	s.next.afterLineTerminator = true
	s.scan()
	return s
}

// Next returns the next token and makes it the current token.
func (s *Scanner) Next() TokenType {
	s.current = s.next
	if s.nextNext.kind != UninitializedToken {
		s.next = s.nextNext
		s.nextNext = emptyDesc()
	} else {
		s.next = emptyDesc()
		s.scan()
	}
	return s.current.kind
}

// Peek returns the kind of the next token without consuming it.
func (s *Scanner) Peek() TokenType {
	return s.next.kind
}

// PeekAhead returns the kind of the token after the next token.
func (s *Scanner) PeekAhead() TokenType {
	if s.nextNext.kind != UninitializedToken {
		return s.nextNext.kind
	}
	s.held, s.holding = s.current, true
	s.Next()
	s.nextNext = s.next
	s.next = s.current
	s.current = s.held
	s.holding = false
	return s.nextNext.kind
}

// Current returns the kind of the token last returned by Next.
func (s *Scanner) Current() TokenType {
	return s.current.kind
}

// Location returns the location of the current token.
func (s *Scanner) Location() Location {
	return s.current.loc
}

// PeekLocation returns the location of the next token.
func (s *Scanner) PeekLocation() Location {
	return s.next.loc
}

// HasAnyLineTerminatorBeforeNext returns true if a line terminator, possibly inside a multi-line comment, separates the current and the next token.
func (s *Scanner) HasAnyLineTerminatorBeforeNext() bool {
	return s.next.afterLineTerminator
}

// HasAnyLineTerminatorAfterNext returns true if a line terminator separates the next token from the one after it. It is only valid after PeekAhead.
func (s *Scanner) HasAnyLineTerminatorAfterNext() bool {
	return s.nextNext.afterLineTerminator
}

// SeekForward skips the source up to pos and scans the token there as the next token. The current token is invalid afterwards. Seeking backwards is ignored. A pos between the two halves of a surrogate pair resumes at the lone trail surrogate.
func (s *Scanner) SeekForward(pos int) {
	if pos == s.next.loc.Begin || pos < s.sourcePos() {
		return
	}
	if pos != s.sourcePos() {
		if n := pos - s.src.Pos(); n < 0 {
			// pos is the trail surrogate of c0
			s.src.PushBack(0xDC00 + (s.c0-0x10000)&0x3FF)
			s.c0 = s.src.Advance()
		} else {
			if 0 < n {
				s.src.SeekForward(n)
			}
			s.advance()
		}
	}
	s.next = emptyDesc()
	s.nextNext = emptyDesc()
	s.scan()
}

////////////////////////////////////////////////////////////////

func (s *Scanner) literalOf(t *tokenDesc) *buffer.Literal {
	if t.literal == noLiteral {
		return nil
	}
	return &s.literals[t.literal]
}

func (s *Scanner) rawLiteralOf(t *tokenDesc) *buffer.Literal {
	if t.raw == noLiteral {
		return nil
	}
	return &s.raws[t.raw]
}

// Literal returns the cooked literal value of the current token, or nil if it has none. Identifiers, keywords, strings, numbers, templates and regular expression patterns have a literal.
func (s *Scanner) Literal() *buffer.Literal {
	return s.literalOf(&s.current)
}

// RawLiteral returns the raw source text of the current template token, or the flags of a regular expression.
func (s *Scanner) RawLiteral() *buffer.Literal {
	return s.rawLiteralOf(&s.current)
}

// IsLiteralOneByte returns true if the literal of the current token is absent or fits in Latin-1.
func (s *Scanner) IsLiteralOneByte() bool {
	l := s.literalOf(&s.current)
	return l == nil || l.OneByte()
}

// LiteralOneByte returns the Latin-1 literal of the current token, it is only valid if IsLiteralOneByte is true.
func (s *Scanner) LiteralOneByte() []byte {
	if l := s.literalOf(&s.current); l != nil {
		return l.OneByteLiteral()
	}
	return nil
}

// LiteralTwoByte returns the UTF-16 literal of the current token, it is only valid if IsLiteralOneByte is false.
func (s *Scanner) LiteralTwoByte() []uint16 {
	if l := s.literalOf(&s.current); l != nil {
		return l.TwoByteLiteral()
	}
	return nil
}

// LiteralString returns the literal value of the current token converted to UTF-8.
func (s *Scanner) LiteralString() string {
	if l := s.literalOf(&s.current); l != nil {
		return l.String()
	}
	return ""
}

// LiteralContainsEscapes returns true if the current token contains escape sequences or line continuations.
func (s *Scanner) LiteralContainsEscapes() bool {
	return s.current.escaped
}

// IsLiteralContextualKeyword returns true if the current token is an unescaped identifier spelled as keyword, such as of or get.
func (s *Scanner) IsLiteralContextualKeyword(keyword string) bool {
	l := s.literalOf(&s.current)
	return l != nil && l.IsContextualKeyword(keyword)
}

// LiteralMatches returns true if the literal of the current token equals str. With allowEscapes false, literals written with escapes never match.
func (s *Scanner) LiteralMatches(str string, allowEscapes bool) bool {
	if !allowEscapes && s.current.escaped {
		return false
	}
	return s.IsLiteralContextualKeyword(str)
}

// IsGetOrSet reports whether the current token is the unescaped identifier get or set.
func (s *Scanner) IsGetOrSet() (isGet, isSet bool) {
	if s.current.escaped {
		return false, false
	}
	l := s.literalOf(&s.current)
	if l == nil || !l.OneByte() || l.Length() != 3 {
		return false, false
	}
	isGet = l.Equal("get")
	isSet = !isGet && l.Equal("set")
	return isGet, isSet
}

// SmiValue returns the value of the current numeric token if it is a decimal integer that fits in 31 bits.
func (s *Scanner) SmiValue() (int, bool) {
	return s.current.smi, 0 <= s.current.smi
}

// NumberValue returns the value of the current numeric token, or NaN for other tokens.
func (s *Scanner) NumberValue() float64 {
	if 0 <= s.current.smi {
		return float64(s.current.smi)
	}
	l := s.literalOf(&s.current)
	if s.current.kind != NumericToken || l == nil || !l.OneByte() {
		return math.NaN()
	}
	f, ok := strconv.ParseLiteral(l.OneByteLiteral())
	if !ok {
		return math.NaN()
	}
	return f
}

// NextLiteral returns the cooked literal of the next token, or nil.
func (s *Scanner) NextLiteral() *buffer.Literal {
	return s.literalOf(&s.next)
}

// NextRawLiteral returns the raw literal of the next token, or nil.
func (s *Scanner) NextRawLiteral() *buffer.Literal {
	return s.rawLiteralOf(&s.next)
}

// IsNextLiteralOneByte is IsLiteralOneByte for the next token.
func (s *Scanner) IsNextLiteralOneByte() bool {
	l := s.literalOf(&s.next)
	return l == nil || l.OneByte()
}

// NextLiteralContainsEscapes returns true if the next token was written with escape sequences.
func (s *Scanner) NextLiteralContainsEscapes() bool {
	return s.next.escaped
}

// IsNextContextualKeyword is IsLiteralContextualKeyword for the next token.
func (s *Scanner) IsNextContextualKeyword(keyword string) bool {
	l := s.literalOf(&s.next)
	return l != nil && l.IsContextualKeyword(keyword)
}

// NextSmiValue is SmiValue for the next token.
func (s *Scanner) NextSmiValue() (int, bool) {
	return s.next.smi, 0 <= s.next.smi
}

// FindSymbol adds the literal of the current token to the duplicate finder. It returns the value previously associated with an equal literal and true, or value and false if the literal was not seen before. Numeric literals are compared by their numeric value.
func (s *Scanner) FindSymbol(f *DuplicateFinder, value int) (int, bool) {
	l := s.literalOf(&s.current)
	if l == nil {
		return f.AddOneByteSymbol(nil, value)
	} else if s.current.kind == NumericToken && l.OneByte() {
		return f.AddNumber(l.OneByteLiteral(), value)
	} else if l.OneByte() {
		return f.AddOneByteSymbol(l.OneByteLiteral(), value)
	}
	return f.AddTwoByteSymbol(l.TwoByteLiteral(), value)
}

// SourceURL returns the value of the last //# sourceURL= comment.
func (s *Scanner) SourceURL() *buffer.Literal {
	return &s.sourceURL
}

// SourceMappingURL returns the value of the last //# sourceMappingURL= comment.
func (s *Scanner) SourceMappingURL() *buffer.Literal {
	return &s.sourceMappingURL
}

// FoundHTMLComment returns true if an HTML-like comment (<!-- or -->) was skipped.
func (s *Scanner) FoundHTMLComment() bool {
	return s.foundHTMLComment
}

////////////////////////////////////////////////////////////////

// HasError returns true if a lexical error was recorded.
func (s *Scanner) HasError() bool {
	return s.errKind != ErrNone
}

// ErrorKind returns the kind of the recorded error, or ErrNone.
func (s *Scanner) ErrorKind() ErrorKind {
	return s.errKind
}

// ErrorLocation returns the location of the recorded error, or an invalid location.
func (s *Scanner) ErrorLocation() Location {
	return s.errLoc
}

// Err returns the recorded lexical error as an *Error, or nil.
func (s *Scanner) Err() error {
	if !s.HasError() {
		return nil
	}
	return &Error{s.errKind, s.errLoc}
}

// ClearError forgets the recorded error so that the next lexical error is recorded.
func (s *Scanner) ClearError() {
	s.errKind = ErrNone
	s.errLoc = InvalidLocation()
}

// reportError records the first error only.
func (s *Scanner) reportError(kind ErrorKind, loc Location) {
	if s.HasError() {
		return
	}
	s.errKind = kind
	s.errLoc = loc
}

func (s *Scanner) reportErrorAt(kind ErrorKind, pos int) {
	s.reportError(kind, Location{pos, pos + 1})
}

// OctalPosition returns the location of the last legacy octal literal or escape sequence, for rejection in strict mode code.
func (s *Scanner) OctalPosition() Location {
	return s.octalPos
}

// OctalKind returns what was found at OctalPosition.
func (s *Scanner) OctalKind() OctalKind {
	return s.octalKind
}

// ClearOctalPosition forgets the recorded octal position.
func (s *Scanner) ClearOctalPosition() {
	s.octalPos = InvalidLocation()
	s.octalKind = OctalNone
}

func (s *Scanner) recordOctal(loc Location, kind OctalKind) {
	s.octalPos = loc
	s.octalKind = kind
}

////////////////////////////////////////////////////////////////

// freeSlot returns a pool slot that no live token refers to.
func (s *Scanner) freeSlot(raw bool) int8 {
	var used [3]bool
	mark := func(t *tokenDesc) {
		h := t.literal
		if raw {
			h = t.raw
		}
		if h != noLiteral {
			used[h] = true
		}
	}
	mark(&s.current)
	if s.nextNext.kind != UninitializedToken {
		mark(&s.nextNext)
	}
	if s.holding {
		mark(&s.held)
	}
	for i, u := range used {
		if !u {
			return int8(i)
		}
	}
	panic("js: no free literal buffer")
}

// literalScope records the literal of the token being scanned. Unless complete is called, close drops whatever was recorded.
type literalScope struct {
	s         *Scanner
	literal   int8
	raw       int8
	completed bool
}

func (s *Scanner) startLiteral() literalScope {
	slot := s.freeSlot(false)
	s.literals[slot].Reset()
	s.next.literal = slot
	return literalScope{s: s, literal: slot, raw: noLiteral}
}

// startRaw additionally records the raw source text.
func (l *literalScope) startRaw() {
	s := l.s
	slot := s.freeSlot(true)
	s.raws[slot].Reset()
	s.next.raw = slot
	l.raw = slot
}

func (l *literalScope) complete() {
	l.completed = true
}

func (l *literalScope) close() {
	if l.completed {
		return
	}
	s := l.s
	if l.literal != noLiteral && s.next.literal == l.literal {
		s.literals[l.literal].Reset()
		s.next.literal = noLiteral
	}
	if l.raw != noLiteral && s.next.raw == l.raw {
		s.raws[l.raw].Reset()
		s.next.raw = noLiteral
	}
}

func (s *Scanner) addLiteralChar(c int32) {
	s.literals[s.next.literal].AddChar(c)
}

func (s *Scanner) addLiteralCharAdvance() {
	s.addLiteralChar(s.c0)
	s.advance()
}

func (s *Scanner) addRawChar(c int32) {
	s.raws[s.next.raw].AddChar(c)
}

func (s *Scanner) reduceRawLength(delta int) {
	s.raws[s.next.raw].ReduceLength(delta)
}

////////////////////////////////////////////////////////////////

// sourcePos returns the position of c0.
func (s *Scanner) sourcePos() int {
	if 0xFFFF < s.c0 {
		return s.src.Pos() - 2
	}
	return s.src.Pos() - 1
}

func (s *Scanner) advance() {
	s.advanceWith(checkSurrogate)
}

func (s *Scanner) advanceWith(mode advanceMode) {
	if mode&captureRaw != 0 {
		s.addRawChar(s.c0)
	}
	s.c0 = s.src.Advance()
	if mode&checkSurrogate != 0 {
		s.handleLeadSurrogate()
	}
}

func (s *Scanner) handleLeadSurrogate() {
	if 0xD800 <= s.c0 && s.c0 <= 0xDBFF {
		c1 := s.src.Advance()
		if 0xDC00 <= c1 && c1 <= 0xDFFF {
			s.c0 = 0x10000 + (s.c0-0xD800)<<10 + (c1 - 0xDC00)
		} else {
			s.src.PushBack(c1)
		}
	}
}

// pushBack unreads c0 and makes c the current character, c must be the character before c0.
func (s *Scanner) pushBack(c int32) {
	if 0xFFFF < s.c0 {
		s.src.PushBack(0xDC00 + (s.c0-0x10000)&0x3FF)
		s.src.PushBack(0xD800 + (s.c0-0x10000)>>10)
	} else {
		s.src.PushBack(s.c0)
	}
	s.c0 = c
}

func (s *Scanner) selectToken(tt TokenType) TokenType {
	s.advance()
	return tt
}

// selectIf consumes c0, and also the following character if it equals c.
func (s *Scanner) selectIf(c int32, then, otherwise TokenType) TokenType {
	s.advance()
	if s.c0 == c {
		s.advance()
		return then
	}
	return otherwise
}
