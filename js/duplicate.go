package js

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"fortio.org/safecast"

	"github.com/tdewolff/jsscan/strconv"
)

type dupEntry struct {
	offset, length int
	value          int
}

// DuplicateFinder detects repeated keys, such as property names of an object literal or the parameter names of a function. Keys are compared by content, one-byte and two-byte keys are never equal to each other.
// The zero value is ready to use.
type DuplicateFinder struct {
	store   []byte
	index   map[uint32][]dupEntry
	scratch []byte
}

// AddOneByteSymbol associates value with a Latin-1 key. It returns the value previously associated with the key and true, or value and false if the key is new.
func (f *DuplicateFinder) AddOneByteSymbol(key []byte, value int) (int, bool) {
	return f.addSymbol(key, true, value)
}

// AddTwoByteSymbol associates value with a UTF-16 key. It returns the value previously associated with the key and true, or value and false if the key is new.
func (f *DuplicateFinder) AddTwoByteSymbol(key []uint16, value int) (int, bool) {
	f.scratch = f.scratch[:0]
	for _, u := range key {
		f.scratch = binary.LittleEndian.AppendUint16(f.scratch, u)
	}
	return f.addSymbol(f.scratch, false, value)
}

// AddNumber associates value with a numeric literal, which is first converted to its canonical string form so that 1.0 and 1 are the same key. Literals that do not convert to a finite number are all stored as Infinity.
func (f *DuplicateFinder) AddNumber(key []byte, value int) (int, bool) {
	if strconv.IsCanonical(key) {
		return f.addSymbol(key, true, value)
	}
	f.scratch = f.scratch[:0]
	if x, ok := strconv.ParseLiteral(key); ok && !math.IsNaN(x) && !math.IsInf(x, 0) {
		f.scratch = strconv.AppendNumber(f.scratch, x)
	} else {
		f.scratch = append(f.scratch, "Infinity"...)
	}
	return f.addSymbol(f.scratch, true, value)
}

// Len returns the number of distinct keys.
func (f *DuplicateFinder) Len() int {
	n := 0
	for _, entries := range f.index {
		n += len(entries)
	}
	return n
}

func (f *DuplicateFinder) addSymbol(key []byte, oneByte bool, value int) (int, bool) {
	start := len(f.store)
	f.store = appendPrefix(f.store, len(key), oneByte)
	f.store = append(f.store, key...)
	encoded := f.store[start:]

	h := hash(encoded[:len(encoded)-len(key)], key)
	for i, e := range f.index[h] {
		if bytes.Equal(f.store[e.offset:e.offset+e.length], encoded) {
			f.store = f.store[:start]
			prev := e.value
			f.index[h][i].value = value
			return prev, true
		}
	}
	if f.index == nil {
		f.index = map[uint32][]dupEntry{}
	}
	f.index[h] = append(f.index[h], dupEntry{start, len(encoded), value})
	return value, false
}

// appendPrefix appends (length<<1)|oneByte in big-endian base-128, where every byte but the last has its high bit set.
func appendPrefix(b []byte, length int, oneByte bool) []byte {
	n, err := safecast.Conv[uint32](length << 1)
	if err != nil {
		panic(fmt.Errorf("duplicate finder key length overflow: %w", err))
	}
	if oneByte {
		n |= 1
	}

	var buf [5]byte
	i := len(buf) - 1
	buf[i] = byte(n & 0x7F)
	for n >>= 7; n != 0; n >>= 7 {
		i--
		buf[i] = byte(n&0x7F) | 0x80
	}
	return append(b, buf[i:]...)
}

func hash(prefix, key []byte) uint32 {
	h := uint32(0)
	for _, c := range prefix {
		h = h<<8 | uint32(c)
	}
	for _, c := range key {
		h = (h + uint32(c)) * 1025
		h ^= h >> 6
	}
	return h
}
