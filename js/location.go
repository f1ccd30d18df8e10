package js

import (
	"strconv"
)

// Location is a half-open range of code-unit offsets into the source.
type Location struct {
	Begin, End int
}

// InvalidLocation returns the location used when there is none, such as an unset error.
func InvalidLocation() Location {
	return Location{-1, -1}
}

// IsValid returns true if the location spans a (possibly empty) range of the source.
func (loc Location) IsValid() bool {
	return 0 <= loc.Begin && loc.Begin <= loc.End
}

// Len returns the number of code units spanned.
func (loc Location) Len() int {
	if !loc.IsValid() {
		return 0
	}
	return loc.End - loc.Begin
}

func (loc Location) String() string {
	if !loc.IsValid() {
		return "invalid"
	}
	return strconv.Itoa(loc.Begin) + "-" + strconv.Itoa(loc.End)
}
