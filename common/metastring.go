package common

import (
	"fmt"
	"strings"
)

// StringPos is a location in some source text. Line and Col are 0-based and
// print 1-based.
type StringPos struct {
	Pos, Line, Col int
}

func (s StringPos) String() string {
	return fmt.Sprintf("%d:%d", s.Line+1, s.Col+1)
}

// MetaString is a suffix of some source text that remembers where in the
// source it starts.
type MetaString struct {
	contents string
	Loc      StringPos
}

func NewMetaString(contents string) MetaString {
	return MetaString{contents: contents}
}

// FromStartPos returns the suffix starting start bytes in. Offsets past the
// end are clamped.
func (m MetaString) FromStartPos(start int) MetaString {
	start = min(max(start, 0), len(m.contents))
	skipped := m.contents[:start]
	loc := StringPos{Pos: m.Loc.Pos + start, Line: m.Loc.Line, Col: m.Loc.Col + start}

	if nl := strings.LastIndexByte(skipped, '\n'); nl >= 0 {
		loc.Line += strings.Count(skipped, "\n")
		loc.Col = start - nl - 1
	}

	return MetaString{m.contents[start:], loc}
}
