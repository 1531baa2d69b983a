package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetaString(t *testing.T) {
	m := NewMetaString("ab\ncd\nef")

	rest := m.FromStartPos(4)
	assert.Equal(t, StringPos{Pos: 4, Line: 1, Col: 1}, rest.Loc)
	assert.Equal(t, "2:2", rest.Loc.String())

	// Offsets are relative to the suffix.
	further := rest.FromStartPos(3)
	assert.Equal(t, StringPos{Pos: 7, Line: 2, Col: 1}, further.Loc)

	sameLine := m.FromStartPos(1).FromStartPos(1)
	assert.Equal(t, StringPos{Pos: 2, Line: 0, Col: 2}, sameLine.Loc)

	assert.Equal(t, StringPos{Pos: 3, Line: 1, Col: 0}, m.FromStartPos(3).Loc)
	assert.Equal(t, StringPos{Pos: 8, Line: 2, Col: 2}, m.FromStartPos(100).Loc)
	assert.Equal(t, m.Loc, m.FromStartPos(-3).Loc)
}
