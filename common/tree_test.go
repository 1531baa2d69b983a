package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTree(t *testing.T) {
	tree := NewTree("Exp", NewTree("Var", "a"), "+", NewTree("Num", "1"))

	assert.Equal(t, "Exp", tree.Symbol())
	assert.Len(t, tree.Children(), 3)
	assert.Equal(t, []string{"a", "+", "1"}, Leaves(tree))
	assert.Equal(t, "", Tree{}.Symbol())
	assert.Nil(t, Tree{}.Children())
}

func TestFormat(t *testing.T) {
	cases := []struct {
		node Node
		want string
	}{
		{nil, "None"},
		{"", "''"},
		{"it's", `"it's"`},
		{`say "it's"`, `'say "it\'s"'`},
		{"a\nb\\", `'a\nb\\'`},
		{"\x00", `'\x00'`},
		{NewTree("Var", "a"), "['Var', 'a']"},
		{NewTree("Exp", NewTree("Var", "a"), "*"), "['Exp', ['Var', 'a'], '*']"},
		{7, "7"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Format(tc.node))
	}

	assert.Equal(t, "['S']", NewTree("S").String())
}
