package grammars_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l-donovan/grammarian"
	"github.com/l-donovan/grammarian/grammars"
)

func TestLookup(t *testing.T) {
	assert.Equal(t, []string{"arithmetic", "json", "regex"}, grammars.Names())

	for _, name := range grammars.Names() {
		g, start, ok := grammars.Lookup(name)
		require.True(t, ok, name)

		_, isRule := g.Rule(start)
		assert.True(t, isRule, "%s start symbol %s", name, start)
		assert.Empty(t, grammarian.Verify(g).LeftRecursive, name)
	}

	_, _, ok := grammars.Lookup("cobol")
	assert.False(t, ok)
}

func TestRegexGrammar(t *testing.T) {
	assert.Equal(t, "", grammars.Regex.Whitespace())

	result := grammars.Regex.Parse("Regex", "a b")
	require.True(t, result.OK())
	assert.Equal(t, "(['Regex', ['Alts', ['Branch', ['Seq', ['Rep', ['Atom', ['Char', 'a']], ''], ['Seq', ['Rep', ['Atom', ['Char', ' ']], ''], ['Seq', ['Rep', ['Atom', ['Char', 'b']], '']]]]]]], '')", result.String())

	result = grammars.Regex.Parse("Regex", "^a|b$")
	require.True(t, result.OK())
	assert.Equal(t, "(['Regex', ['Alts', ['Branch', '^', ['Seq', ['Rep', ['Atom', ['Char', 'a']], '']]], '|', ['Alts', ['Branch', ['Seq', ['Rep', ['Atom', ['Char', 'b']], ''], ['Seq', ['Rep', '$']]]]]]], '')", result.String())
}
