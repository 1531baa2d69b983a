package regex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/l-donovan/grammarian/regex"
)

func TestPatternString(t *testing.T) {
	cases := []struct {
		pattern regex.Pattern
		want    string
	}{
		{regex.Lit("a.b"), `a\.b`},
		{regex.SeqOf(a, b, c), "abc"},
		{regex.Alt(a, regex.Lit("bc")), "a|bc"},
		{regex.Seq(regex.Alt(a, b), c), "(a|b)c"},
		{regex.Star(regex.Lit("hey")), "(hey)*"},
		{regex.Star(a), "a*"},
		{regex.Plus(c), "cc*"},
		{regex.Opt(regex.Lit("x")), "|x"},
		{regex.OneOf("a-z"), `[a\-z]`},
		{regex.Seq(regex.Lit("def"), regex.EOL), "def$"},
		{regex.Star(regex.Dot), ".*"},
		{regex.SeqOf(), ""},
		{regex.AltOf(a), "a"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, tc.pattern.String())
	}
}

func TestConstructorsDesugar(t *testing.T) {
	assert.Equal(t, regex.Seq(c, regex.Star(c)), regex.Plus(c))
	assert.Equal(t, regex.Alt(regex.Lit(""), regex.Lit("x")), regex.Opt(regex.Lit("x")))
	assert.Equal(t, regex.Seq(a, regex.Seq(b, c)), regex.SeqOf(a, b, c))
	assert.Equal(t, regex.Alt(a, regex.Alt(b, c)), regex.AltOf(a, b, c))
	assert.Equal(t, regex.Lit(""), regex.AltOf())
}
