package regex_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/l-donovan/grammarian/regex"
)

var (
	a, b, c  = regex.Lit("a"), regex.Lit("b"), regex.Lit("c")
	abcstars = regex.SeqOf(regex.Star(a), regex.Star(b), regex.Star(c))
	dotstar  = regex.Star(regex.Dot)
)

func TestMatchSet(t *testing.T) {
	cases := []struct {
		name    string
		pattern regex.Pattern
		text    string
		want    []string
	}{
		{"literal", regex.Lit("abc"), "abcdef", []string{"def"}},
		{"sequence", regex.Seq(regex.Lit("hi "), regex.Lit("there ")), "hi there nice to meet you", []string{"nice to meet you"}},
		{"alternation", regex.Alt(regex.Lit("dog"), regex.Lit("cat")), "dog and cat", []string{" and cat"}},
		{"dot", regex.Dot, "am i missing something?", []string{"m i missing something?"}},
		{"one of", regex.OneOf("a"), "aabc123", []string{"abc123"}},
		{"one of several", regex.OneOf("abc"), "aabc123", []string{"abc123"}},
		{"eol at end", regex.EOL, "", []string{""}},
		{"eol before end", regex.EOL, "not end of line", []string{}},
		{"star", regex.Star(regex.Lit("hey")), "heyhey!", []string{"heyhey!", "hey!", "!"}},
		{"star of empty", regex.Star(regex.Lit("")), "abc", []string{"abc"}},
		{"star of nullable", regex.Star(regex.Opt(a)), "aab", []string{"aab", "ab", "b"}},
		{"literal mismatch", regex.Lit("xyz"), "abc", []string{}},
		{"dot on empty", regex.Dot, "", []string{}},
		{"dot is one rune", regex.Dot, "été", []string{"té"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := regex.MatchSet(tc.pattern, tc.text).Sorted()

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("MatchSet(%v, %q) mismatch (-want +got):\n%s", tc.pattern, tc.text, diff)
			}
		})
	}
}

func TestMatchSetRemaindersAreSuffixes(t *testing.T) {
	p := regex.SeqOf(dotstar, regex.Lit("a"), dotstar)
	text := "banana"

	for rem := range regex.MatchSet(p, text) {
		assert.True(t, strings.HasSuffix(text, rem), "remainder %q", rem)
	}
}

func TestMatchSetLongInput(t *testing.T) {
	text := strings.Repeat("a", 20000) + "b"
	got, ok := regex.Match(regex.Star(a), text)

	require.True(t, ok)
	assert.Len(t, got, 20000)
}

func TestMatch(t *testing.T) {
	cases := []struct {
		name    string
		pattern regex.Pattern
		text    string
		want    string
		ok      bool
	}{
		{"literal", regex.Lit("hello"), "hello how are you?", "hello", true},
		{"literal misses", regex.Lit("x"), "hello how are you?", "", false},
		{"star", regex.Star(a), "aaabcd", "aaa", true},
		{"alternation misses", regex.Alt(b, c), "ab", "", false},
		{"alternation", regex.Alt(b, a), "ab", "a", true},
		{"not at start", a, "not the start", "", false},
		{"stars", abcstars, "aaabbbccccdef", "aaabbbcccc", true},
		{"stars match nothing", abcstars, "junk", "", true},
		{"c.*b", regex.SeqOf(c, dotstar, b), "carbuncle", "carb", true},
		{"c.b", regex.SeqOf(c, regex.Dot, b), "crab", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := regex.Match(tc.pattern, tc.text)
			require.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMatchAnchoredAtEnd(t *testing.T) {
	p := regex.Seq(abcstars, regex.EOL)

	for _, s := range strings.Fields("abc aaabbccc aaaabcccc") {
		got, ok := regex.Match(p, s)
		assert.True(t, ok, s)
		assert.Equal(t, s, got)
	}

	for _, s := range strings.Fields("cab aaabbcccd aaaa-b-cccc") {
		_, ok := regex.Match(p, s)
		assert.False(t, ok, s)
	}
}

func TestSearch(t *testing.T) {
	cases := []struct {
		name    string
		pattern regex.Pattern
		text    string
		want    string
		ok      bool
	}{
		{"literal", regex.Lit("def"), "abcdefg", "def", true},
		{"at end", regex.Seq(regex.Lit("def"), regex.EOL), "abcdef", "def", true},
		{"not at end", regex.Seq(regex.Lit("def"), regex.EOL), "abcdefg", "", false},
		{"anywhere", a, "not the start", "a", true},
		{"leftmost", regex.Alt(b, c), "ab", "b", true},
		{"longest at leftmost", regex.Star(a), "baab", "", true},
		{"longest", regex.Plus(a), "baab", "aa", true},
		{"empty pattern", regex.Lit(""), "abc", "", true},
		{"empty text", regex.Lit(""), "", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := regex.Search(tc.pattern, tc.text)
			require.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSearchFindsEveryExample(t *testing.T) {
	// ab.*aca.*a$
	r := regex.SeqOf(regex.Lit("ab"), dotstar, regex.Lit("aca"), dotstar, a, regex.EOL)

	for _, s := range strings.Fields("abracadabra abacaa about-acacia") {
		_, ok := regex.Search(r, s)
		assert.True(t, ok, s)
	}
}

func TestCompileAgreesWithMatchSet(t *testing.T) {
	patterns := []regex.Pattern{
		regex.Lit("ab"),
		abcstars,
		regex.Seq(abcstars, regex.EOL),
		regex.AltOf(regex.Lit("dog"), regex.Lit("do"), regex.Plus(regex.OneOf("dog"))),
		regex.SeqOf(c, dotstar, b),
		regex.Star(regex.Opt(regex.Lit("ab"))),
	}
	texts := []string{"", "a", "ab", "abab!", "aaabbbccccdef", "doggo", "carbuncle", "cb"}

	for _, p := range patterns {
		m := regex.Compile(p)

		for _, text := range texts {
			assert.Equal(t, regex.MatchSet(p, text).Sorted(), m(text).Sorted(), "%v on %q", p, text)

			want, wantOK := regex.Search(p, text)
			got, gotOK := m.Search(text)
			assert.Equal(t, wantOK, gotOK)
			assert.Equal(t, want, got)

			want, wantOK = regex.Match(p, text)
			got, gotOK = m.Match(text)
			assert.Equal(t, wantOK, gotOK)
			assert.Equal(t, want, got)
		}
	}
}

func TestRemainders(t *testing.T) {
	s := regex.NewRemainders("abc", "c")
	s.AddAll(regex.NewRemainders("bc", "c"))

	assert.Equal(t, 3, s.Len())
	assert.True(t, s.Contains("bc"))
	assert.False(t, s.Contains(""))

	shortest, ok := s.Shortest()
	require.True(t, ok)
	assert.Equal(t, "c", shortest)

	_, ok = regex.NewRemainders().Shortest()
	assert.False(t, ok)
}
