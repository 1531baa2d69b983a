package grammarian_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/l-donovan/grammarian"
	"github.com/l-donovan/grammarian/grammars"
)

func TestVerifyJSON(t *testing.T) {
	report := grammarian.Verify(grammars.JSON)

	assert.Equal(t, []string{
		"array", "elements", "exp", "frac", "int", "members", "number", "object", "pair", "string", "value",
	}, report.NonTerminals)
	assert.Equal(t, []string{"false", "null", "true"}, report.Suspects)
	assert.Contains(t, report.Terminals, "[{]")
	assert.Contains(t, report.Terminals, "true")
	assert.Empty(t, report.Orphans)
	assert.Empty(t, report.LeftRecursive)
}

func TestVerify(t *testing.T) {
	cases := []struct {
		name          string
		description   string
		suspects      []string
		orphans       []string
		leftRecursive []string
	}{
		{
			name:        "typo",
			description: "S => Expr [;]\nExp => [0-9]+",
			suspects:    []string{"Expr"},
			orphans:     []string{"Exp", "S"},
		},
		{
			name:          "direct",
			description:   "E => E [+] T | T\nT => [0-9]+",
			leftRecursive: []string{"E"},
		},
		{
			name:          "through nullable",
			description:   "A => B [x] | [y]\nB => C A\nC => [z]?",
			leftRecursive: []string{"A", "B"},
		},
		{
			name:        "guarded",
			description: "A => [(] A [)] | [z]",
			orphans:     nil,
		},
		{
			name:        "underscore is not alphanumeric",
			description: "A => foo_bar | é2",
			suspects:    []string{"é2"},
			orphans:     []string{"A"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			report := grammarian.Verify(grammarian.MustCompile(tc.description))
			assert.Equal(t, tc.suspects, report.Suspects)
			assert.Equal(t, tc.orphans, report.Orphans)
			assert.Equal(t, tc.leftRecursive, report.LeftRecursive)
		})
	}
}

func TestReportString(t *testing.T) {
	report := grammarian.Verify(grammarian.MustCompile("S => x S | y"))

	assert.Equal(t, ""+
		"Non-Terminals = S\n"+
		"Terminals     = x y\n"+
		"Suspects      = x y\n"+
		"Orphans       = \n"+
		"Left-Recurse  = \n", report.String())
}
