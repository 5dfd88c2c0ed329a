package cfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseNargsLiterals(t *testing.T) {
	cases := map[string]Nargs{
		"1": {Kind: NargsOne},
		"0": {Kind: NargsZero},
		"?": {Kind: NargsOneOrZero},
		"+": {Kind: NargsOneOrMore},
		"*": {Kind: NargsZeroOrMore},
	}
	for s, want := range cases {
		got, err := ParseNargs(s)
		assert.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestParseNargsRange(t *testing.T) {
	got, err := ParseNargs("2:5")
	assert.NoError(t, err)
	assert.Equal(t, Nargs{Kind: NargsRange, Lo: 1, Hi: 5}, got)
	assert.Equal(t, "2:5", got.String())
}

func TestParseNargsBareNumber(t *testing.T) {
	got, err := ParseNargs("3")
	// "3" matches none of the fixed literals, so it falls through to the
	// bare-number branch: Range(0, 3).
	assert.NoError(t, err)
	assert.Equal(t, Nargs{Kind: NargsRange, Lo: 0, Hi: 3}, got)
}

func TestParseNargsInvalid(t *testing.T) {
	_, err := ParseNargs("abc")
	assert.Error(t, err)

	_, err = ParseNargs("a:5")
	assert.Error(t, err)
}
