package pattern

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func words(s string) []string { return strings.Fields(s) }

func TestMatch_RankQuestion(t *testing.T) {
	p := MustParse("which country is ranked number _ for %")
	got, ok := Match(p, words("which country is ranked number 2 for population"))
	require.True(t, ok)
	assert.Equal(t, []string{"2", "population"}, got)
}

func TestMatch_MultiWordFeature(t *testing.T) {
	p := MustParse("which country is ranked number _ for %")
	got, ok := Match(p, words("which country is ranked number 2 for median age"))
	require.True(t, ok)
	assert.Equal(t, []string{"2", "median age"}, got)
}

func TestMatch_TwoMultisPreferLeftmostShortest(t *testing.T) {
	p := MustParse("what is % ranked for %")

	got, ok := Match(p, words("what is united states ranked for area"))
	require.True(t, ok)
	assert.Equal(t, []string{"united states", "area"}, got)

	// The first % stops at the first "ranked for" that lets the rest match.
	got, ok = Match(p, words("what is a ranked for b ranked for c"))
	require.True(t, ok)
	assert.Equal(t, []string{"a", "b ranked for c"}, got)
}

func TestMatch_MultiBacktracksPastFalseAnchor(t *testing.T) {
	p := MustParse("% and % end")
	got, ok := Match(p, words("x and y and z end"))
	require.True(t, ok)
	assert.Equal(t, []string{"x", "y and z"}, got)
}

func TestMatch_LiteralOnly(t *testing.T) {
	p := MustParse("which countries do you know about")

	got, ok := Match(p, words("which countries do you know about"))
	require.True(t, ok)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	_, ok = Match(p, words("which countries do you know"))
	assert.False(t, ok, "shorter input")
	_, ok = Match(p, words("which countries do you know about now"))
	assert.False(t, ok, "longer input")
	_, ok = Match(p, words("which nations do you know about"))
	assert.False(t, ok, "different word")
}

func TestMatch_LiteralIsCaseSensitive(t *testing.T) {
	_, ok := Match(MustParse("bye"), []string{"Bye"})
	assert.False(t, ok)
}

func TestMatch_SingleNeedsExactlyOneWord(t *testing.T) {
	p := MustParse("rank _ please")

	got, ok := Match(p, words("rank 7 please"))
	require.True(t, ok)
	assert.Equal(t, []string{"7"}, got)

	_, ok = Match(p, words("rank please"))
	assert.False(t, ok)
	_, ok = Match(p, words("rank 7 8 please"))
	assert.False(t, ok)
}

func TestMatch_SingleAtEnd(t *testing.T) {
	_, ok := Match(MustParse("number _"), words("number"))
	assert.False(t, ok)
}

func TestMatch_MultiNeverBindsZeroWords(t *testing.T) {
	p := MustParse("show me all the data for %")
	_, ok := Match(p, words("show me all the data for"))
	assert.False(t, ok)

	_, ok = Match(MustParse("a % b"), words("a b"))
	assert.False(t, ok)
}

func TestMatch_TrailingMultiTakesRemainder(t *testing.T) {
	p := MustParse("show me all the data for %")
	got, ok := Match(p, words("show me all the data for bosnia and herzegovina"))
	require.True(t, ok)
	assert.Equal(t, []string{"bosnia and herzegovina"}, got)
}

func TestMatch_EmptyPatternAndInput(t *testing.T) {
	got, ok := Match(Pattern{}, nil)
	assert.True(t, ok)
	assert.Empty(t, got)

	_, ok = Match(Pattern{}, words("extra"))
	assert.False(t, ok)
}

func TestMatch_NilInput(t *testing.T) {
	_, ok := Match(MustParse("%"), nil)
	assert.False(t, ok)
}

func TestMatch_WildcardsAdjacent(t *testing.T) {
	got, ok := Match(MustParse("_ %"), words("one two three"))
	require.True(t, ok)
	assert.Equal(t, []string{"one", "two three"}, got)

	got, ok = Match(MustParse("% %"), words("one two three"))
	require.True(t, ok)
	assert.Equal(t, []string{"one", "two three"}, got)
}

func TestMatch_BacktrackingDoesNotLeakBindings(t *testing.T) {
	// The first attempts for the outer % fail deep inside; the final
	// bindings must only hold the successful split.
	p := MustParse("% x _ y %")
	got, ok := Match(p, words("a x b z x c y d e"))
	require.True(t, ok)
	assert.Equal(t, []string{"a x b z", "c", "d e"}, got)
}

func TestMatch_Idempotent(t *testing.T) {
	p := MustParse("what is % ranked for %")
	in := words("what is china ranked for gdp")
	first, ok1 := Match(p, in)
	second, ok2 := Match(p, in)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
	assert.Equal(t, words("what is china ranked for gdp"), in, "input must not be mutated")
}
