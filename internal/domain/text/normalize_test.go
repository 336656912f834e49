package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize_Question(t *testing.T) {
	assert.Equal(t,
		[]string{"which", "country", "has", "the", "highest", "area"},
		Normalize("Which country has the highest Area?"))
}

func TestNormalize_TrailingRun(t *testing.T) {
	assert.Equal(t, []string{"bye"}, Normalize("  BYE!?!  "))
}

func TestNormalize_InnerPunctuationKept(t *testing.T) {
	// Only the trailing run is stripped.
	assert.Equal(t, []string{"what", "is", "u.s.", "ranked", "for", "gdp"},
		Normalize("what is U.S. ranked for gdp."))
}

func TestNormalize_WhitespaceRuns(t *testing.T) {
	assert.Equal(t, []string{"show", "me", "all", "the", "data", "for", "united", "states"},
		Normalize("show\tme all   the data for united states"))
}

func TestNormalize_Blank(t *testing.T) {
	assert.Nil(t, Normalize(""))
	assert.Nil(t, Normalize("   \t"))
	assert.Nil(t, Normalize("?!."))
}

func TestNormalize_ComposedAccents(t *testing.T) {
	decomposed := "CURAC\u0327AO"
	assert.Equal(t, []string{"cura\u00e7ao"}, Normalize(decomposed))
	assert.Equal(t, Normalize("cura\u00e7ao"), Normalize(decomposed))
}

func TestKey(t *testing.T) {
	assert.Equal(t, "united states", Key("  United   States "))
	assert.Equal(t, "median age", Key("Median\tAge"))
}

func TestCollapseSpace(t *testing.T) {
	assert.Equal(t, "a b c", CollapseSpace(" a  b\n c "))
	assert.Equal(t, "", CollapseSpace("   "))
}
