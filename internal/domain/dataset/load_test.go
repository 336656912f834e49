package dataset

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFS_JSONAndYAML(t *testing.T) {
	fsys := fstest.MapFS{
		"d/b_population.json": {Data: []byte(`{
			"feature": "Population",
			"entries": {"China": ["1", "1,397,897,720"], "India": [2, "1,339,330,514"]}
		}`)},
		"d/a_area.yaml": {Data: []byte(`
feature: area
unit: sq km
entries:
  russia: ["1", "17,098,242"]
  united states:
    rank: 4
    value: "9,833,517"
`)},
		"d/readme.txt": {Data: []byte("ignored")},
	}

	d, err := LoadFS(fsys, "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"area", "population"}, d.FeatureNames())

	rec, ok := d.Lookup("population", "india")
	require.True(t, ok)
	assert.Equal(t, "2", rec.Rank, "numeric ranks load as their text")

	rec, ok = d.Lookup("area", "united states")
	require.True(t, ok)
	assert.Equal(t, "4", rec.Rank)
	assert.Equal(t, "9,833,517", rec.Value)
	assert.False(t, rec.Partial)
	assert.Equal(t, "sq km", d.Unit("area"))
}

func TestLoadFS_MalformedPairIsPartial(t *testing.T) {
	fsys := fstest.MapFS{
		"d/gdp.json": {Data: []byte(`{"feature": "gdp", "entries": {
			"china": ["1"],
			"india": [],
			"japan": ["4", null],
			"germany": {"rank": "5"}
		}}`)},
	}

	d, err := LoadFS(fsys, "d")
	require.NoError(t, err)

	for _, country := range []string{"china", "india", "japan", "germany"} {
		rec, ok := d.Lookup("gdp", country)
		require.True(t, ok, country)
		assert.True(t, rec.Partial, country)
	}
	rec, _ := d.Lookup("gdp", "china")
	assert.Equal(t, "1", rec.Rank)

	_, _, ok := d.TopRanked("gdp")
	assert.False(t, ok)
}

func TestLoadFS_ArrayFile(t *testing.T) {
	fsys := fstest.MapFS{
		"d/all.json": {Data: []byte(`[
			{"feature": "gdp", "entries": {"china": ["1", "$24T"]}},
			{"feature": "area", "entries": {"russia": ["1", "17,098,242"]}}
		]`)},
	}
	d, err := LoadFS(fsys, "d")
	require.NoError(t, err)
	assert.Equal(t, []string{"gdp", "area"}, d.FeatureNames())
}

func TestLoadFS_Errors(t *testing.T) {
	_, err := LoadFS(fstest.MapFS{}, "missing")
	assert.Error(t, err)

	_, err = LoadFS(fstest.MapFS{"d/x.txt": {Data: []byte("x")}}, "d")
	assert.ErrorIs(t, err, ErrNoFeatures)

	_, err = LoadFS(fstest.MapFS{"d/bad.json": {Data: []byte(`{`)}}, "d")
	assert.Error(t, err)

	_, err = LoadFS(fstest.MapFS{
		"d/a.json": {Data: []byte(`{"feature": "gdp", "entries": {}}`)},
		"d/b.json": {Data: []byte(`{"feature": "GDP", "entries": {}}`)},
	}, "d")
	assert.ErrorContains(t, err, "defined twice")

	_, err = LoadFS(fstest.MapFS{
		"d/a.json": {Data: []byte(`{"feature": "gdp", "entries": {"China": ["1", "x"], "china": ["2", "y"]}}`)},
	}, "d")
	assert.ErrorContains(t, err, "listed twice")

	_, err = LoadFS(fstest.MapFS{
		"d/a.json": {Data: []byte(`{"feature": "gdp", "entries": {"china": true}}`)},
	}, "d")
	assert.Error(t, err)
}

func TestLoadPath_FileAndDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "area.yml")
	require.NoError(t, os.WriteFile(file, []byte("feature: area\nentries:\n  russia: [\"1\", \"17,098,242\"]\n"), 0o644))

	d, err := LoadPath(file)
	require.NoError(t, err)
	assert.Equal(t, []string{"area"}, d.FeatureNames())

	d, err = LoadPath(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"area"}, d.FeatureNames())

	_, err = LoadPath(filepath.Join(dir, "nope.json"))
	assert.Error(t, err)
}
