// Package dataset holds the read-only country statistics table and the
// lookups the question actions run against it.
//
// A Dataset is built once (from embedded files, files on disk, or a bbolt
// snapshot) and never mutated afterwards. All name arguments are
// canonicalized with text.Key, so lookups are case-insensitive.
package dataset

import (
	"errors"
	"fmt"
	"sort"

	"github.com/corey/rankbot/internal/domain/text"
	"github.com/corey/rankbot/internal/ports"
)

// TopRank is the rank string that marks the first-placed country.
// Ranks are compared as literal strings, so "01" or "1st" never match.
const TopRank = "1"

// ErrNoFeatures is returned when a dataset would be empty.
var ErrNoFeatures = errors.New("dataset has no features")

// Dataset is an immutable, indexed view over a ports.Dataset.
type Dataset struct {
	features []ports.Feature
	byName   map[string]int      // feature name -> index in features
	order    map[string][]string // feature name -> sorted country keys
}

// Standing is one feature's record for a country, as returned by Across.
type Standing struct {
	Feature string
	Record  ports.Record
}

// New builds a Dataset from raw. The input is copied, so later changes to
// raw are not observed. Feature and country names are canonicalized with
// text.Key, the same form lookups use.
func New(raw *ports.Dataset) (*Dataset, error) {
	if raw == nil || len(raw.Features) == 0 {
		return nil, ErrNoFeatures
	}

	d := &Dataset{
		features: make([]ports.Feature, 0, len(raw.Features)),
		byName:   make(map[string]int, len(raw.Features)),
		order:    make(map[string][]string, len(raw.Features)),
	}
	for _, f := range raw.Features {
		name := text.Key(f.Name)
		if name == "" {
			return nil, fmt.Errorf("feature with empty name")
		}
		if _, dup := d.byName[name]; dup {
			return nil, fmt.Errorf("feature %q defined twice", name)
		}
		entries := make(map[string]ports.Record, len(f.Entries))
		keys := make([]string, 0, len(f.Entries))
		for country, rec := range f.Entries {
			key := text.Key(country)
			if key == "" {
				return nil, fmt.Errorf("feature %q: country with empty name", name)
			}
			if _, dup := entries[key]; dup {
				return nil, fmt.Errorf("feature %q: country %q listed twice", name, key)
			}
			entries[key] = rec
			keys = append(keys, key)
		}
		sort.Strings(keys)

		d.byName[name] = len(d.features)
		d.order[name] = keys
		d.features = append(d.features, ports.Feature{Name: name, Unit: f.Unit, Entries: entries})
	}
	return d, nil
}

// Snapshot returns a deep copy of the underlying table, suitable for
// persisting.
func (d *Dataset) Snapshot() *ports.Dataset {
	out := &ports.Dataset{Features: make([]ports.Feature, len(d.features))}
	for i, f := range d.features {
		entries := make(map[string]ports.Record, len(f.Entries))
		for k, v := range f.Entries {
			entries[k] = v
		}
		out.Features[i] = ports.Feature{Name: f.Name, Unit: f.Unit, Entries: entries}
	}
	return out
}

// FeatureNames returns feature names in load order.
func (d *Dataset) FeatureNames() []string {
	names := make([]string, len(d.features))
	for i, f := range d.features {
		names[i] = f.Name
	}
	return names
}

// Unit returns the descriptive unit of a feature, or "" if unknown.
func (d *Dataset) Unit(feature string) string {
	i, ok := d.byName[text.Key(feature)]
	if !ok {
		return ""
	}
	return d.features[i].Unit
}

// Len returns the number of entries in a feature, or 0 if unknown.
func (d *Dataset) Len(feature string) int {
	return len(d.order[text.Key(feature)])
}

// Lookup returns a country's record within a feature.
func (d *Dataset) Lookup(feature, country string) (ports.Record, bool) {
	i, ok := d.byName[text.Key(feature)]
	if !ok {
		return ports.Record{}, false
	}
	rec, ok := d.features[i].Entries[text.Key(country)]
	return rec, ok
}

// CountryAtRank returns the country holding rank in feature. If the source
// repeats a rank, the alphabetically first country wins. Records without a
// rank are skipped.
func (d *Dataset) CountryAtRank(feature, rank string) (string, bool) {
	name := text.Key(feature)
	i, ok := d.byName[name]
	if !ok || rank == "" {
		return "", false
	}
	entries := d.features[i].Entries
	for _, country := range d.order[name] {
		if entries[country].Rank == rank {
			return country, true
		}
	}
	return "", false
}

// TopRanked returns the country and record holding TopRank in feature.
// Partial records are skipped since callers need the value.
func (d *Dataset) TopRanked(feature string) (string, ports.Record, bool) {
	name := text.Key(feature)
	i, ok := d.byName[name]
	if !ok {
		return "", ports.Record{}, false
	}
	entries := d.features[i].Entries
	for _, country := range d.order[name] {
		rec := entries[country]
		if rec.Partial {
			continue
		}
		if rec.Rank == TopRank {
			return country, rec, true
		}
	}
	return "", ports.Record{}, false
}

// Countries returns the sorted country keys of the first feature.
//
// This is an approximation: countries differ between features, and the
// first feature's key set stands in for the whole table.
func (d *Dataset) Countries() []string {
	keys := d.order[d.features[0].Name]
	out := make([]string, len(keys))
	copy(out, keys)
	return out
}

// Across returns the country's complete records in every feature, in feature
// order. Partial records are skipped.
func (d *Dataset) Across(country string) []Standing {
	key := text.Key(country)
	var out []Standing
	for _, f := range d.features {
		rec, ok := f.Entries[key]
		if !ok || rec.Partial {
			continue
		}
		out = append(out, Standing{Feature: f.Name, Record: rec})
	}
	return out
}
