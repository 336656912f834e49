package query

import (
	"fmt"

	"github.com/corey/rankbot/internal/domain/dataset"
	"github.com/corey/rankbot/internal/domain/pattern"
)

// Actions answers questions against one dataset.
type Actions struct {
	ds *dataset.Dataset
}

// NewActions binds the actions to ds.
func NewActions(ds *dataset.Dataset) *Actions {
	return &Actions{ds: ds}
}

// CountryByRank expects [rank, feature] and returns the country at that rank.
func (a *Actions) CountryByRank(b []string) Reply {
	if len(b) < 2 {
		return Reply{}
	}
	country, ok := a.ds.CountryAtRank(b[1], b[0])
	if !ok {
		return Reply{}
	}
	return Reply{Answers: []string{country}}
}

// RankByCountry expects [country, feature] and returns the country's rank.
func (a *Actions) RankByCountry(b []string) Reply {
	if len(b) < 2 {
		return Reply{}
	}
	rec, ok := a.ds.Lookup(b[1], b[0])
	if !ok || rec.Rank == "" {
		return Reply{}
	}
	return Reply{Answers: []string{rec.Rank}}
}

// ListCountries returns the sorted countries of the first feature.
func (a *Actions) ListCountries([]string) Reply {
	return Reply{Answers: a.ds.Countries()}
}

// ListDatasets returns every feature name.
func (a *Actions) ListDatasets([]string) Reply {
	return Reply{Answers: a.ds.FeatureNames()}
}

// TopCountry expects [feature] and returns the rank "1" country and its value.
func (a *Actions) TopCountry(b []string) Reply {
	if len(b) < 1 {
		return Reply{}
	}
	country, rec, ok := a.ds.TopRanked(b[0])
	if !ok {
		return Reply{}
	}
	return Reply{Answers: []string{country, rec.Value}}
}

// AllDataForCountry expects [country] and returns one
// "<feature>: rank <r>, value <v>" line per feature that lists the country.
func (a *Actions) AllDataForCountry(b []string) Reply {
	if len(b) < 1 {
		return Reply{}
	}
	standings := a.ds.Across(b[0])
	answers := make([]string, 0, len(standings))
	for _, s := range standings {
		answers = append(answers, fmt.Sprintf("%s: rank %s, value %s", s.Feature, s.Record.Rank, s.Record.Value))
	}
	return Reply{Answers: answers}
}

// Bye ends the conversation.
func (a *Actions) Bye([]string) Reply {
	return Reply{Outcome: Terminate}
}

// DefaultRegistry builds the standard question set over ds.
func DefaultRegistry(ds *dataset.Dataset) *Registry {
	a := NewActions(ds)
	r := &Registry{}
	r.entries = []Entry{
		{pattern.MustParse("which country is ranked number _ for %"), "country_by_rank", a.CountryByRank},
		{pattern.MustParse("what is % ranked for %"), "rank_by_country", a.RankByCountry},
		{pattern.MustParse("which countries do you know about"), "list_countries", a.ListCountries},
		{pattern.MustParse("what kinds of questions do you understand"), "list_patterns", listPatterns(r)},
		{pattern.MustParse("what datasets do you know about"), "list_datasets", a.ListDatasets},
		{pattern.MustParse("which country has the highest %"), "top_country", a.TopCountry},
		{pattern.MustParse("show me all the data for %"), "all_data_for_country", a.AllDataForCountry},
		{pattern.MustParse("bye"), "bye", a.Bye},
	}
	return r
}

// listPatterns answers with the registry's own patterns. It reads r lazily
// so it can be part of r.
func listPatterns(r *Registry) Action {
	return func([]string) Reply {
		return Reply{Answers: r.Patterns()}
	}
}
