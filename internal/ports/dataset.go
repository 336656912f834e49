package ports

// Record is one country's standing within a feature. Rank and Value are kept
// as the source wrote them ("1", "17,098,242") so formatting survives and
// no numeric rank type is assumed across features.
//
// Partial marks a source pair that was missing its rank or value. Partial
// records are kept so lookups that only need the present half still work;
// actions that need both halves skip them.
type Record struct {
	Rank    string `json:"rank"`
	Value   string `json:"value"`
	Partial bool   `json:"partial,omitempty"`
}

// Feature is a named statistic (e.g. "population") mapping lowercase country
// names to their record. Unit is descriptive only ("sq km").
type Feature struct {
	Name    string            `json:"name"`
	Unit    string            `json:"unit,omitempty"`
	Entries map[string]Record `json:"entries"`
}

// Dataset is the full statistics table. Features are ordered by load order so
// listings are deterministic.
type Dataset struct {
	Features []Feature `json:"features"`
}
