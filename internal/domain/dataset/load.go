package dataset

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/corey/rankbot/internal/domain/text"
	"github.com/corey/rankbot/internal/ports"
	"gopkg.in/yaml.v3"
)

// FeatureDef is the file schema for one feature. A file holds either a
// single FeatureDef or an array of them.
//
// Entries map a country to its record, written as a [rank, value] pair or
// as a {rank, value} object. Pairs with a missing half load as Partial.
type FeatureDef struct {
	Feature string               `json:"feature" yaml:"feature"`
	Unit    string               `json:"unit,omitempty" yaml:"unit,omitempty"`
	Entries map[string]RecordDef `json:"entries" yaml:"entries"`
}

// RecordDef decodes the two accepted record forms.
type RecordDef ports.Record

// UnmarshalJSON accepts ["1", "17,098,242"], [1, "17,098,242"] or {"rank": "1", "value": "..."}.
func (r *RecordDef) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var raw []json.RawMessage
		if err := json.Unmarshal(trimmed, &raw); err != nil {
			return err
		}
		pair := make([]string, 0, len(raw))
		for _, elem := range raw {
			pair = append(pair, scalarJSON(elem))
		}
		*r = fromPair(pair)
		return nil
	}

	var obj struct {
		Rank  json.RawMessage `json:"rank"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(trimmed, &obj); err != nil {
		return fmt.Errorf("record must be [rank, value] or {rank, value}: %w", err)
	}
	*r = fromPair([]string{scalarJSON(obj.Rank), scalarJSON(obj.Value)})
	return nil
}

// UnmarshalYAML accepts a [rank, value] sequence or a {rank, value} mapping.
func (r *RecordDef) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.SequenceNode:
		var pair []string
		if err := node.Decode(&pair); err != nil {
			return err
		}
		*r = fromPair(pair)
		return nil
	case yaml.MappingNode:
		var obj struct {
			Rank  string `yaml:"rank"`
			Value string `yaml:"value"`
		}
		if err := node.Decode(&obj); err != nil {
			return err
		}
		*r = fromPair([]string{obj.Rank, obj.Value})
		return nil
	default:
		return fmt.Errorf("line %d: record must be [rank, value] or {rank, value}", node.Line)
	}
}

// scalarJSON renders a JSON string or number as its text. null and anything
// else becomes "".
func scalarJSON(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func fromPair(pair []string) RecordDef {
	var rec RecordDef
	if len(pair) > 0 {
		rec.Rank = strings.TrimSpace(pair[0])
	}
	if len(pair) > 1 {
		rec.Value = strings.TrimSpace(pair[1])
	}
	rec.Partial = rec.Rank == "" || rec.Value == ""
	return rec
}

// LoadFS reads every .json, .yaml and .yml file in dir and builds a Dataset.
// Files are loaded in sorted order, which fixes the feature order.
// Returns an error if any file fails to parse, if two files define the same
// feature, or if no features are found.
func LoadFS(fsys fs.FS, dir string) (*Dataset, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read dataset dir %q: %w", dir, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name() < entries[j].Name()
	})

	var defs []FeatureDef
	for _, entry := range entries {
		if entry.IsDir() || !isDataFile(entry.Name()) {
			continue
		}

		data, err := fs.ReadFile(fsys, path.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", entry.Name(), err)
		}
		fileDefs, err := decodeFile(entry.Name(), data)
		if err != nil {
			return nil, err
		}
		defs = append(defs, fileDefs...)
	}

	return FromDefs(defs)
}

// LoadPath loads a dataset from a single file or a directory of files on disk.
func LoadPath(p string) (*Dataset, error) {
	info, err := os.Stat(p)
	if err != nil {
		return nil, fmt.Errorf("dataset path: %w", err)
	}
	if info.IsDir() {
		return LoadFS(os.DirFS(p), ".")
	}

	data, err := os.ReadFile(p)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", p, err)
	}
	defs, err := decodeFile(filepath.Base(p), data)
	if err != nil {
		return nil, err
	}
	return FromDefs(defs)
}

// FromDefs builds a Dataset from decoded feature definitions, canonicalizing
// feature and country names to lowercase with collapsed whitespace.
func FromDefs(defs []FeatureDef) (*Dataset, error) {
	raw := &ports.Dataset{Features: make([]ports.Feature, 0, len(defs))}
	seen := make(map[string]bool, len(defs))

	for _, def := range defs {
		name := text.Key(def.Feature)
		if name == "" {
			return nil, fmt.Errorf("feature with empty name")
		}
		if seen[name] {
			return nil, fmt.Errorf("feature %q defined twice", name)
		}
		seen[name] = true

		entries := make(map[string]ports.Record, len(def.Entries))
		for country, rec := range def.Entries {
			key := text.Key(country)
			if key == "" {
				continue
			}
			if _, dup := entries[key]; dup {
				return nil, fmt.Errorf("feature %q: country %q listed twice", name, key)
			}
			entries[key] = ports.Record(rec)
		}
		raw.Features = append(raw.Features, ports.Feature{
			Name:    name,
			Unit:    def.Unit,
			Entries: entries,
		})
	}

	return New(raw)
}

func isDataFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

// decodeFile parses one data file by extension into one or more feature
// definitions.
func decodeFile(name string, data []byte) ([]FeatureDef, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".json":
		trimmed := bytes.TrimSpace(data)
		if len(trimmed) > 0 && trimmed[0] == '[' {
			var defs []FeatureDef
			if err := json.Unmarshal(trimmed, &defs); err != nil {
				return nil, fmt.Errorf("parse %s: %w", name, err)
			}
			return defs, nil
		}
		var def FeatureDef
		if err := json.Unmarshal(trimmed, &def); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		return []FeatureDef{def}, nil

	case ".yaml", ".yml":
		var node yaml.Node
		if err := yaml.Unmarshal(data, &node); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		if len(node.Content) == 0 {
			return nil, nil
		}
		doc := node.Content[0]
		if doc.Kind == yaml.SequenceNode {
			var defs []FeatureDef
			if err := doc.Decode(&defs); err != nil {
				return nil, fmt.Errorf("parse %s: %w", name, err)
			}
			return defs, nil
		}
		var def FeatureDef
		if err := doc.Decode(&def); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		return []FeatureDef{def}, nil
	}
	return nil, fmt.Errorf("%s: unsupported dataset file type", name)
}
