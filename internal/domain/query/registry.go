// Package query maps normalized questions to answers.
//
// A Registry is an ordered list of (pattern, action) entries. Search walks
// the registry and runs the action of the first pattern that structurally
// matches. Order is significant: a matching entry is final even when its
// action finds nothing, so specific patterns must precede general ones that
// share a prefix.
package query

import "github.com/corey/rankbot/internal/domain/pattern"

// Outcome tells the read loop whether to keep going.
type Outcome uint8

const (
	Continue Outcome = iota
	Terminate
)

func (o Outcome) String() string {
	if o == Terminate {
		return "terminate"
	}
	return "continue"
}

// Reply is what an action returns. Empty Answers with Continue means the
// question was understood but no data was found.
type Reply struct {
	Answers []string
	Outcome Outcome
}

// Action turns a match's bindings into a reply.
type Action func(bindings []string) Reply

// Entry pairs a pattern with the action it dispatches to. Name identifies
// the action in logs.
type Entry struct {
	Pattern pattern.Pattern
	Name    string
	Action  Action
}

// Registry is an ordered, immutable list of entries.
type Registry struct {
	entries []Entry
}

// NewRegistry builds a registry; entries keep the given priority order.
func NewRegistry(entries ...Entry) *Registry {
	r := &Registry{entries: make([]Entry, len(entries))}
	copy(r.entries, entries)
	return r
}

// Entries returns a copy of the entries in priority order.
func (r *Registry) Entries() []Entry {
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Patterns returns each entry's pattern in source form, in priority order.
func (r *Registry) Patterns() []string {
	out := make([]string, len(r.entries))
	for i, e := range r.entries {
		out[i] = e.Pattern.String()
	}
	return out
}

// Len returns the number of entries.
func (r *Registry) Len() int {
	return len(r.entries)
}
