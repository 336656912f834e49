package query

import "github.com/corey/rankbot/internal/domain/pattern"

// Sentinel answers for questions that produce no data.
const (
	NoAnswers     = "No answers"
	NotUnderstood = "I don't understand"
)

// Status classifies a search result.
type Status uint8

const (
	Answered      Status = iota // an action produced answers
	Empty                       // a pattern matched but its action found nothing
	Unrecognized                // no pattern matched
	Farewell                    // the matched action ended the conversation
)

func (s Status) String() string {
	switch s {
	case Answered:
		return "answered"
	case Empty:
		return "no_answers"
	case Unrecognized:
		return "not_understood"
	case Farewell:
		return "farewell"
	}
	return "unknown"
}

// Result is the outcome of one Search.
type Result struct {
	Answers  []string
	Status   Status
	Outcome  Outcome
	Action   string   // name of the matched entry, "" when unrecognized
	Pattern  string   // source form of the matched pattern
	Bindings []string // wildcard bindings of the match
}

// Search runs input against r in order. The first structural match decides
// the result; later entries are never tried, even when the action yields
// nothing. Search has no side effects of its own.
func Search(r *Registry, input []string) Result {
	for _, e := range r.entries {
		bindings, ok := pattern.Match(e.Pattern, input)
		if !ok {
			continue
		}

		res := Result{Action: e.Name, Pattern: e.Pattern.String(), Bindings: bindings}
		reply := e.Action(bindings)
		res.Outcome = reply.Outcome

		switch {
		case reply.Outcome == Terminate:
			res.Status = Farewell
			res.Answers = reply.Answers
		case len(reply.Answers) == 0:
			res.Status = Empty
			res.Answers = []string{NoAnswers}
		default:
			res.Status = Answered
			res.Answers = reply.Answers
		}
		return res
	}

	return Result{Answers: []string{NotUnderstood}, Status: Unrecognized}
}
