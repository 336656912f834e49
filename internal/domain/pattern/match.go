package pattern

import "strings"

// Match reports whether input conforms to p and returns the wildcard
// bindings in pattern order. A Multi binding is its words joined by a
// single space.
//
// Multi wildcards take the shortest run of words that still lets the rest of
// the pattern match, backtracking one word at a time. A trailing Multi must
// therefore consume everything left. A pattern without wildcards yields an
// empty, non-nil binding slice on success.
func Match(p Pattern, input []string) ([]string, bool) {
	return match(p, input, make([]string, 0, p.Wildcards()))
}

func match(p Pattern, input, acc []string) ([]string, bool) {
	if len(p) == 0 {
		return acc, len(input) == 0
	}
	if len(input) == 0 {
		// Every token kind needs at least one word.
		return nil, false
	}

	head, rest := p[0], p[1:]
	switch head.Kind {
	case Literal:
		if input[0] != head.Word {
			return nil, false
		}
		return match(rest, input[1:], acc)

	case Single:
		return match(rest, input[1:], append(acc, input[0]))

	case Multi:
		for n := 1; n <= len(input); n++ {
			// Cap the slice so each attempt appends into fresh storage.
			attempt := append(acc[:len(acc):len(acc)], strings.Join(input[:n], " "))
			if out, ok := match(rest, input[n:], attempt); ok {
				return out, true
			}
		}
		return nil, false
	}

	return nil, false
}
