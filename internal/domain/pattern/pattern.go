// Package pattern implements the phrase templates that questions are matched against.
// A pattern is a sequence of literal words and wildcard markers:
//
//	_  matches exactly one word
//	%  matches one or more contiguous words
//
// Matching is structural and exact; there is no fuzzy or partial matching.
package pattern

import (
	"fmt"
	"strings"
)

// Kind identifies what a pattern token matches.
type Kind uint8

const (
	Literal Kind = iota // an exact word
	Single              // "_": one word
	Multi               // "%": one or more words
)

// Source markers for the wildcard kinds.
const (
	SingleMarker = "_"
	MultiMarker  = "%"
)

// Token is one element of a Pattern. Word is only meaningful for literals.
type Token struct {
	Kind Kind
	Word string
}

// Pattern is an ordered, non-empty sequence of tokens.
type Pattern []Token

// Parse builds a Pattern from its whitespace-separated source form.
// Literal words are kept as written; callers normalize case beforehand.
func Parse(text string) (Pattern, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil, fmt.Errorf("empty pattern")
	}

	p := make(Pattern, 0, len(words))
	for _, w := range words {
		switch w {
		case SingleMarker:
			p = append(p, Token{Kind: Single})
		case MultiMarker:
			p = append(p, Token{Kind: Multi})
		default:
			p = append(p, Token{Kind: Literal, Word: w})
		}
	}
	return p, nil
}

// MustParse is Parse for patterns known at compile time. It panics on error.
func MustParse(text string) Pattern {
	p, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("pattern %q: %v", text, err))
	}
	return p
}

// String renders the pattern back to its source form.
func (p Pattern) String() string {
	words := make([]string, len(p))
	for i, tok := range p {
		switch tok.Kind {
		case Single:
			words[i] = SingleMarker
		case Multi:
			words[i] = MultiMarker
		default:
			words[i] = tok.Word
		}
	}
	return strings.Join(words, " ")
}

// Wildcards returns the number of wildcard markers, which is the number of
// bindings a successful match produces.
func (p Pattern) Wildcards() int {
	n := 0
	for _, tok := range p {
		if tok.Kind != Literal {
			n++
		}
	}
	return n
}
