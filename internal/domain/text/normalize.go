// Package text turns raw user input into the word sequence the matcher sees.
package text

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// sentenceEnd is the set of trailing punctuation stripped from a question.
const sentenceEnd = "?.!"

// Normalize prepares one line of user input for matching:
//  1. NFC-normalize so composed and decomposed accents compare equal
//  2. Lowercase the whole line
//  3. Strip one trailing run of '?', '.', '!'
//  4. Split on whitespace
//
// Returns nil for blank input.
func Normalize(line string) []string {
	s := strings.TrimSpace(norm.NFC.String(line))
	if s == "" {
		return nil
	}
	s = Lower(s)
	s = strings.TrimRight(s, sentenceEnd)

	tokens := strings.Fields(s)
	if len(tokens) == 0 {
		return nil
	}
	return tokens
}

// Lower lowercases s with Unicode-aware casing rules. A Caser holds state,
// so each call gets its own.
func Lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// CollapseSpace trims s and replaces every internal whitespace run with a
// single space.
func CollapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// Key is the canonical form of a dataset lookup key: lowercase with
// collapsed whitespace.
func Key(s string) string {
	return CollapseSpace(Lower(s))
}
