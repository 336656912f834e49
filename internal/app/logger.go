package app

import (
	"io"
	"log"
	"strings"
)

// NewLogger returns the debug logger. A nil writer discards everything.
func NewLogger(w io.Writer) *log.Logger {
	if w == nil {
		w = io.Discard
	}
	return log.New(w, "[rankbot] ", log.LstdFlags)
}

func joinTokens(tokens []string) string {
	return strings.Join(tokens, " ")
}
