package app

import (
	"strconv"
	"strings"

	"github.com/corey/rankbot/internal/domain/query"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorBold   = "\033[1m"
	colorCyan   = "\033[36m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
)

// Render formats a search result as one line.
//
// Sentinels print bare; genuine answers print as a bracketed list of quoted
// strings, so an answer that happens to read "No answers" stays
// distinguishable:
//
//	["russia" "17,098,242"]
//	No answers
func Render(res query.Result, color bool) string {
	switch res.Status {
	case query.Empty, query.Unrecognized:
		msg := strings.Join(res.Answers, " ")
		if color {
			return colorYellow + msg + colorReset
		}
		return msg
	}

	var sb strings.Builder
	if color {
		sb.WriteString(colorGray)
	}
	sb.WriteString("[")
	if color {
		sb.WriteString(colorReset)
	}
	for i, ans := range res.Answers {
		if i > 0 {
			sb.WriteString(" ")
		}
		if color {
			sb.WriteString(colorCyan)
		}
		sb.WriteString(strconv.Quote(ans))
		if color {
			sb.WriteString(colorReset)
		}
	}
	if color {
		sb.WriteString(colorGray)
	}
	sb.WriteString("]")
	if color {
		sb.WriteString(colorReset)
	}
	return sb.String()
}

// Heading formats a bold section title for listings.
func Heading(title string, color bool) string {
	if !color {
		return title
	}
	return colorBold + title + colorReset
}
