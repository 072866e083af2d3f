package main

import (
	"fmt"
	"strings"

	"github.com/quasilyte/regular"
)

func mustColorizeText(s, color string) string {
	result, err := colorizeText(s, color)
	if err != nil {
		panic(err)
	}
	return result
}

var ansiColorMap = map[string]string{
	"dark-red": "31m",
	"red":      "31;1m",

	"dark-green": "32m",
	"green":      "32;1m",

	"dark-blue": "34m",
	"blue":      "34;1m",

	"dark-magenta": "35m",
	"magenta":      "35;1m",
}

func colorizeText(s, color string) (string, error) {
	switch color {
	case "", "white":
		return s, nil
	default:
		escape, ok := ansiColorMap[color]
		if !ok {
			return "", fmt.Errorf("unsupported color: %s", color)
		}
		return "\033[" + escape + s + "\033[0m", nil
	}
}

// mustColorizeSpans colorizes every span of s, the rest of s is
// kept as is. Spans must be sorted and must not overlap.
func mustColorizeSpans(s string, spans []regular.Span, color string) string {
	var buf strings.Builder
	buf.Grow(len(s) + len(spans)*len("\033[31;1m\033[0m"))
	pos := 0
	for _, span := range spans {
		buf.WriteString(s[pos:span.Begin])
		buf.WriteString(mustColorizeText(s[span.Begin:span.End], color))
		pos = span.End
	}
	buf.WriteString(s[pos:])
	return buf.String()
}
