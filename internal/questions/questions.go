// Package questions turns the free-text question box into a question list.
package questions

import (
	"fmt"
	"strings"
)

// Parse splits text on line breaks and returns the non-blank lines,
// trimmed, in input order. Duplicates are kept.
func Parse(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}

// Count returns the number of non-blank lines in text.
func Count(text string) int {
	return len(Parse(text))
}

// Label formats a question count, e.g. "1 question" or "0 questions".
func Label(n int) string {
	suffix := "s"
	if n == 1 {
		suffix = ""
	}
	return fmt.Sprintf("%d question%s", n, suffix)
}
