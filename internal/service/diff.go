package service

import "strings"

// WordDiff renders a word-level comparison of two texts, marking tokens
// of the new text that differ from the old one at the same position
// with <mark> tags.
//
// This is a greedy single-pass walk with two cursors, not an LCS diff:
// once the sequences drift out of alignment (an insertion or deletion),
// subsequent equal words are reported as replacements. Good enough as a
// display aid for the version history screen; do not use it where
// correct edit scripts matter.
func WordDiff(oldText, newText string) string {
	oldTokens := strings.Fields(oldText)
	newTokens := strings.Fields(newText)

	n := len(newTokens)
	if len(oldTokens) > n {
		n = len(oldTokens)
	}

	out := make([]string, 0, len(newTokens))
	for i := 0; i < n; i++ {
		switch {
		case i >= len(newTokens):
			// Trailing deletion; nothing left to show on the new side.
		case i >= len(oldTokens):
			out = append(out, "<mark>"+newTokens[i]+"</mark>")
		case oldTokens[i] == newTokens[i]:
			out = append(out, newTokens[i])
		default:
			out = append(out, "<mark>"+newTokens[i]+"</mark>")
		}
	}
	return strings.Join(out, " ")
}
