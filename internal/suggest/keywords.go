// Package suggest learns per-user keyword-to-category associations from
// correction feedback and uses them to propose categories for newly
// imported transactions.
package suggest

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// punctuation matches everything that is neither a word character nor
// whitespace. Letters and digits are matched by unicode class, not \w,
// so accented merchant names keep their letters.
var punctuation = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

// Keywords tokenizes a transaction description into normalized keyword
// candidates: punctuation stripped, lowercased, split on whitespace, with
// tokens of length two or less and purely numeric tokens discarded.
// Order follows first occurrence and duplicates are kept; each keyword is
// looked up independently downstream, so deduplication would change the
// observable lookup order.
func Keywords(text string) []string {
	cleaned := punctuation.ReplaceAllString(text, "")
	var out []string
	for _, token := range strings.Fields(strings.ToLower(cleaned)) {
		if utf8.RuneCountInString(token) <= 2 || isNumeric(token) {
			continue
		}
		out = append(out, token)
	}
	return out
}

func isNumeric(s string) bool {
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(s) > 0
}
