// Package dialect infers the delimiter and header convention of a bank
// statement CSV from a small sample of its text, so imports never need a
// per-bank format definition.
package dialect

import (
	"encoding/csv"
	"errors"
	"strconv"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/rahulann/bankfeed/internal/normalize"
)

// SampleSize is how many leading bytes of a file the detector needs.
const SampleSize = 1024

// ErrUnrecognized means no known delimiter appears in the sample. Callers
// are expected to fall back to Default() rather than abort the import.
var ErrUnrecognized = errors.New("csv dialect unrecognized")

// Dialect describes how one file is delimited and whether its first row
// names the columns. It is chosen once per file, never per row.
type Dialect struct {
	Comma     rune
	HasHeader bool
}

// Default is the fallback dialect: comma-delimited with a header row.
func Default() Dialect {
	return Dialect{Comma: ',', HasHeader: true}
}

// delimiters in priority order for tie-breaks.
var delimiters = []rune{',', ';', '\t', '|'}

// headerVocabulary is the set of column names bank exports actually use.
// First-row cells are fuzzy-matched against it to decide whether the row
// is a header or data.
var headerVocabulary = []string{
	"date", "description", "amount", "debit", "credit", "balance",
	"account", "type", "narrative", "details", "memo", "reference",
	"payee", "particulars",
}

// Detect inspects a sample (typically the first SampleSize bytes of the
// file) and infers its dialect. It fails with ErrUnrecognized when none
// of the known delimiters appears in the sample.
func Detect(sample []byte) (Dialect, error) {
	lines := sampleLines(sample)
	if len(lines) == 0 {
		return Dialect{}, ErrUnrecognized
	}

	comma, ok := detectDelimiter(lines)
	if !ok {
		return Dialect{}, ErrUnrecognized
	}

	cr := csv.NewReader(strings.NewReader(lines[0]))
	cr.Comma = comma
	cr.LazyQuotes = true
	cells, err := cr.Read()
	if err != nil {
		return Dialect{Comma: comma, HasHeader: false}, nil
	}
	return Dialect{Comma: comma, HasHeader: looksLikeHeader(cells)}, nil
}

// sampleLines splits the sample into complete non-empty lines. The last
// line is dropped unless the sample ends with a newline, since a 1024-byte
// sample usually cuts a row in half.
func sampleLines(sample []byte) []string {
	text := string(sample)
	complete := strings.HasSuffix(text, "\n")
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	if !complete && len(raw) > 1 {
		raw = raw[:len(raw)-1]
	}
	var lines []string
	for _, l := range raw {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// detectDelimiter picks the candidate that appears most consistently
// across the sampled lines. The score of a candidate is its minimum
// per-line occurrence count, so a delimiter missing from any line scores
// zero.
func detectDelimiter(lines []string) (rune, bool) {
	if len(lines) > 5 {
		lines = lines[:5]
	}
	best := rune(0)
	bestScore := 0
	for _, d := range delimiters {
		score := -1
		for _, line := range lines {
			n := strings.Count(line, string(d))
			if score == -1 || n < score {
				score = n
			}
		}
		if score > bestScore {
			best, bestScore = d, score
		}
	}
	if bestScore == 0 {
		return 0, false
	}
	return best, true
}

// looksLikeHeader reports whether the cells of the first row name columns
// rather than carry data. A row with any date or numeric cell is data; a
// row where some cell sits close to the known header vocabulary is a
// header.
func looksLikeHeader(cells []string) bool {
	named := false
	for _, cell := range cells {
		c := strings.ToLower(strings.TrimSpace(cell))
		if c == "" {
			continue
		}
		if _, ok := normalize.ParseDate(c); ok {
			return false
		}
		if _, err := strconv.ParseFloat(strings.ReplaceAll(c, ",", ""), 64); err == nil {
			return false
		}
		if matchesVocabulary(c) {
			named = true
		}
	}
	return named
}

// matchesVocabulary tolerates minor spelling drift ("Descripton",
// "Ammount") via edit distance, and compound names ("Transaction Date")
// via containment.
func matchesVocabulary(cell string) bool {
	for _, word := range headerVocabulary {
		if strings.Contains(cell, word) {
			return true
		}
	}
	for _, token := range strings.FieldsFunc(cell, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-' || r == '.'
	}) {
		for _, word := range headerVocabulary {
			if levenshtein.ComputeDistance(token, word) <= 2 && len(token) > 3 {
				return true
			}
		}
	}
	return false
}
