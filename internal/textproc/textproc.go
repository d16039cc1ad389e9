package textproc

import (
	"regexp"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// Tamil Unicode block.
const (
	tamilBlockLo = 0x0B80
	tamilBlockHi = 0x0BFF
)

var tokenPattern = regexp.MustCompile(`[\x{0B80}-\x{0BFF}]+|[a-zA-Z]+|\d+`)

// Normalize canonicalizes text for comparison and matching: NFC Unicode
// normalization, whitespace runs collapsed to single spaces, trimmed
// ends, Latin letters lowercased. Tamil has no case and passes through
// unchanged. Normalize is idempotent and maps empty input to empty
// output.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = strings.Join(strings.Fields(text), " ")
	return strings.Map(func(r rune) rune {
		if unicode.Is(unicode.Latin, r) {
			return unicode.ToLower(r)
		}
		return r
	}, text)
}

// IsTamilRune reports whether r falls inside the Tamil Unicode block.
func IsTamilRune(r rune) bool {
	return r >= tamilBlockLo && r <= tamilBlockHi
}

// TamilFraction returns the share of non-whitespace runes that are
// Tamil. Empty or all-whitespace text yields 0.
func TamilFraction(text string) float64 {
	tamil, total := 0, 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if IsTamilRune(r) {
			tamil++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(tamil) / float64(total)
}

// LatinLetterFraction returns the share of non-whitespace runes that
// are ASCII letters. Used as a cheap supported-language check for
// non-Tamil input.
func LatinLetterFraction(text string) float64 {
	latin, total := 0, 0
	for _, r := range text {
		if unicode.IsSpace(r) {
			continue
		}
		total++
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') {
			latin++
		}
	}
	if total == 0 {
		return 0
	}
	return float64(latin) / float64(total)
}

// Tokenize splits text into Tamil-script runs, Latin-letter runs and
// digit runs, in document order.
func Tokenize(text string) []string {
	return tokenPattern.FindAllString(Normalize(text), -1)
}

// WordCount counts whitespace-separated words, matching the short-query
// heuristics used by the dialogue classifiers.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// Keywords returns the topN most frequent tokens of text, stopwords
// filtered, ranked by frequency with alphabetical tie-break so the
// result is stable for identical input.
func Keywords(text string, topN int, stopwords map[string]struct{}) []string {
	if topN <= 0 {
		topN = 5
	}
	freq := map[string]int{}
	for _, tok := range Tokenize(text) {
		if _, ok := stopwords[tok]; ok {
			continue
		}
		if len([]rune(tok)) < 2 {
			continue
		}
		freq[tok]++
	}
	terms := make([]string, 0, len(freq))
	for t := range freq {
		terms = append(terms, t)
	}
	sort.Slice(terms, func(i, j int) bool {
		if freq[terms[i]] != freq[terms[j]] {
			return freq[terms[i]] > freq[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if topN > len(terms) {
		topN = len(terms)
	}
	return terms[:topN]
}
