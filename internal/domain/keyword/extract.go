package keyword

import (
	"math"
	"sort"
	"unicode/utf8"
)

const (
	// MinTextLength is the minimum input length, in characters, worth analyzing.
	MinTextLength = 100
	// MinKeywordLength is the shortest token kept as a keyword candidate.
	MinKeywordLength = 2
	// MaxKeywords caps the extracted list.
	MaxKeywords = 15
)

// Keyword is a normalized token with its relative frequency weight (0-100).
type Keyword struct {
	Keyword string `json:"keyword"`
	Weight  int    `json:"weight"`
}

// Extract returns up to MaxKeywords keywords ordered by weight descending.
// Texts shorter than MinTextLength yield nil. Ties keep first-seen order.
func Extract(text string) []Keyword {
	if utf8.RuneCountInString(text) < MinTextLength {
		return nil
	}

	order, freq := count(Tokenize(text))
	if len(order) == 0 {
		return nil
	}

	maxFreq := 0
	for _, n := range freq {
		maxFreq = max(maxFreq, n)
	}

	out := make([]Keyword, len(order))
	for i, tok := range order {
		out[i] = Keyword{Keyword: tok, Weight: weight(freq[tok], maxFreq)}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight > out[j].Weight })

	if len(out) > MaxKeywords {
		out = out[:MaxKeywords]
	}
	return out
}

// Strings returns the bare keyword strings in order.
func Strings(kws []Keyword) []string {
	out := make([]string, len(kws))
	for i, k := range kws {
		out[i] = k.Keyword
	}
	return out
}

// count tallies surviving tokens, remembering first-seen order.
func count(tokens []string) ([]string, map[string]int) {
	var order []string
	freq := make(map[string]int)
	for _, tok := range tokens {
		if !candidate(tok) {
			continue
		}
		if _, seen := freq[tok]; !seen {
			order = append(order, tok)
		}
		freq[tok]++
	}
	return order, freq
}

func candidate(tok string) bool {
	if utf8.RuneCountInString(tok) < MinKeywordLength {
		return false
	}
	if isNumber(tok) {
		return false
	}
	return !IsStopword(tok)
}

func weight(n, maxFreq int) int {
	return int(math.Round(float64(n) / float64(maxFreq) * 100))
}
