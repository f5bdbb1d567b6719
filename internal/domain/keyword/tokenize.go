package keyword

import (
	"strings"
	"unicode"
)

// Tokenize normalizes text and splits it into raw tokens.
//
// Text is lowercased, every rune outside a-z, 0-9, Hangul syllables and
// whitespace becomes a separator, and the result is split on whitespace.
// Tokens mixing Latin letters with digits are further split at every
// digit/non-digit boundary ("level999" -> "level", "999").
func Tokenize(text string) []string {
	cleaned := strings.Map(func(r rune) rune {
		switch {
		case isLowerLatin(r), isDigit(r), isHangul(r):
			return r
		default:
			return ' '
		}
	}, strings.ToLower(text))

	var out []string
	for _, tok := range strings.FieldsFunc(cleaned, unicode.IsSpace) {
		if hasLatin(tok) && hasDigit(tok) {
			out = append(out, splitDigits(tok)...)
			continue
		}
		out = append(out, tok)
	}
	return out
}

func splitDigits(tok string) []string {
	var parts []string
	start := 0
	prev := false
	for i, r := range tok {
		d := isDigit(r)
		if i > 0 && d != prev {
			parts = append(parts, tok[start:i])
			start = i
		}
		prev = d
	}
	return append(parts, tok[start:])
}

func hasLatin(s string) bool { return strings.IndexFunc(s, isLowerLatin) >= 0 }

func hasDigit(s string) bool { return strings.IndexFunc(s, isDigit) >= 0 }

func isNumber(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool { return !isDigit(r) }) < 0
}
