package keyword

// Script is the writing system a token is routed by for stopword lookup.
type Script int

const (
	// ScriptOther covers digits, mixed tokens and anything not routed to a stopword set.
	ScriptOther Script = iota
	// ScriptHangul marks a token containing at least one Hangul syllable.
	ScriptHangul
	// ScriptLatin marks a token made solely of lowercase a-z.
	ScriptLatin
)

const (
	hangulFirst = '가'
	hangulLast  = '힣'
)

func (s Script) String() string {
	switch s {
	case ScriptHangul:
		return "hangul"
	case ScriptLatin:
		return "latin"
	default:
		return "other"
	}
}

// Classify detects the script of a normalized token.
// Hangul wins over Latin: any syllable makes the token Korean.
func Classify(token string) Script {
	if token == "" {
		return ScriptOther
	}
	latin := true
	for _, r := range token {
		if isHangul(r) {
			return ScriptHangul
		}
		if !isLowerLatin(r) {
			latin = false
		}
	}
	if latin {
		return ScriptLatin
	}
	return ScriptOther
}

func isHangul(r rune) bool { return r >= hangulFirst && r <= hangulLast }

func isLowerLatin(r rune) bool { return r >= 'a' && r <= 'z' }

func isDigit(r rune) bool { return r >= '0' && r <= '9' }
