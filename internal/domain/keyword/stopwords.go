package keyword

// Stopword tables are built once at package init and never written afterwards.
var (
	koreanStopwords = newSet(
		// particles
		"은", "는", "이", "가", "을", "를", "의", "에", "로", "으로",
		"와", "과", "도", "만", "시", "때", "에서", "부터", "까지",
		"께서", "한테", "에게", "처럼", "같이", "보다", "라고", "이라고",
		// conjunctions and endings
		"그리고", "하지만", "그러나", "또는", "혹은", "및", "그래서",
		"따라서", "때문에", "위해", "대해", "통해", "합니다", "있습니다",
		"됩니다", "입니다", "하고", "이고", "것", "수", "등", "중",
		"하다", "되다", "있다", "없다", "이다", "아니다",
		// generic filler
		"진행", "개발", "구현", "추가", "관리",
	)

	englishStopwords = newSet(
		"a", "an", "the",
		"i", "me", "my", "myself", "we", "our", "ours", "ourselves",
		"you", "your", "yours", "yourself", "yourselves",
		"he", "him", "his", "himself", "she", "her", "hers", "herself",
		"it", "its", "itself", "they", "them", "their", "theirs", "themselves",
		"what", "which", "who", "whom", "this", "that", "these", "those",
		"am", "is", "are", "was", "were", "be", "been", "being",
		"have", "has", "had", "having", "do", "does", "did", "doing",
		"would", "should", "could", "ought", "might", "must", "shall", "will", "can",
		"at", "by", "for", "from", "in", "into", "of", "on", "to", "with",
		"about", "against", "between", "through", "during", "before", "after",
		"above", "below", "under", "over", "again", "further", "then", "once",
		"and", "but", "or", "nor", "so", "yet", "both", "either", "neither",
		"not", "only", "same", "than", "too", "very", "just",
		"if", "else", "when", "while", "as", "because", "until", "unless",
		"where", "how", "all", "any", "each", "every", "few", "more", "most",
		"other", "some", "such", "no", "own", "here", "there", "now",
		"get", "got", "make", "made", "take", "taken", "use", "used",
		"new", "also", "like", "well", "way", "even", "back",
		// filler common in feature write-ups
		"accordingly", "able", "using", "users", "user",
	)
)

type set map[string]struct{}

func newSet(words ...string) set {
	s := make(set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

func (s set) has(w string) bool {
	_, ok := s[w]
	return ok
}

// IsStopword reports whether token is a stopword for its detected script.
// Tokens classified as ScriptOther are never stopwords.
func IsStopword(token string) bool {
	switch Classify(token) {
	case ScriptHangul:
		return koreanStopwords.has(token)
	case ScriptLatin:
		return englishStopwords.has(token)
	default:
		return false
	}
}
