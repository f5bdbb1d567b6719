package keyword

import (
	"slices"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"lowercases", "Character Growth", []string{"character", "growth"}},
		{"collapses whitespace", "  a\n\n\tb   c ", []string{"a", "b", "c"}},
		{"punctuation separates", "stat,skill.tree!", []string{"stat", "skill", "tree"}},
		{"underscore is punctuation", "skill_tree", []string{"skill", "tree"}},
		{"splits letters from digits", "level999", []string{"level", "999"}},
		{"splits every boundary", "v2beta10x", []string{"v", "2", "beta", "10", "x"}},
		{"pure digits pass through", "2024", []string{"2024"}},
		{"korean passes through", "캐릭터 성장", []string{"캐릭터", "성장"}},
		{"korean with digits is not split", "레벨99", []string{"레벨99"}},
		{"korean and latin with digits splits", "레벨a9", []string{"레벨a", "9"}},
		{"drops other scripts", "café ñandú", []string{"caf", "and"}},
		{"drops emoji", "🎮 game", []string{"game"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.input)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Tokenize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		token string
		want  Script
	}{
		{"", ScriptOther},
		{"system", ScriptLatin},
		{"캐릭터", ScriptHangul},
		{"레벨a", ScriptHangul},
		{"999", ScriptOther},
		{"abc1", ScriptOther},
		{"ABC", ScriptOther},
	}
	for _, tt := range tests {
		if got := Classify(tt.token); got != tt.want {
			t.Errorf("Classify(%q) = %s, want %s", tt.token, got, tt.want)
		}
	}
}

func TestIsStopword(t *testing.T) {
	tests := []struct {
		token string
		want  bool
	}{
		{"the", true},
		{"users", true},
		{"character", false},
		{"을", true},
		{"에서", true},
		{"개발", true},
		{"캐릭터", false},
		// mixed and uppercase tokens are not routed to either set
		{"a1", false},
		{"THE", false},
	}
	for _, tt := range tests {
		if got := IsStopword(tt.token); got != tt.want {
			t.Errorf("IsStopword(%q) = %v, want %v", tt.token, got, tt.want)
		}
	}
}
