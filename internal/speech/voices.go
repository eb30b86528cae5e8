package speech

import (
	"strings"

	"github.com/nextgenbank/voicebank/internal/bank"
)

// Name fragments that signal a masculine-sounding voice, per language.
var maleNameFragments = map[bank.Language][]string{
	bank.LangEnglish:  {"male", "david", "james", "george", "daniel"},
	bank.LangHindi:    {"male", "man", "ravi", "hemant"},
	bank.LangGujarati: {"male", "man"},
}

// PickVoice selects a voice for the given language: first a language match
// whose name contains one of the masculine fragments, then any voice
// matching the language, then nil (caller uses the provider default).
func PickVoice(voices []Voice, lang bank.Language) *Voice {
	prefix := string(lang)

	var langMatch *Voice
	for i := range voices {
		v := &voices[i]
		if !strings.HasPrefix(strings.ToLower(v.Lang), prefix) {
			continue
		}
		if langMatch == nil {
			langMatch = v
		}
		name := strings.ToLower(v.Name)
		for _, frag := range maleNameFragments[lang] {
			if strings.Contains(name, frag) {
				return v
			}
		}
	}
	return langMatch
}
