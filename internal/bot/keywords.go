package bot

import "strings"

// helpIntentKeywords maps a language tag to the phrases that signal a
// traveler asking for guidance. Matching is lowercase substring; Latin
// transliterations sit next to native-script spellings.
var helpIntentKeywords = map[string][]string{
	"en": {"help", "help me", "guide me", "i am new", "confused"},
	"hi": {"madad", "मदद", "sahayata", "सहायता", "raasta batao"},
	"pa": {"ਮਦਦ", "madadd"},
	"bn": {"সাহায্য", "sahajyo"},
}

// hasHelpIntent reports whether the normalized utterance contains any
// help-intent keyword in any language.
func hasHelpIntent(normalized string) bool {
	for _, keywords := range helpIntentKeywords {
		for _, kw := range keywords {
			if strings.Contains(normalized, kw) {
				return true
			}
		}
	}
	return false
}
