package bot

import "strings"

// hedgePhrases flag a generated reply as too uncertain to send. The check
// is deliberately conservative: over-triggering the help-desk fallback is
// acceptable, letting a hollow reply through is not.
var hedgePhrases = []string{
	"not sure",
	"do not know",
	"don't know",
	"no information",
	"sorry",
	"unknown",
	"n/a",
	"cannot help",
	"unable to",
}

const minConfidentReplyLen = 10

func isUncertain(reply string) bool {
	trimmed := strings.TrimSpace(reply)
	if len([]rune(trimmed)) < minConfidentReplyLen {
		return true
	}
	lower := strings.ToLower(trimmed)
	for _, phrase := range hedgePhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}
