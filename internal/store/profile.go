package store

import (
	"regexp"
	"strings"
)

// knownLanguages and knownAirlines are scanned as lowercase substrings.
// More specific names stay ahead of their prefixes ("air india express"
// before "air india") so the first match within a scan is the right one.
var knownLanguages = []string{
	"hindi",
	"english",
	"punjabi",
	"bengali",
	"tamil",
	"telugu",
	"marathi",
	"gujarati",
	"kannada",
	"malayalam",
}

var knownAirlines = []string{
	"air india express",
	"air india",
	"indigo",
	"vistara",
	"spicejet",
	"akasa",
	"go first",
}

var nameRe = regexp.MustCompile(`(?i)\bmy name is\s+([\p{L}]+)`)

// RecordProfileHints scans an utterance for language names, airline names
// and a "my name is X" pattern, writing matches into the session profile.
// First match per field wins within a scan; later mentions overwrite
// earlier ones across calls.
func RecordProfileHints(s *Session, utterance string) {
	lower := strings.ToLower(utterance)

	for _, lang := range knownLanguages {
		if strings.Contains(lower, lang) {
			s.Profile.Language = lang
			break
		}
	}

	for _, airline := range knownAirlines {
		if strings.Contains(lower, airline) {
			s.Profile.FavoriteAirline = airline
			break
		}
	}

	if m := nameRe.FindStringSubmatch(utterance); m != nil {
		s.Profile.Name = m[1]
	}
}
