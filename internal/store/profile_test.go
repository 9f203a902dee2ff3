package store

import "testing"

func TestRecordProfileHints_AllFields(t *testing.T) {
	s := &Session{}
	RecordProfileHints(s, "My name is Asha, I prefer Hindi and I always fly IndiGo")
	if s.Profile.Name != "Asha" {
		t.Fatalf("name=%q", s.Profile.Name)
	}
	if s.Profile.Language != "hindi" {
		t.Fatalf("language=%q", s.Profile.Language)
	}
	if s.Profile.FavoriteAirline != "indigo" {
		t.Fatalf("airline=%q", s.Profile.FavoriteAirline)
	}
}

func TestRecordProfileHints_LaterMentionOverwrites(t *testing.T) {
	s := &Session{}
	RecordProfileHints(s, "i fly spicejet")
	RecordProfileHints(s, "actually i prefer vistara now")
	if s.Profile.FavoriteAirline != "vistara" {
		t.Fatalf("airline=%q", s.Profile.FavoriteAirline)
	}
}

func TestRecordProfileHints_SpecificAirlineBeforePrefix(t *testing.T) {
	s := &Session{}
	RecordProfileHints(s, "my flight is on air india express")
	if s.Profile.FavoriteAirline != "air india express" {
		t.Fatalf("airline=%q, 'air india' must not shadow 'air india express'", s.Profile.FavoriteAirline)
	}
}

func TestRecordProfileHints_NoMatchLeavesProfileAlone(t *testing.T) {
	s := &Session{}
	s.Profile.Name = "Ravi"
	RecordProfileHints(s, "where is the lounge")
	if s.Profile.Name != "Ravi" || s.Profile.Language != "" || s.Profile.FavoriteAirline != "" {
		t.Fatalf("profile mutated unexpectedly: %+v", s.Profile)
	}
}
