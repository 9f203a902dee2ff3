package store

import (
	"testing"
	"time"
)

func TestGetOrCreate_EmptyDefaults(t *testing.T) {
	st := NewStore()
	s := st.GetOrCreate("whatsapp:+911111111111")
	if len(s.History) != 0 || s.TotalTurns != 0 {
		t.Fatalf("session not empty: %+v", s)
	}
	if s.Profile != (Profile{}) {
		t.Fatalf("profile not empty: %+v", s.Profile)
	}
	if s.Feedback.InteractionCount != 0 || s.Feedback.Awaiting || len(s.Feedback.Log) != 0 {
		t.Fatalf("feedback not zeroed: %+v", s.Feedback)
	}
	if st.GetOrCreate("whatsapp:+911111111111") != s {
		t.Fatalf("expected the same session on second lookup")
	}
}

func TestPrune_DropsEntriesOlderThanWindow(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := &Session{}
	s.Append(RoleUser, "old", now.Add(-2*time.Hour))
	s.Append(RoleAssistant, "old reply", now.Add(-61*time.Minute))
	s.Append(RoleUser, "recent", now.Add(-10*time.Minute))

	s.Prune(now)

	if len(s.History) != 1 {
		t.Fatalf("history len=%d want 1", len(s.History))
	}
	if s.History[0].Content != "recent" {
		t.Fatalf("kept=%q", s.History[0].Content)
	}
	if s.TotalTurns != 2 {
		t.Fatalf("TotalTurns=%d, pruning must not touch it", s.TotalTurns)
	}
}

func TestPrune_KeepsEntryExactlyAtCutoff(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	s := &Session{}
	s.Append(RoleUser, "edge", now.Add(-HistoryWindow))
	s.Prune(now)
	if len(s.History) != 1 {
		t.Fatalf("entry at the window edge should survive")
	}
}

func TestAppend_AssignsIDsAndOrder(t *testing.T) {
	now := time.Now()
	s := &Session{}
	s.Append(RoleUser, "a", now)
	s.Append(RoleAssistant, "b", now)
	if s.History[0].ID == "" || s.History[1].ID == "" {
		t.Fatalf("turn IDs missing")
	}
	if s.History[0].ID == s.History[1].ID {
		t.Fatalf("turn IDs must be unique")
	}
	if s.History[0].Content != "a" || s.History[1].Content != "b" {
		t.Fatalf("insertion order lost: %+v", s.History)
	}
	if s.TotalTurns != 1 {
		t.Fatalf("TotalTurns=%d want 1 (assistant turns do not count)", s.TotalTurns)
	}
}

func TestLock_SameMutexPerUser(t *testing.T) {
	st := NewStore()
	if st.Lock("u1") != st.Lock("u1") {
		t.Fatalf("expected the same mutex for one user")
	}
	if st.Lock("u1") == st.Lock("u2") {
		t.Fatalf("expected distinct mutexes for distinct users")
	}
}
