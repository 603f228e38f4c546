package store

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/mergington/activities/api/internal/model"
)

func newTestStore() *Store {
	s := New()
	s.Put(&model.Activity{
		Name:            "Chess Club",
		Description:     "Learn strategies and compete in chess tournaments",
		Schedule:        "Fridays, 3:30 PM - 5:00 PM",
		MaxParticipants: 12,
		Participants:    []string{"michael@mergington.edu"},
	})
	return s
}

func TestStore_Get_ReturnsCopy(t *testing.T) {
	t.Parallel()

	s := newTestStore()

	first, err := s.Get("Chess Club")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Mutating the returned copy must not affect the registry
	first.Participants[0] = "tampered@mergington.edu"
	first.Participants = append(first.Participants, "extra@mergington.edu")

	second, err := s.Get("Chess Club")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(second.Participants) != 1 || second.Participants[0] != "michael@mergington.edu" {
		t.Errorf("registry state was mutated through a snapshot: %v", second.Participants)
	}
}

func TestStore_Get_Unknown(t *testing.T) {
	t.Parallel()

	s := newTestStore()

	_, err := s.Get("Knitting Circle")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_AppendParticipant(t *testing.T) {
	t.Parallel()

	s := newTestStore()

	if err := s.AppendParticipant("Chess Club", "daniel@mergington.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	activity, err := s.Get("Chess Club")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"michael@mergington.edu", "daniel@mergington.edu"}
	if len(activity.Participants) != len(want) {
		t.Fatalf("expected %d participants, got %d", len(want), len(activity.Participants))
	}
	for i, email := range want {
		if activity.Participants[i] != email {
			t.Errorf("signup order not preserved at %d: got %s, want %s", i, activity.Participants[i], email)
		}
	}
}

func TestStore_AppendParticipant_Duplicate(t *testing.T) {
	t.Parallel()

	s := newTestStore()

	err := s.AppendParticipant("Chess Club", "michael@mergington.edu")
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	activity, _ := s.Get("Chess Club")
	if len(activity.Participants) != 1 {
		t.Errorf("failed append must leave state unchanged, got %v", activity.Participants)
	}
}

func TestStore_AppendParticipant_UnknownActivity(t *testing.T) {
	t.Parallel()

	s := newTestStore()

	err := s.AppendParticipant("Knitting Circle", "someone@mergington.edu")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_AppendParticipant_NoCapacityCheck(t *testing.T) {
	t.Parallel()

	s := New()
	s.Put(&model.Activity{
		Name:            "Tiny Club",
		Description:     "A very small club",
		Schedule:        "Mondays",
		MaxParticipants: 1,
		Participants:    []string{"first@mergington.edu"},
	})

	// max_participants is advisory: appends past capacity succeed
	if err := s.AppendParticipant("Tiny Club", "second@mergington.edu"); err != nil {
		t.Fatalf("expected append past capacity to succeed, got %v", err)
	}

	activity, _ := s.Get("Tiny Club")
	if len(activity.Participants) != 2 {
		t.Errorf("expected 2 participants, got %d", len(activity.Participants))
	}
}

func TestStore_RemoveParticipant(t *testing.T) {
	t.Parallel()

	s := newTestStore()

	if err := s.RemoveParticipant("Chess Club", "michael@mergington.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	activity, _ := s.Get("Chess Club")
	if len(activity.Participants) != 0 {
		t.Errorf("expected empty participant list, got %v", activity.Participants)
	}
}

func TestStore_RemoveParticipant_Missing(t *testing.T) {
	t.Parallel()

	s := newTestStore()

	err := s.RemoveParticipant("Chess Club", "nobody@mergington.edu")
	if !errors.Is(err, ErrMissing) {
		t.Errorf("expected ErrMissing, got %v", err)
	}
}

func TestStore_RemoveParticipant_UnknownActivity(t *testing.T) {
	t.Parallel()

	s := newTestStore()

	err := s.RemoveParticipant("Knitting Circle", "michael@mergington.edu")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Snapshot_Independent(t *testing.T) {
	t.Parallel()

	s := newTestStore()

	snap := s.Snapshot()
	snap["Chess Club"].Participants = nil
	delete(snap, "Chess Club")

	if s.Len() != 1 {
		t.Errorf("snapshot mutation leaked into store, len = %d", s.Len())
	}
	activity, _ := s.Get("Chess Club")
	if len(activity.Participants) != 1 {
		t.Errorf("snapshot mutation leaked into participants: %v", activity.Participants)
	}
}

// TestStore_ConcurrentAppendRemove verifies that append/remove/snapshot on
// the same activity are race-free and leave the list consistent under
// concurrent use.
func TestStore_ConcurrentAppendRemove(t *testing.T) {
	t.Parallel()

	s := New()
	s.Put(&model.Activity{
		Name:            "Gym Class",
		Description:     "Physical education and sports activities",
		Schedule:        "Mondays, Wednesdays, Fridays, 2:00 PM - 3:00 PM",
		MaxParticipants: 30,
	})

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers * 2)

	for i := 0; i < workers; i++ {
		email := fmt.Sprintf("student%d@mergington.edu", i)

		go func(email string) {
			defer wg.Done()
			if err := s.AppendParticipant("Gym Class", email); err != nil {
				t.Errorf("append %s: %v", email, err)
			}
		}(email)

		go func() {
			defer wg.Done()
			// Readers must never observe a torn list
			for _, a := range s.Snapshot() {
				_ = len(a.Participants)
			}
		}()
	}
	wg.Wait()

	activity, err := s.Get("Gym Class")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(activity.Participants) != workers {
		t.Fatalf("expected %d participants after concurrent appends, got %d", workers, len(activity.Participants))
	}

	seen := make(map[string]bool)
	for _, p := range activity.Participants {
		if seen[p] {
			t.Errorf("duplicate participant %s", p)
		}
		seen[p] = true
	}
}
