// Package store provides the in-memory storage engine for the activity
// registry.
//
// The registry is a single mutex-guarded map from activity name to record.
// There is no persistence: state lives only in process memory and is lost
// on restart. All mutations are atomic with respect to concurrent readers
// and writers; the lock covers the whole registry, which is more than
// enough at this scale.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Activity does not exist
//   - ErrDuplicate: Email already present in the participant list
//   - ErrMissing: Email not present in the participant list
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, store.ErrNotFound) {
//	    // Handle missing activity
//	}
package store

import (
	"errors"
	"sync"

	"github.com/mergington/activities/api/internal/model"
)

// Standard errors for store operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested activity does not exist.
	ErrNotFound = errors.New("activity not found in store")

	// ErrDuplicate indicates the email is already in the participant list.
	ErrDuplicate = errors.New("participant already present")

	// ErrMissing indicates the email is not in the participant list.
	ErrMissing = errors.New("participant not present")
)

// Store is the in-memory activity registry. The zero value is not usable;
// create one with New.
type Store struct {
	mu         sync.RWMutex
	activities map[string]*model.Activity
}

// New creates an empty store
func New() *Store {
	return &Store{
		activities: make(map[string]*model.Activity),
	}
}

// Put inserts or replaces an activity record. Used at seed time; activities
// are never added or removed at runtime after that.
func (s *Store) Put(activity *model.Activity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activities[activity.Name] = activity.Clone()
}

// Get returns a deep copy of the named activity, or ErrNotFound
func (s *Store) Get(name string) (*model.Activity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	activity, ok := s.activities[name]
	if !ok {
		return nil, ErrNotFound
	}
	return activity.Clone(), nil
}

// Snapshot returns a deep copy of the whole registry keyed by activity name
func (s *Store) Snapshot() map[string]*model.Activity {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]*model.Activity, len(s.activities))
	for name, activity := range s.activities {
		out[name] = activity.Clone()
	}
	return out
}

// Len returns the number of activities in the registry
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.activities)
}

// AppendParticipant atomically adds email to the named activity's
// participant list, preserving signup order. It returns ErrNotFound for an
// unknown activity and ErrDuplicate when the email is already present.
// Capacity is deliberately not checked here; see the service layer notes.
func (s *Store) AppendParticipant(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}
	if activity.HasParticipant(email) {
		return ErrDuplicate
	}
	activity.Participants = append(activity.Participants, email)
	return nil
}

// RemoveParticipant atomically removes email from the named activity's
// participant list. It returns ErrNotFound for an unknown activity and
// ErrMissing when the email is not present.
func (s *Store) RemoveParticipant(name, email string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	activity, ok := s.activities[name]
	if !ok {
		return ErrNotFound
	}
	for i, p := range activity.Participants {
		if p == email {
			activity.Participants = append(activity.Participants[:i], activity.Participants[i+1:]...)
			return nil
		}
	}
	return ErrMissing
}
