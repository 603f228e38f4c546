package repository

import (
	"context"

	"github.com/mergington/activities/api/internal/model"
	"github.com/mergington/activities/api/internal/store"
)

// ActivityRepository handles activity data access
type ActivityRepository struct {
	store *store.Store
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(s *store.Store) *ActivityRepository {
	return &ActivityRepository{store: s}
}

// List returns a snapshot of all activities keyed by name
func (r *ActivityRepository) List(ctx context.Context) (map[string]*model.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return r.store.Snapshot(), nil
}

// GetByName retrieves an activity by name. Returns (nil, nil) when the
// activity does not exist.
func (r *ActivityRepository) GetByName(ctx context.Context, name string) (*model.Activity, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	activity, err := r.store.Get(name)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, nil
		}
		return nil, err
	}
	return activity, nil
}

// AddParticipant appends email to the named activity's participant list.
// Store sentinel errors (ErrNotFound, ErrDuplicate) pass through for the
// service layer to map.
func (r *ActivityRepository) AddParticipant(ctx context.Context, name, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.store.AppendParticipant(name, email)
}

// RemoveParticipant removes email from the named activity's participant
// list. Store sentinel errors (ErrNotFound, ErrMissing) pass through.
func (r *ActivityRepository) RemoveParticipant(ctx context.Context, name, email string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return r.store.RemoveParticipant(name, email)
}
