package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/mergington/activities/api/internal/model"
	"github.com/mergington/activities/api/internal/observability"
	"github.com/mergington/activities/api/internal/store"
)

// ActivityRepository defines the interface for activity storage
type ActivityRepository interface {
	List(ctx context.Context) (map[string]*model.Activity, error)
	GetByName(ctx context.Context, name string) (*model.Activity, error)
	AddParticipant(ctx context.Context, name, email string) error
	RemoveParticipant(ctx context.Context, name, email string) error
}

// ActivityService implements the registry operations: list, signup,
// unregister
type ActivityService struct {
	repo ActivityRepository
}

// ActivityServiceConfig holds dependencies for ActivityService
type ActivityServiceConfig struct {
	Repo ActivityRepository
}

// NewActivityService creates a new activity service
func NewActivityService(cfg ActivityServiceConfig) *ActivityService {
	return &ActivityService{repo: cfg.Repo}
}

// ListActivities returns the full registry keyed by activity name
func (s *ActivityService) ListActivities(ctx context.Context) (map[string]*model.Activity, error) {
	return s.repo.List(ctx)
}

// GetActivity returns a single activity or ErrActivityNotFound
func (s *ActivityService) GetActivity(ctx context.Context, name string) (*model.Activity, error) {
	if name == "" {
		return nil, ErrActivityNameRequired
	}

	activity, err := s.repo.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if activity == nil {
		return nil, ErrActivityNotFound
	}
	return activity, nil
}

// Signup enrolls email in the named activity. The participant list keeps
// signup order. Capacity is intentionally not checked: max_participants is
// advisory and signups past it succeed, matching the registry's documented
// behavior.
func (s *ActivityService) Signup(ctx context.Context, name, email string) error {
	if name == "" {
		return ErrActivityNameRequired
	}
	if email == "" {
		return ErrEmailRequired
	}

	err := s.repo.AddParticipant(ctx, name, email)
	switch {
	case err == nil:
		observability.RecordSignup(name)
		return nil
	case errors.Is(err, store.ErrNotFound):
		return ErrActivityNotFound
	case errors.Is(err, store.ErrDuplicate):
		return fmt.Errorf("%s is %w", email, ErrAlreadySignedUp)
	default:
		return err
	}
}

// Unregister withdraws email from the named activity
func (s *ActivityService) Unregister(ctx context.Context, name, email string) error {
	if name == "" {
		return ErrActivityNameRequired
	}
	if email == "" {
		return ErrEmailRequired
	}

	err := s.repo.RemoveParticipant(ctx, name, email)
	switch {
	case err == nil:
		observability.RecordUnregistration(name)
		return nil
	case errors.Is(err, store.ErrNotFound):
		return ErrActivityNotFound
	case errors.Is(err, store.ErrMissing):
		return fmt.Errorf("%s is %w", email, ErrNotRegistered)
	default:
		return err
	}
}
