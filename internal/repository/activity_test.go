package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/mergington/activities/api/internal/model"
	"github.com/mergington/activities/api/internal/store"
)

func newTestRepo() *ActivityRepository {
	s := store.New()
	s.Put(&model.Activity{
		Name:            "Robotics Club",
		Description:     "Design and build robots for regional competitions",
		Schedule:        "Tuesdays, 3:30 PM - 5:30 PM",
		MaxParticipants: 14,
		Participants:    []string{"james@mergington.edu"},
	})
	return NewActivityRepository(s)
}

func TestActivityRepository_GetByName_Missing(t *testing.T) {
	t.Parallel()

	repo := newTestRepo()

	activity, err := repo.GetByName(context.Background(), "Knitting Circle")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if activity != nil {
		t.Errorf("expected nil for missing activity, got %v", activity)
	}
}

func TestActivityRepository_GetByName_Found(t *testing.T) {
	t.Parallel()

	repo := newTestRepo()

	activity, err := repo.GetByName(context.Background(), "Robotics Club")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if activity == nil || activity.Name != "Robotics Club" {
		t.Errorf("unexpected activity: %v", activity)
	}
}

func TestActivityRepository_AddRemoveParticipant(t *testing.T) {
	t.Parallel()

	repo := newTestRepo()
	ctx := context.Background()

	if err := repo.AddParticipant(ctx, "Robotics Club", "benjamin@mergington.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.AddParticipant(ctx, "Robotics Club", "benjamin@mergington.edu"); !errors.Is(err, store.ErrDuplicate) {
		t.Errorf("expected ErrDuplicate, got %v", err)
	}

	if err := repo.RemoveParticipant(ctx, "Robotics Club", "benjamin@mergington.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := repo.RemoveParticipant(ctx, "Robotics Club", "benjamin@mergington.edu"); !errors.Is(err, store.ErrMissing) {
		t.Errorf("expected ErrMissing, got %v", err)
	}
}

func TestActivityRepository_CancelledContext(t *testing.T) {
	t.Parallel()

	repo := newTestRepo()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := repo.List(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if err := repo.AddParticipant(ctx, "Robotics Club", "x@mergington.edu"); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
