// Package domain defines the business logic for the signup service.
package domain

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"example.com/signup/internal/observability"
)

var (
	// ErrActivityNotFound is returned when an activity cannot be located.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadyRegistered indicates the email is already on the activity roster.
	ErrAlreadyRegistered = errors.New("student already signed up")
	// ErrNotRegistered indicates the email is not on the activity roster.
	ErrNotRegistered = errors.New("student not registered")
)

// Store captures roster state operations.
type Store interface {
	Snapshot(ctx context.Context) (map[string]Activity, error)
	Signup(ctx context.Context, activityName, email string) (Activity, error)
	Unregister(ctx context.Context, activityName, email string) (Activity, error)
}

// Service orchestrates roster workflows.
type Service struct {
	store  Store
	logger *zap.Logger
}

// NewService constructs a Service. A nil logger disables logging.
func NewService(store Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// ListActivities returns the full current activity state.
func (s *Service) ListActivities(ctx context.Context) (map[string]Activity, error) {
	return s.store.Snapshot(ctx)
}

// Signup adds email to the activity roster and returns a confirmation message.
func (s *Service) Signup(ctx context.Context, activityName, email string) (string, error) {
	activity, err := s.store.Signup(ctx, activityName, email)
	if err != nil {
		observability.RecordRosterOperation(activityName, "signup", outcomeFor(err))
		return "", err
	}

	observability.RecordRosterOperation(activity.Name, "signup", "success")
	observability.SetRosterSize(activity.Name, len(activity.Participants))
	s.logger.Info("student signed up",
		zap.String("activity", activity.Name),
		zap.String("email", email),
		zap.Int("roster_size", len(activity.Participants)))

	return fmt.Sprintf("Signed up %s for %s", email, activity.Name), nil
}

// Unregister removes email from the activity roster and returns a confirmation message.
func (s *Service) Unregister(ctx context.Context, activityName, email string) (string, error) {
	activity, err := s.store.Unregister(ctx, activityName, email)
	if err != nil {
		observability.RecordRosterOperation(activityName, "unregister", outcomeFor(err))
		return "", err
	}

	observability.RecordRosterOperation(activity.Name, "unregister", "success")
	observability.SetRosterSize(activity.Name, len(activity.Participants))
	s.logger.Info("student unregistered",
		zap.String("activity", activity.Name),
		zap.String("email", email),
		zap.Int("roster_size", len(activity.Participants)))

	return fmt.Sprintf("Unregistered %s from %s", email, activity.Name), nil
}

func outcomeFor(err error) string {
	switch {
	case errors.Is(err, ErrActivityNotFound):
		return "not_found"
	case errors.Is(err, ErrAlreadyRegistered):
		return "already_registered"
	case errors.Is(err, ErrNotRegistered):
		return "not_registered"
	default:
		return "error"
	}
}
