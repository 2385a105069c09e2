package services

import (
	"context"
	"fmt"

	"github.com/mergington/activities/internal/domain/entities"
	"github.com/mergington/activities/internal/infrastructure/logger"
	"github.com/mergington/activities/internal/ports"
)

// ActivityService handles activity listing and roster changes
type ActivityService struct {
	repo   ports.ActivityRepository
	logger *logger.Logger
}

// NewActivityService creates a new activity service
func NewActivityService(repo ports.ActivityRepository, logger *logger.Logger) *ActivityService {
	return &ActivityService{
		repo:   repo,
		logger: logger,
	}
}

// List returns every activity keyed by name, names stripped from the values
func (s *ActivityService) List(ctx context.Context) (map[string]entities.ActivityDetails, error) {
	activities, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	result := make(map[string]entities.ActivityDetails, len(activities))
	for _, activity := range activities {
		result[activity.Name] = activity.Details()
	}

	return result, nil
}

// Signup adds a student to an activity's roster
func (s *ActivityService) Signup(ctx context.Context, name, email string) (string, error) {
	activity, err := s.repo.Get(ctx, name)
	if err != nil {
		return "", err
	}

	if activity.HasParticipant(email) {
		return "", entities.ErrAlreadySignedUp
	}

	result, err := s.repo.AppendParticipant(ctx, name, email)
	if err != nil {
		return "", fmt.Errorf("sign up %s for %q: %w", email, name, err)
	}

	// The activity vanished between lookup and update.
	if result.ModifiedCount == 0 {
		return "", fmt.Errorf("sign up %s for %q: %w", email, name, entities.ErrNothingModified)
	}

	s.logger.Infow("Student signed up", "activity", name, "email", email)

	return fmt.Sprintf("Signed up %s for %s", email, name), nil
}

// Unregister removes a student from an activity's roster
func (s *ActivityService) Unregister(ctx context.Context, name, email string) (string, error) {
	activity, err := s.repo.Get(ctx, name)
	if err != nil {
		return "", err
	}

	if !activity.HasParticipant(email) {
		return "", entities.ErrNotSignedUp
	}

	result, err := s.repo.RemoveParticipant(ctx, name, email)
	if err != nil {
		return "", fmt.Errorf("unregister %s from %q: %w", email, name, err)
	}

	if result.ModifiedCount == 0 {
		return "", fmt.Errorf("unregister %s from %q: %w", email, name, entities.ErrNothingModified)
	}

	s.logger.Infow("Student unregistered", "activity", name, "email", email)

	return fmt.Sprintf("Unregistered %s from %s", email, name), nil
}

// Seed loads the initial catalog when the store is empty. Returns the number
// of activities inserted, zero when the store already has data.
func (s *ActivityService) Seed(ctx context.Context) (int, error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("seed activities: %w", err)
	}

	if count > 0 {
		return 0, nil
	}

	seed := entities.SeedActivities()
	for _, activity := range seed {
		if err := s.repo.Put(ctx, activity); err != nil {
			return 0, fmt.Errorf("seed activity %q: %w", activity.Name, err)
		}
	}

	s.logger.Infow("Seeded activity catalog", "count", len(seed))

	return len(seed), nil
}
