package services

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mergington/activities/internal/adapters/repository"
	"github.com/mergington/activities/internal/domain/entities"
	"github.com/mergington/activities/internal/infrastructure/config"
	"github.com/mergington/activities/internal/infrastructure/logger"
	"github.com/mergington/activities/internal/infrastructure/storage"
	"github.com/mergington/activities/internal/ports"
)

func newTestService(t *testing.T) *ActivityService {
	t.Helper()

	store, err := storage.New(config.StorageConfig{
		DataFile: filepath.Join(t.TempDir(), "activities.json"),
	})
	require.NoError(t, err)

	repo := repository.NewActivityRepository(store)
	return NewActivityService(repo, logger.NewNop())
}

func TestSeedPopulatesEmptyStore(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	inserted, err := service.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 9, inserted)

	activities, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, activities, 9)

	// Reading the catalog back yields the seed data unchanged.
	for _, want := range entities.SeedActivities() {
		got, ok := activities[want.Name]
		require.True(t, ok, "missing activity %q", want.Name)
		assert.Equal(t, want.Details(), got)
	}
}

func TestSeedSkipsPopulatedStore(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Seed(ctx)
	require.NoError(t, err)

	inserted, err := service.Seed(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, inserted)
}

func TestSignup(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Seed(ctx)
	require.NoError(t, err)

	message, err := service.Signup(ctx, "Chess Club", "new@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Signed up new@mergington.edu for Chess Club", message)

	activities, err := service.List(ctx)
	require.NoError(t, err)

	occurrences := 0
	for _, p := range activities["Chess Club"].Participants {
		if p == "new@mergington.edu" {
			occurrences++
		}
	}
	assert.Equal(t, 1, occurrences)
}

func TestSignupDuplicate(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Seed(ctx)
	require.NoError(t, err)

	_, err = service.Signup(ctx, "Chess Club", "michael@mergington.edu")
	assert.ErrorIs(t, err, entities.ErrAlreadySignedUp)

	activities, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"michael@mergington.edu", "daniel@mergington.edu"},
		activities["Chess Club"].Participants,
	)
}

func TestSignupUnknownActivity(t *testing.T) {
	service := newTestService(t)

	_, err := service.Signup(context.Background(), "Knitting Circle", "new@mergington.edu")
	assert.ErrorIs(t, err, entities.ErrActivityNotFound)
}

func TestUnregister(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Seed(ctx)
	require.NoError(t, err)

	message, err := service.Unregister(ctx, "Chess Club", "michael@mergington.edu")
	require.NoError(t, err)
	assert.Equal(t, "Unregistered michael@mergington.edu from Chess Club", message)

	activities, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"daniel@mergington.edu"}, activities["Chess Club"].Participants)
}

func TestUnregisterNotSignedUp(t *testing.T) {
	service := newTestService(t)
	ctx := context.Background()

	_, err := service.Seed(ctx)
	require.NoError(t, err)

	_, err = service.Unregister(ctx, "Chess Club", "stranger@mergington.edu")
	assert.ErrorIs(t, err, entities.ErrNotSignedUp)

	activities, err := service.List(ctx)
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"michael@mergington.edu", "daniel@mergington.edu"},
		activities["Chess Club"].Participants,
	)
}

func TestUnregisterUnknownActivity(t *testing.T) {
	service := newTestService(t)

	_, err := service.Unregister(context.Background(), "Knitting Circle", "michael@mergington.edu")
	assert.ErrorIs(t, err, entities.ErrActivityNotFound)
}

// vanishingRepo simulates the activity disappearing between lookup and update.
type vanishingRepo struct {
	ports.ActivityRepository
	activity entities.Activity
}

func (r *vanishingRepo) Get(ctx context.Context, name string) (*entities.Activity, error) {
	a := r.activity
	return &a, nil
}

func (r *vanishingRepo) AppendParticipant(ctx context.Context, name, email string) (ports.UpdateResult, error) {
	return ports.UpdateResult{}, nil
}

func (r *vanishingRepo) RemoveParticipant(ctx context.Context, name, email string) (ports.UpdateResult, error) {
	return ports.UpdateResult{}, nil
}

func TestSignupNothingModified(t *testing.T) {
	repo := &vanishingRepo{activity: entities.Activity{Name: "Chess Club"}}
	service := NewActivityService(repo, logger.NewNop())

	_, err := service.Signup(context.Background(), "Chess Club", "new@mergington.edu")
	assert.ErrorIs(t, err, entities.ErrNothingModified)
}

func TestUnregisterNothingModified(t *testing.T) {
	repo := &vanishingRepo{activity: entities.Activity{
		Name:         "Chess Club",
		Participants: []string{"new@mergington.edu"},
	}}
	service := NewActivityService(repo, logger.NewNop())

	_, err := service.Unregister(context.Background(), "Chess Club", "new@mergington.edu")
	assert.ErrorIs(t, err, entities.ErrNothingModified)
}
