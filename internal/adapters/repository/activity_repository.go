package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/mergington/activities/internal/domain/entities"
	"github.com/mergington/activities/internal/infrastructure/storage"
	"github.com/mergington/activities/internal/ports"
)

// ActivityRepositoryImpl implements the ActivityRepository interface over the
// JSON file store
type ActivityRepositoryImpl struct {
	store *storage.Store
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(store *storage.Store) ports.ActivityRepository {
	return &ActivityRepositoryImpl{store: store}
}

func (r *ActivityRepositoryImpl) List(ctx context.Context) ([]entities.Activity, error) {
	var activities []entities.Activity

	err := r.store.View(func(data map[string]json.RawMessage) error {
		for name, raw := range data {
			details, err := decodeDetails(name, raw)
			if err != nil {
				return err
			}
			activities = append(activities, details.WithName(name))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Name < activities[j].Name
	})

	return activities, nil
}

func (r *ActivityRepositoryImpl) Get(ctx context.Context, name string) (*entities.Activity, error) {
	var activity *entities.Activity

	err := r.store.View(func(data map[string]json.RawMessage) error {
		raw, ok := data[name]
		if !ok {
			return entities.ErrActivityNotFound
		}

		details, err := decodeDetails(name, raw)
		if err != nil {
			return err
		}

		a := details.WithName(name)
		activity = &a
		return nil
	})
	if err != nil {
		if err == entities.ErrActivityNotFound {
			return nil, err
		}
		return nil, fmt.Errorf("get activity %q: %w", name, err)
	}

	return activity, nil
}

func (r *ActivityRepositoryImpl) Put(ctx context.Context, activity entities.Activity) error {
	err := r.store.Update(func(data map[string]json.RawMessage) error {
		raw, err := json.Marshal(activity.Details())
		if err != nil {
			return err
		}
		data[activity.Name] = raw
		return nil
	})
	if err != nil {
		return fmt.Errorf("put activity %q: %w", activity.Name, err)
	}

	return nil
}

func (r *ActivityRepositoryImpl) AppendParticipant(ctx context.Context, name, email string) (ports.UpdateResult, error) {
	var result ports.UpdateResult

	err := r.store.Update(func(data map[string]json.RawMessage) error {
		raw, ok := data[name]
		if !ok {
			return nil
		}

		details, err := decodeDetails(name, raw)
		if err != nil {
			return err
		}

		// A nil roster decodes from a document missing the field; append
		// creates it either way.
		details.Participants = append(details.Participants, email)

		updated, err := json.Marshal(details)
		if err != nil {
			return err
		}

		data[name] = updated
		result.ModifiedCount = 1
		return nil
	})
	if err != nil {
		return ports.UpdateResult{}, fmt.Errorf("append participant to %q: %w", name, err)
	}

	return result, nil
}

func (r *ActivityRepositoryImpl) RemoveParticipant(ctx context.Context, name, email string) (ports.UpdateResult, error) {
	var result ports.UpdateResult

	err := r.store.Update(func(data map[string]json.RawMessage) error {
		raw, ok := data[name]
		if !ok {
			return nil
		}

		details, err := decodeDetails(name, raw)
		if err != nil {
			return err
		}

		idx := -1
		for i, p := range details.Participants {
			if p == email {
				idx = i
				break
			}
		}
		if idx < 0 {
			return entities.ErrParticipantNotFound
		}

		details.Participants = append(details.Participants[:idx], details.Participants[idx+1:]...)

		updated, err := json.Marshal(details)
		if err != nil {
			return err
		}

		data[name] = updated
		result.ModifiedCount = 1
		return nil
	})
	if err != nil {
		if err == entities.ErrParticipantNotFound {
			return ports.UpdateResult{}, err
		}
		return ports.UpdateResult{}, fmt.Errorf("remove participant from %q: %w", name, err)
	}

	return result, nil
}

func (r *ActivityRepositoryImpl) Count(ctx context.Context) (int, error) {
	var count int

	err := r.store.View(func(data map[string]json.RawMessage) error {
		count = len(data)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("count activities: %w", err)
	}

	return count, nil
}

func decodeDetails(name string, raw json.RawMessage) (entities.ActivityDetails, error) {
	var details entities.ActivityDetails
	if err := json.Unmarshal(raw, &details); err != nil {
		return entities.ActivityDetails{}, fmt.Errorf("decode activity %q: %w", name, err)
	}
	return details, nil
}
