package ports

import (
	"context"

	"github.com/mergington/activities/internal/domain/entities"
)

// ActivityService defines the application-level activity operations exposed
// over HTTP.
type ActivityService interface {
	// List returns every activity keyed by name, with the name stripped from
	// the values.
	List(ctx context.Context) (map[string]entities.ActivityDetails, error)

	// Signup adds email to the named activity's roster and returns a
	// confirmation message.
	Signup(ctx context.Context, name, email string) (string, error)

	// Unregister removes email from the named activity's roster and returns a
	// confirmation message.
	Unregister(ctx context.Context, name, email string) (string, error)

	// Seed loads the initial catalog when the store is empty and returns how
	// many activities were inserted.
	Seed(ctx context.Context) (int, error)
}
