package ports

import (
	"context"

	"github.com/mergington/activities/internal/domain/entities"
)

// UpdateResult reports how many records a roster update touched. A count of
// zero means the activity disappeared between lookup and update.
type UpdateResult struct {
	ModifiedCount int
}

// ActivityRepository defines the interface for activity data operations
type ActivityRepository interface {
	// List returns every stored activity with its name attached, sorted by name.
	List(ctx context.Context) ([]entities.Activity, error)

	// Get looks an activity up by exact name. Returns
	// entities.ErrActivityNotFound when the name is unknown.
	Get(ctx context.Context, name string) (*entities.Activity, error)

	// Put stores an activity keyed by its name, overwriting any existing entry.
	Put(ctx context.Context, activity entities.Activity) error

	// AppendParticipant appends email to the activity's roster. A missing
	// roster field is created first. Returns a zero ModifiedCount, without an
	// error, when the activity does not exist.
	AppendParticipant(ctx context.Context, name, email string) (UpdateResult, error)

	// RemoveParticipant removes the first exact match of email from the
	// roster. Returns a zero ModifiedCount when the activity does not exist
	// and entities.ErrParticipantNotFound when the email is not on the roster.
	RemoveParticipant(ctx context.Context, name, email string) (UpdateResult, error)

	// Count returns the number of stored activities.
	Count(ctx context.Context) (int, error)
}
