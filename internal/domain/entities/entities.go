package entities

import "errors"

// Common errors
var (
	ErrActivityNotFound    = errors.New("activity not found")
	ErrParticipantNotFound = errors.New("participant not found")
	ErrAlreadySignedUp     = errors.New("student is already signed up")
	ErrNotSignedUp         = errors.New("student is not signed up for this activity")
	ErrNothingModified     = errors.New("update modified no records")
)

// Activity represents an extracurricular activity with its participant roster
type Activity struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ActivityDetails is the shape stored on disk and returned by the API, keyed
// externally by activity name
type ActivityDetails struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Details strips the name off an activity
func (a Activity) Details() ActivityDetails {
	return ActivityDetails{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    a.Participants,
	}
}

// WithName attaches a name to stored details
func (d ActivityDetails) WithName(name string) Activity {
	return Activity{
		Name:            name,
		Description:     d.Description,
		Schedule:        d.Schedule,
		MaxParticipants: d.MaxParticipants,
		Participants:    d.Participants,
	}
}

// HasParticipant reports whether email is already on the roster
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}
