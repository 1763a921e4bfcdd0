package event

import (
	"context"

	"github.com/javiermolinar/agenda/internal/dateutil"
)

// PreferenceTheme is the settings key of the persisted theme.
const PreferenceTheme = "theme"

// Repository defines the storage interface for events.
type Repository interface {
	// CreateEvent adds a new event and sets its ID.
	CreateEvent(ctx context.Context, e *Event) error

	// CreateEvents adds events in one transaction and sets their IDs.
	CreateEvents(ctx context.Context, events []*Event) error

	// GetEvent retrieves an event by ID. Returns ErrNotFound if it does not exist.
	GetEvent(ctx context.Context, id int64) (*Event, error)

	// UpdateEvent replaces the title and date of an existing event.
	// Returns ErrNotFound if it does not exist.
	UpdateEvent(ctx context.Context, e *Event) error

	// DeleteEvent removes an event. Returns ErrNotFound if it does not exist.
	DeleteEvent(ctx context.Context, id int64) error

	// ListEvents returns all events in insertion order.
	ListEvents(ctx context.Context) ([]*Event, error)

	// ListEventsByDateRange returns events dated within the range (inclusive), by date.
	ListEventsByDateRange(ctx context.Context, start, end dateutil.Date) ([]*Event, error)

	// Close releases any resources held by the repository.
	Close() error
}

// Preferences stores small key/value user settings such as the theme.
type Preferences interface {
	// Preference returns the stored value and whether it was set.
	Preference(ctx context.Context, key string) (string, bool, error)

	// SetPreference stores a value.
	SetPreference(ctx context.Context, key, value string) error

	// ClearPreference removes a value.
	ClearPreference(ctx context.Context, key string) error
}

// Store is a Repository that also keeps preferences.
type Store interface {
	Repository
	Preferences
}
