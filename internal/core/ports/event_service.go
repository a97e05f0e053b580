package ports

import (
	"context"

	"github.com/cookouthq/cookout-api/internal/core/domain"
)

// EventUpdate is returned by UpdateEvent so the transport layer can render
// the {old, new} pair the update endpoint promises.
type EventUpdate struct {
	Old *domain.Event
	New *domain.Event
}

// EventService defines use-case operations for events, attendees, and
// addresses. All operations act on behalf of the given user.
type EventService interface {
	ListEvents(ctx context.Context, userID string) ([]domain.Event, error)
	CreateEvent(ctx context.Context, user *domain.User, event *domain.Event) (*domain.Event, error)
	GetEvent(ctx context.Context, eventID, userID string) (*domain.Event, error)
	UpdateEvent(ctx context.Context, eventID, userID string, event *domain.Event) (*EventUpdate, error)
	DeleteEvent(ctx context.Context, eventID, userID string) (*domain.Event, error)

	ListAttendees(ctx context.Context, eventID, userID string) ([]domain.Attendee, error)
	AddAttendee(ctx context.Context, eventID, userID string, attendee *domain.Attendee) (*domain.Attendee, error)

	GetAddress(ctx context.Context, addressID string) (*domain.Address, error)
	CreateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error)
}
