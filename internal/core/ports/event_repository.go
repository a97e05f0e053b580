package ports

import (
	"context"

	"github.com/cookouthq/cookout-api/internal/core/domain"
)

// EventRepository defines persistence operations for events and attendance.
// Every read is scoped by the calling user: absence and lack of access are
// deliberately indistinguishable (both surface as ErrEventNotFound).
type EventRepository interface {
	// ListForUser returns the events the user attends or hosts.
	ListForUser(ctx context.Context, userID string) ([]domain.Event, error)

	// Create inserts the event and the host's attendee record.
	Create(ctx context.Context, event *domain.Event, host *domain.Attendee) (*domain.Event, error)

	// Get returns the event when userID is one of its attendees.
	Get(ctx context.Context, eventID, userID string) (*domain.Event, error)

	// Update replaces the mutable fields of the event when userID hosts it,
	// returning the previous state of the document.
	Update(ctx context.Context, eventID, userID string, event *domain.Event) (*domain.Event, error)

	// Delete removes the event and its attendance when userID hosts it,
	// returning the deleted event.
	Delete(ctx context.Context, eventID, userID string) (*domain.Event, error)

	// ListAttendees returns the attendees of an event the user belongs to.
	ListAttendees(ctx context.Context, eventID, userID string) ([]domain.Attendee, error)

	// AddAttendee inserts an attendee when userID hosts the event.
	AddAttendee(ctx context.Context, eventID, userID string, attendee *domain.Attendee) (*domain.Attendee, error)
}

// AddressRepository handles the address lookups referenced by events.
type AddressRepository interface {
	Get(ctx context.Context, addressID string) (*domain.Address, error)
	Create(ctx context.Context, address *domain.Address) (*domain.Address, error)
}

// InviteRepository persists email invitations.
type InviteRepository interface {
	Create(ctx context.Context, invite *domain.Invite) (*domain.Invite, error)
	ListForEvent(ctx context.Context, eventID string) ([]domain.Invite, error)
	// MarkSent transitions the invite to InviteSent.
	MarkSent(ctx context.Context, inviteID string) error
}
