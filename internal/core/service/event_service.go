package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/cookouthq/cookout-api/internal/core/domain"
	"github.com/cookouthq/cookout-api/internal/core/ports"
)

type eventService struct {
	events    ports.EventRepository
	addresses ports.AddressRepository
	log       zerolog.Logger
}

// NewEventService returns an EventService over the given repositories.
func NewEventService(events ports.EventRepository, addresses ports.AddressRepository, log zerolog.Logger) ports.EventService {
	return &eventService{events: events, addresses: addresses, log: log}
}

func (s *eventService) ListEvents(ctx context.Context, userID string) ([]domain.Event, error) {
	events, err := s.events.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}

// CreateEvent inserts the event together with the creator's host attendance
// record, so the event immediately shows up in the creator's listing.
func (s *eventService) CreateEvent(ctx context.Context, user *domain.User, event *domain.Event) (*domain.Event, error) {
	event.HostID = user.ID
	event.CreatedAt = time.Now().UTC()

	host := &domain.Attendee{
		UserID:      user.ID,
		IsHost:      true,
		IsAttending: true,
	}

	created, err := s.events.Create(ctx, event, host)
	if err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.log.Info().Str("event_id", created.ID).Str("host_id", user.ID).Msg("event created")
	return created, nil
}

func (s *eventService) GetEvent(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	return s.events.Get(ctx, eventID, userID)
}

// UpdateEvent replaces the event when the user hosts it and returns both the
// previous and the updated state.
func (s *eventService) UpdateEvent(ctx context.Context, eventID, userID string, event *domain.Event) (*ports.EventUpdate, error) {
	old, err := s.events.Update(ctx, eventID, userID, event)
	if err != nil {
		return nil, err
	}
	event.ID = eventID
	event.HostID = old.HostID
	event.CreatedAt = old.CreatedAt
	return &ports.EventUpdate{Old: old, New: event}, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, eventID, userID string) (*domain.Event, error) {
	deleted, err := s.events.Delete(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("event_id", eventID).Str("user_id", userID).Msg("event deleted")
	return deleted, nil
}

func (s *eventService) ListAttendees(ctx context.Context, eventID, userID string) ([]domain.Attendee, error) {
	attendees, err := s.events.ListAttendees(ctx, eventID, userID)
	if err != nil {
		return nil, err
	}
	// An event cannot exist without at least its host row; an empty list
	// means the event is invisible to this user.
	if len(attendees) == 0 {
		return nil, domain.ErrEventNotFound
	}
	return attendees, nil
}

func (s *eventService) AddAttendee(ctx context.Context, eventID, userID string, attendee *domain.Attendee) (*domain.Attendee, error) {
	attendee.EventID = eventID
	return s.events.AddAttendee(ctx, eventID, userID, attendee)
}

func (s *eventService) GetAddress(ctx context.Context, addressID string) (*domain.Address, error) {
	return s.addresses.Get(ctx, addressID)
}

func (s *eventService) CreateAddress(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	created, err := s.addresses.Create(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("create address: %w", err)
	}
	return created, nil
}
