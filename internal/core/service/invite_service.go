package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cookouthq/cookout-api/internal/core/domain"
	"github.com/cookouthq/cookout-api/internal/core/ports"
)

// InviteQueue is the interface the service uses to hand invites to the
// async delivery pipeline.
type InviteQueue interface {
	Enqueue(invite domain.Invite)
}

type inviteService struct {
	events  ports.EventRepository
	invites ports.InviteRepository
	queue   InviteQueue
	log     zerolog.Logger
}

// NewInviteService returns an InviteService backed by the given queue.
func NewInviteService(events ports.EventRepository, invites ports.InviteRepository, queue InviteQueue, log zerolog.Logger) ports.InviteService {
	return &inviteService{events: events, invites: invites, queue: queue, log: log}
}

// Invite persists a pending invitation for an event the user hosts and
// enqueues its delivery. The invitee email is lowercased before storage.
func (s *inviteService) Invite(ctx context.Context, in ports.InviteInput) (*domain.Invite, error) {
	event, err := s.events.Get(ctx, in.EventID, in.UserID)
	if err != nil {
		return nil, err
	}
	// Conflate "not the host" with "no such event", like every other scoped read.
	if event.HostID != in.UserID {
		return nil, domain.ErrEventNotFound
	}

	invite := &domain.Invite{
		EventID:   in.EventID,
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Role:      in.Role,
		Token:     uuid.NewString(),
		Status:    domain.InvitePending,
		CreatedAt: time.Now().UTC(),
	}

	created, err := s.invites.Create(ctx, invite)
	if err != nil {
		return nil, fmt.Errorf("create invite: %w", err)
	}

	s.queue.Enqueue(*created)
	s.log.Info().Str("event_id", in.EventID).Str("email", created.Email).Msg("invite queued")
	return created, nil
}

func (s *inviteService) ListInvites(ctx context.Context, eventID, userID string) ([]domain.Invite, error) {
	if _, err := s.events.Get(ctx, eventID, userID); err != nil {
		return nil, err
	}
	return s.invites.ListForEvent(ctx, eventID)
}
