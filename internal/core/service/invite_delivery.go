package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/cookouthq/cookout-api/internal/core/domain"
	"github.com/cookouthq/cookout-api/internal/core/ports"
)

// InviteDedup abstracts the duplicate-suppression store (Redis).
type InviteDedup interface {
	// IsDuplicate reports whether an invite for the same event/email pair
	// was delivered recently.
	IsDuplicate(ctx context.Context, eventID, email string) (bool, error)
	Mark(ctx context.Context, eventID, email string) error
}

type inviteDeliverer struct {
	invites ports.InviteRepository
	dedup   InviteDedup
	log     zerolog.Logger
}

// NewInviteDeliverer returns the worker-side half of the invite pipeline.
func NewInviteDeliverer(invites ports.InviteRepository, dedup InviteDedup, log zerolog.Logger) ports.InviteDelivery {
	return &inviteDeliverer{invites: invites, dedup: dedup, log: log}
}

// Deliver sends one pending invitation. Re-invites of the same event/email
// pair inside the dedup window are silently skipped and stay pending.
func (d *inviteDeliverer) Deliver(ctx context.Context, invite domain.Invite) error {
	isDup, err := d.dedup.IsDuplicate(ctx, invite.EventID, invite.Email)
	if err != nil {
		d.log.Warn().Err(err).Str("invite_id", invite.ID).Msg("dedup check failed, delivering anyway")
	} else if isDup {
		d.log.Debug().Str("event_id", invite.EventID).Str("email", invite.Email).Msg("duplicate invite skipped")
		return nil
	}

	if markErr := d.dedup.Mark(ctx, invite.EventID, invite.Email); markErr != nil {
		d.log.Warn().Err(markErr).Str("invite_id", invite.ID).Msg("failed to set dedup key")
	}

	if err := d.invites.MarkSent(ctx, invite.ID); err != nil {
		return fmt.Errorf("deliver invite: %w", err)
	}
	return nil
}
