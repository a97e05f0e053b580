package ports

import (
	"context"

	"github.com/cookouthq/cookout-api/internal/core/domain"
)

// InviteInput is the DTO passed from the transport layer to InviteService.
type InviteInput struct {
	EventID string
	UserID  string // inviting user; must host the event
	Email   string
	Role    string
}

// InviteService accepts invitations and hands them to the delivery pipeline.
type InviteService interface {
	// Invite persists a pending invitation and enqueues its delivery.
	Invite(ctx context.Context, in InviteInput) (*domain.Invite, error)
	ListInvites(ctx context.Context, eventID, userID string) ([]domain.Invite, error)
}

// InviteDelivery is implemented by the async worker side of the pipeline.
type InviteDelivery interface {
	// Deliver performs the delivery of one pending invite.
	Deliver(ctx context.Context, invite domain.Invite) error
}
