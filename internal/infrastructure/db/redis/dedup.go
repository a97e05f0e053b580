package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const dedupTTL = 24 * time.Hour

// InviteDedup suppresses repeat invitation deliveries backed by Redis.
// Key format: invite:<event_id>:<email>
type InviteDedup struct {
	client *redis.Client
}

// NewInviteDedup creates an InviteDedup wrapping the given Redis client.
func NewInviteDedup(client *redis.Client) *InviteDedup {
	return &InviteDedup{client: client}
}

// IsDuplicate reports whether an invite for this event/email pair has
// already been delivered inside the dedup window.
func (d *InviteDedup) IsDuplicate(ctx context.Context, eventID, email string) (bool, error) {
	n, err := d.client.Exists(ctx, d.key(eventID, email)).Result()
	if err != nil {
		return false, fmt.Errorf("dedup check: %w", err)
	}
	return n > 0, nil
}

// Mark records a delivery for this event/email pair (expires after dedupTTL).
func (d *InviteDedup) Mark(ctx context.Context, eventID, email string) error {
	return d.client.Set(ctx, d.key(eventID, email), "1", dedupTTL).Err()
}

func (d *InviteDedup) key(eventID, email string) string {
	return fmt.Sprintf("invite:%s:%s", eventID, email)
}
