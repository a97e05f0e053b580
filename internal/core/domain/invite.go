package domain

import "time"

// InviteStatus is the delivery state of an invitation.
type InviteStatus string

const (
	InvitePending InviteStatus = "pending"
	InviteSent    InviteStatus = "sent"
)

// Invite is an email invitation to an event. The email is stored lowercased
// so the same address cannot be invited twice under different casings.
type Invite struct {
	ID        string       `json:"id" bson:"_id,omitempty"`
	EventID   string       `json:"event_id" bson:"event_id"`
	Email     string       `json:"email" bson:"email"`
	Role      string       `json:"role" bson:"role"`
	Token     string       `json:"token" bson:"token"`
	Status    InviteStatus `json:"status" bson:"status"`
	CreatedAt time.Time    `json:"created_at" bson:"created_at"`
}
