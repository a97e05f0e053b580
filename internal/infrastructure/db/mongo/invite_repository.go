package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/cookouthq/cookout-api/internal/core/domain"
)

const collectionInvites = "invites"

// InviteRepository is the MongoDB-backed implementation of ports.InviteRepository.
type InviteRepository struct {
	col *mongo.Collection
}

func NewInviteRepository(db *mongo.Database) *InviteRepository {
	return &InviteRepository{col: db.Collection(collectionInvites)}
}

type inviteDoc struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty"`
	EventID   string              `bson:"event_id"`
	Email     string              `bson:"email"`
	Role      string              `bson:"role"`
	Token     string              `bson:"token"`
	Status    domain.InviteStatus `bson:"status"`
	CreatedAt time.Time           `bson:"created_at"`
}

func (d inviteDoc) toDomain() domain.Invite {
	return domain.Invite{
		ID:        d.ID.Hex(),
		EventID:   d.EventID,
		Email:     d.Email,
		Role:      d.Role,
		Token:     d.Token,
		Status:    d.Status,
		CreatedAt: d.CreatedAt,
	}
}

func (r *InviteRepository) Create(ctx context.Context, invite *domain.Invite) (*domain.Invite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := inviteDoc{
		EventID:   invite.EventID,
		Email:     invite.Email,
		Role:      invite.Role,
		Token:     invite.Token,
		Status:    invite.Status,
		CreatedAt: invite.CreatedAt,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEntry
		}
		return nil, fmt.Errorf("insert invite: %w", err)
	}

	created := *invite
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *InviteRepository) ListForEvent(ctx context.Context, eventID string) ([]domain.Invite, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{"event_id": eventID})
	if err != nil {
		return nil, fmt.Errorf("list invites: %w", err)
	}
	var docs []inviteDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode invites: %w", err)
	}

	invites := make([]domain.Invite, 0, len(docs))
	for _, doc := range docs {
		invites = append(invites, doc.toDomain())
	}
	return invites, nil
}

func (r *InviteRepository) MarkSent(ctx context.Context, inviteID string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(inviteID)
	if err != nil {
		return domain.ErrInviteNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": domain.InviteSent}})
	if err != nil {
		return fmt.Errorf("mark invite sent: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrInviteNotFound
	}
	return nil
}

// EnsureIndexes enforces one invite per event/email pair.
func (r *InviteRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "event_id", Value: 1}, {Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
