package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/cookouthq/cookout-api/internal/core/domain"
)

const collectionAddresses = "addresses"

// AddressRepository is the MongoDB-backed implementation of ports.AddressRepository.
type AddressRepository struct {
	col *mongo.Collection
}

func NewAddressRepository(db *mongo.Database) *AddressRepository {
	return &AddressRepository{col: db.Collection(collectionAddresses)}
}

type addressDoc struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	StreetAddress string             `bson:"street_address"`
	City          string             `bson:"city"`
	State         string             `bson:"state"`
	Zip           string             `bson:"zip"`
}

func (d addressDoc) toDomain() *domain.Address {
	return &domain.Address{
		ID:            d.ID.Hex(),
		StreetAddress: d.StreetAddress,
		City:          d.City,
		State:         d.State,
		Zip:           d.Zip,
	}
}

func (r *AddressRepository) Get(ctx context.Context, addressID string) (*domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, err := primitive.ObjectIDFromHex(addressID)
	if err != nil {
		return nil, domain.ErrAddressNotFound
	}

	var doc addressDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrAddressNotFound
		}
		return nil, fmt.Errorf("find address: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *AddressRepository) Create(ctx context.Context, address *domain.Address) (*domain.Address, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := addressDoc{
		StreetAddress: address.StreetAddress,
		City:          address.City,
		State:         address.State,
		Zip:           address.Zip,
	}
	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert address: %w", err)
	}

	created := *address
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}
