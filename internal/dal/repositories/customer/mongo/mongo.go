package customerrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aays-store/backend/internal/errs"
	"github.com/aays-store/backend/internal/service/models/customer"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoCustomerRepository struct {
	coll *mongo.Collection
}

func NewMongoCustomerRepository(db *mongo.Database) *MongoCustomerRepository {
	return &MongoCustomerRepository{
		coll: db.Collection("customers"),
	}
}

// UpsertWithOrder refreshes name and email and appends the order reference
// in one update, creating the customer when the identity is new.
func (r *MongoCustomerRepository) UpsertWithOrder(
	ctx context.Context,
	c customer.Customer,
	orderID primitive.ObjectID,
) error {
	now := time.Now()

	_, err := r.coll.UpdateOne(
		ctx,
		bson.M{"clerkId": c.ClerkID},
		bson.M{
			"$set": bson.M{
				"name":      c.Name,
				"email":     c.Email,
				"updatedAt": now,
			},
			"$push":        bson.M{"orders": orderID},
			"$setOnInsert": bson.M{"createdAt": now},
		},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("failed to upsert customer: %w", err)
	}

	return nil
}

func (r *MongoCustomerRepository) GetByClerkID(ctx context.Context, clerkID string) (*customer.Customer, error) {
	var c customer.Customer
	err := r.coll.FindOne(ctx, bson.M{"clerkId": clerkID}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, errs.NotFound("customer %s not found", clerkID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &c, nil
}

func (r *MongoCustomerRepository) List(ctx context.Context) ([]customer.Customer, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoCustomerRepository) ListByClerkIDs(ctx context.Context, clerkIDs []string) ([]customer.Customer, error) {
	if len(clerkIDs) == 0 {
		return []customer.Customer{}, nil
	}

	return r.find(ctx, bson.M{"clerkId": bson.M{"$in": clerkIDs}})
}

func (r *MongoCustomerRepository) find(ctx context.Context, filter bson.M) ([]customer.Customer, error) {
	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}

	customers := []customer.Customer{}
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("failed to decode customers: %w", err)
	}

	return customers, nil
}
