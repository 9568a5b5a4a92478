package contactrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/aays-store/backend/internal/service/models/contact"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoContactRepository struct {
	coll *mongo.Collection
}

func NewMongoContactRepository(db *mongo.Database) *MongoContactRepository {
	return &MongoContactRepository{
		coll: db.Collection("contacts"),
	}
}

func (r *MongoContactRepository) Insert(ctx context.Context, c contact.Contact) (contact.Contact, error) {
	c.CreatedAt = time.Now()

	res, err := r.coll.InsertOne(ctx, c)
	if err != nil {
		return contact.Contact{}, fmt.Errorf("failed to insert contact message: %w", err)
	}

	c.ID = res.InsertedID.(primitive.ObjectID)

	return c, nil
}

func (r *MongoContactRepository) List(ctx context.Context) ([]contact.Contact, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query contact messages: %w", err)
	}

	contacts := []contact.Contact{}
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contact messages: %w", err)
	}

	return contacts, nil
}
