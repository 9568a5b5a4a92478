package webhookeventrepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoWebhookEventRepository struct {
	coll *mongo.Collection
}

func NewMongoWebhookEventRepository(db *mongo.Database) *MongoWebhookEventRepository {
	return &MongoWebhookEventRepository{
		coll: db.Collection("webhook_events"),
	}
}

// MarkProcessed inserts the event id, relying on the unique index to detect
// retried deliveries.
func (r *MongoWebhookEventRepository) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	_, err := r.coll.InsertOne(ctx, bson.M{
		"eventId":     eventID,
		"processedAt": time.Now(),
	})
	if mongo.IsDuplicateKeyError(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to record webhook event: %w", err)
	}

	return true, nil
}

func (r *MongoWebhookEventRepository) Unmark(ctx context.Context, eventID string) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"eventId": eventID}); err != nil {
		return fmt.Errorf("failed to remove webhook event record: %w", err)
	}

	return nil
}
