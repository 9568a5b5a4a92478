package outboxrepo

import (
	"context"
	"fmt"
	"time"

	"github.com/aays-store/backend/internal/service/models/outbox"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoOutboxRepository struct {
	coll *mongo.Collection
}

func NewMongoOutboxRepository(db *mongo.Database) *MongoOutboxRepository {
	return &MongoOutboxRepository{
		coll: db.Collection("outbox"),
	}
}

func (r *MongoOutboxRepository) Insert(ctx context.Context, msg outbox.Message) error {
	msg.CreatedAt = time.Now()
	msg.NextRetryAt = msg.CreatedAt

	if _, err := r.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to insert outbox message: %w", err)
	}

	return nil
}

func (r *MongoOutboxRepository) GetPendingMessages(ctx context.Context, limit int) ([]outbox.Message, error) {
	cursor, err := r.coll.Find(
		ctx,
		bson.M{"nextRetryAt": bson.M{"$lte": time.Now()}},
		options.Find().
			SetSort(bson.D{{Key: "createdAt", Value: 1}}).
			SetLimit(int64(limit)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query outbox: %w", err)
	}

	messages := []outbox.Message{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode outbox messages: %w", err)
	}

	return messages, nil
}

func (r *MongoOutboxRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	if _, err := r.coll.DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return fmt.Errorf("failed to delete outbox message: %w", err)
	}

	return nil
}

func (r *MongoOutboxRepository) UpdateRetry(
	ctx context.Context,
	id primitive.ObjectID,
	retryCount int,
	lastError string,
	nextRetryAt time.Time,
) error {
	_, err := r.coll.UpdateOne(
		ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"retryCount":  retryCount,
			"lastError":   lastError,
			"nextRetryAt": nextRetryAt,
		}},
	)
	if err != nil {
		return fmt.Errorf("failed to update outbox retry info: %w", err)
	}

	return nil
}
