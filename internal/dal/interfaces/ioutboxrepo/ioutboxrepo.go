package ioutboxrepo

import (
	"context"
	"time"

	"github.com/aays-store/backend/internal/service/models/outbox"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IOutboxRepository defines the interface for outbox operations.
type IOutboxRepository interface {
	// Insert adds a new message to the outbox.
	Insert(ctx context.Context, msg outbox.Message) error

	// GetPendingMessages retrieves messages that are ready to publish.
	GetPendingMessages(ctx context.Context, limit int) ([]outbox.Message, error)

	// Delete removes a message from the outbox after successful delivery.
	Delete(ctx context.Context, id primitive.ObjectID) error

	// UpdateRetry updates retry count and error information.
	UpdateRetry(
		ctx context.Context,
		id primitive.ObjectID,
		retryCount int,
		lastError string,
		nextRetryAt time.Time,
	) error
}
