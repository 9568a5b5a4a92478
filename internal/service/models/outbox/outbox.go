package outbox

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is an event stored alongside the write that produced it, waiting
// to be published to RabbitMQ.
type Message struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"       json:"_id"`
	MessageID    string             `bson:"messageId"           json:"messageId"`
	ExchangeName string             `bson:"exchangeName"        json:"exchangeName"`
	RoutingKey   string             `bson:"routingKey"          json:"routingKey"`
	ContentType  string             `bson:"contentType"         json:"contentType"`
	Payload      []byte             `bson:"payload"             json:"payload"`
	RetryCount   int                `bson:"retryCount"          json:"retryCount"`
	LastError    string             `bson:"lastError,omitempty" json:"lastError,omitempty"`
	NextRetryAt  time.Time          `bson:"nextRetryAt"         json:"nextRetryAt"`
	CreatedAt    time.Time          `bson:"createdAt"           json:"createdAt"`
}
