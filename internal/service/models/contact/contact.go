package contact

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Contact is a storefront contact-form message. It has no relationships.
type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name"          json:"name"`
	Email     string             `bson:"email"         json:"email"`
	Message   string             `bson:"message"       json:"message"`
	CreatedAt time.Time          `bson:"createdAt"     json:"createdAt"`
}
