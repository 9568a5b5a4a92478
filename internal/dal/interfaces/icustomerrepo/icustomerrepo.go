package icustomerrepo

import (
	"context"

	"github.com/aays-store/backend/internal/service/models/customer"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ICustomerRepository defines the interface for customer persistence.
type ICustomerRepository interface {
	// UpsertWithOrder updates the customer's name and email and appends the
	// order reference, creating the customer on first contact.
	UpsertWithOrder(ctx context.Context, c customer.Customer, orderID primitive.ObjectID) error

	// GetByClerkID retrieves a customer by external auth identity.
	GetByClerkID(ctx context.Context, clerkID string) (*customer.Customer, error)

	// List returns all customers.
	List(ctx context.Context) ([]customer.Customer, error)

	// ListByClerkIDs returns the customers matching the given identities.
	ListByClerkIDs(ctx context.Context, clerkIDs []string) ([]customer.Customer, error)
}
