package iorderrepo

import (
	"context"
	"time"

	"github.com/aays-store/backend/internal/service/models/order"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// IOrderRepository defines the interface for order persistence.
type IOrderRepository interface {
	// Insert persists a new order and returns it with its database id set.
	Insert(ctx context.Context, o order.Order) (order.Order, error)

	// GetByID retrieves an order by its database id.
	GetByID(ctx context.Context, id primitive.ObjectID) (*order.Order, error)

	// List returns all orders, newest first.
	List(ctx context.Context) ([]order.Order, error)

	// ListByCustomer returns a customer's orders, newest first.
	ListByCustomer(ctx context.Context, clerkID string) ([]order.Order, error)

	// AdvanceStatus sets the status and stamps its timestamp field. The
	// ordered timestamp is never touched here.
	AdvanceStatus(
		ctx context.Context,
		id primitive.ObjectID,
		status order.Status,
		at time.Time,
	) (*order.Order, error)
}
