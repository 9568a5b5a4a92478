package ordersvc

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/aays-store/backend/internal/dal/interfaces/icustomerrepo"
	"github.com/aays-store/backend/internal/dal/interfaces/iorderrepo"
	"github.com/aays-store/backend/internal/dal/interfaces/ioutboxrepo"
	"github.com/aays-store/backend/internal/dal/interfaces/iproductrepo"
	"github.com/aays-store/backend/internal/errs"
	"github.com/aays-store/backend/internal/service/models/customer"
	"github.com/aays-store/backend/internal/service/models/order"
	"github.com/aays-store/backend/internal/service/models/outbox"
	"github.com/aays-store/backend/internal/service/models/product"
	"github.com/google/uuid"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// OrderService manages the order lifecycle: creation, status transitions and
// the customer index kept alongside.
type OrderService struct {
	tx                 transactor
	orderRepo          iorderrepo.IOrderRepository
	customerRepo       icustomerrepo.ICustomerRepository
	productRepo        iproductrepo.IProductRepository
	outboxRepo         ioutboxrepo.IOutboxRepository
	ordersExchange     string
	enforceProgression bool
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{
		ordersExchange:     viper.GetString("rabbitmq.orders_exchange"),
		enforceProgression: viper.GetBool("orders.enforce_status_progression"),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithTransactor(tx transactor) option {
	return func(s *OrderService) { s.tx = tx }
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(repo iorderrepo.IOrderRepository) option {
	return func(s *OrderService) { s.orderRepo = repo }
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithCustomerRepository(repo icustomerrepo.ICustomerRepository) option {
	return func(s *OrderService) { s.customerRepo = repo }
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithProductRepository(repo iproductrepo.IProductRepository) option {
	return func(s *OrderService) { s.productRepo = repo }
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithOutboxRepository(repo ioutboxrepo.IOutboxRepository) option {
	return func(s *OrderService) { s.outboxRepo = repo }
}

// CustomerInfo identifies the purchaser by external auth identity.
type CustomerInfo struct {
	ClerkID string
	Name    string
	Email   string
}

// CreateOrderModel carries everything needed to materialize an order.
type CreateOrderModel struct {
	Customer        CustomerInfo
	Products        []order.LineItem
	TotalAmount     float64
	ShippingAddress order.ShippingAddress
	ShippingRate    string
}

func (m *CreateOrderModel) validate() error {
	if m.Customer.ClerkID == "" {
		return errs.Validation("customer identity is required")
	}
	if len(m.Products) == 0 {
		return errs.Validation("at least one line item is required")
	}
	if m.TotalAmount <= 0 {
		return errs.Validation("total amount is required")
	}
	if !m.ShippingAddress.Complete() {
		return errs.Validation("shipping address must include street, city, state, postal code and country")
	}
	if m.ShippingRate == "" {
		return errs.Validation("shipping rate is required")
	}

	return nil
}

// CreateOrder persists a new order with status Ordered, stamps the ordered
// timestamp, upserts the customer with the new order reference and records
// an order.created event — all in one transaction.
func (s *OrderService) CreateOrder(ctx context.Context, model CreateOrderModel) (*order.Order, error) {
	if err := model.validate(); err != nil {
		return nil, err
	}

	now := time.Now()
	newOrder := order.Order{
		OrderID:          newOrderID(now),
		CustomerClerkID:  model.Customer.ClerkID,
		Products:         model.Products,
		ShippingAddress:  model.ShippingAddress,
		ShippingRate:     model.ShippingRate,
		TotalAmount:      model.TotalAmount,
		Status:           order.StatusOrdered,
		StatusTimestamps: order.StatusTimestamps{Ordered: &now},
		CreatedAt:        now,
	}

	err := s.tx.WithTransaction(ctx, func(txCtx context.Context) error {
		inserted, err := s.orderRepo.Insert(txCtx, newOrder)
		if err != nil {
			return err
		}
		newOrder = inserted

		cust := customer.Customer{
			ClerkID: model.Customer.ClerkID,
			Name:    model.Customer.Name,
			Email:   model.Customer.Email,
		}
		if err := s.customerRepo.UpsertWithOrder(txCtx, cust, inserted.ID); err != nil {
			return err
		}

		payload, err := json.Marshal(inserted)
		if err != nil {
			return fmt.Errorf("failed to marshal order event: %w", err)
		}

		return s.outboxRepo.Insert(txCtx, outbox.Message{
			MessageID:    uuid.NewString(),
			ExchangeName: s.ordersExchange,
			RoutingKey:   "order.created",
			ContentType:  "application/json",
			Payload:      payload,
		})
	})
	if err != nil {
		return nil, err
	}

	return &newOrder, nil
}

// AdvanceStatus sets the order's status and stamps the timestamp field for
// the new status. The ordered timestamp is never re-set. Repeating a
// transition refreshes only that status's timestamp.
func (s *OrderService) AdvanceStatus(ctx context.Context, orderID, newStatus string) (*order.Order, error) {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, errs.Validation("invalid order id %q", orderID)
	}

	status, err := order.ParseStatus(newStatus)
	if err != nil {
		return nil, errs.Validation("unrecognized order status %q", newStatus)
	}

	if s.enforceProgression {
		current, err := s.orderRepo.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		if status.Rank() < current.Status.Rank() {
			return nil, errs.Validation(
				"cannot move order from %q back to %q", current.Status, status,
			)
		}
	}

	return s.orderRepo.AdvanceStatus(ctx, id, status, time.Now())
}

// Summary is an admin listing row: the order joined with its customer name.
type Summary struct {
	ID          string    `json:"_id"`
	Customer    string    `json:"customer"`
	Products    int       `json:"products"`
	TotalAmount float64   `json:"totalAmount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListOrders returns all orders, newest first, with customer names resolved.
func (s *OrderService) ListOrders(ctx context.Context) ([]Summary, error) {
	orders, err := s.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	clerkIDs := make([]string, 0, len(orders))
	seen := map[string]struct{}{}
	for _, o := range orders {
		if _, ok := seen[o.CustomerClerkID]; !ok && o.CustomerClerkID != "" {
			seen[o.CustomerClerkID] = struct{}{}
			clerkIDs = append(clerkIDs, o.CustomerClerkID)
		}
	}

	customers, err := s.customerRepo.ListByClerkIDs(ctx, clerkIDs)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(customers))
	for _, c := range customers {
		names[c.ClerkID] = c.Name
	}

	summaries := make([]Summary, 0, len(orders))
	for _, o := range orders {
		name, ok := names[o.CustomerClerkID]
		if !ok || name == "" {
			name = "Unknown"
		}
		summaries = append(summaries, Summary{
			ID:          o.ID.Hex(),
			Customer:    name,
			Products:    len(o.Products),
			TotalAmount: o.TotalAmount,
			CreatedAt:   o.CreatedAt,
		})
	}

	return summaries, nil
}

// ListCustomers returns all customers for the admin dashboard.
func (s *OrderService) ListCustomers(ctx context.Context) ([]customer.Customer, error) {
	return s.customerRepo.List(ctx)
}

// PopulatedItem is a line item with the referenced product document in
// place of its id.
type PopulatedItem struct {
	Product  product.Product `json:"product"`
	Color    string          `json:"color"`
	Size     string          `json:"size"`
	Quantity int             `json:"quantity"`
}

// Details is an order with its line-item products populated and its
// customer attached.
type Details struct {
	Order    order.Order        `json:"orderDetails"`
	Items    []PopulatedItem    `json:"items"`
	Customer *customer.Customer `json:"customer,omitempty"`
}

// GetOrder retrieves one order with populated products and its customer.
func (s *OrderService) GetOrder(ctx context.Context, orderID string) (*Details, error) {
	id, err := primitive.ObjectIDFromHex(orderID)
	if err != nil {
		return nil, errs.Validation("invalid order id %q", orderID)
	}

	o, err := s.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	items, err := s.populateItems(ctx, *o)
	if err != nil {
		return nil, err
	}

	details := &Details{Order: *o, Items: items}

	cust, err := s.customerRepo.GetByClerkID(ctx, o.CustomerClerkID)
	if err == nil {
		details.Customer = cust
	} else if errs.KindOf(err) != errs.KindNotFound {
		return nil, err
	}

	return details, nil
}

// ListCustomerOrders returns a customer's orders, newest first, with
// populated products.
func (s *OrderService) ListCustomerOrders(ctx context.Context, clerkID string) ([]Details, error) {
	orders, err := s.orderRepo.ListByCustomer(ctx, clerkID)
	if err != nil {
		return nil, err
	}

	details := make([]Details, 0, len(orders))
	for _, o := range orders {
		items, err := s.populateItems(ctx, o)
		if err != nil {
			return nil, err
		}
		details = append(details, Details{Order: o, Items: items})
	}

	return details, nil
}

func (s *OrderService) populateItems(ctx context.Context, o order.Order) ([]PopulatedItem, error) {
	ids := make([]primitive.ObjectID, 0, len(o.Products))
	for _, item := range o.Products {
		ids = append(ids, item.Product)
	}

	products, err := s.productRepo.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]product.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	items := make([]PopulatedItem, 0, len(o.Products))
	for _, item := range o.Products {
		items = append(items, PopulatedItem{
			Product:  byID[item.Product],
			Color:    item.Color,
			Size:     item.Size,
			Quantity: item.Quantity,
		})
	}

	return items, nil
}

// newOrderID builds a collision-resistant external order identifier from
// the creation time and a random suffix.
func newOrderID(now time.Time) string {
	return fmt.Sprintf("ORD-%d-%03d", now.UnixMilli(), rand.IntN(1000))
}
