package webhooksvc

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/aays-store/backend/internal/dal/interfaces/iwebhookeventrepo"
	"github.com/aays-store/backend/internal/errs"
	"github.com/aays-store/backend/internal/service/models/order"
	"github.com/aays-store/backend/internal/service/services/ordersvc"
	"github.com/spf13/viper"
	"github.com/stripe/stripe-go/v80"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// eventVerifier validates the signature over the raw request body. This is
// the single integrity gate protecting order creation from forged requests.
type eventVerifier interface {
	Verify(payload []byte, sigHeader string) (stripe.Event, error)
}

// sessionFetcher re-fetches the full session; the webhook payload is
// summarized and line items require an expansion fetch.
type sessionFetcher interface {
	Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
}

type orderCreator interface {
	CreateOrder(ctx context.Context, model ordersvc.CreateOrderModel) (*order.Order, error)
}

// WebhookService materializes orders from verified checkout completions.
type WebhookService struct {
	verifier    eventVerifier
	sessions    sessionFetcher
	orders      orderCreator
	eventRepo   iwebhookeventrepo.IWebhookEventRepository
	dedupEvents bool
}

// option is a function that configures the WebhookService.
type option func(*WebhookService)

// MustNewWebhookService creates a new WebhookService.
func MustNewWebhookService(opts ...option) *WebhookService {
	s := &WebhookService{
		dedupEvents: viper.GetBool("webhooks.dedup_events"),
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithEventVerifier(verifier eventVerifier) option {
	return func(s *WebhookService) { s.verifier = verifier }
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithSessionFetcher(sessions sessionFetcher) option {
	return func(s *WebhookService) { s.sessions = sessions }
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderCreator(orders orderCreator) option {
	return func(s *WebhookService) { s.orders = orders }
}

//goland:noinspection GoExportedFuncWithUnexportedType
func WithEventRepository(repo iwebhookeventrepo.IWebhookEventRepository) option {
	return func(s *WebhookService) { s.eventRepo = repo }
}

// HandleEvent verifies the signed event and, for a completed checkout
// session, creates the order and upserts the customer. Events of any other
// type are acknowledged without side effects.
func (s *WebhookService) HandleEvent(ctx context.Context, payload []byte, sigHeader string) error {
	event, err := s.verifier.Verify(payload, sigHeader)
	if err != nil {
		return errs.Signature(err)
	}

	if event.Type != "checkout.session.completed" {
		return nil
	}

	var summary stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &summary); err != nil {
		return errs.Internal("failed to decode checkout session event", err)
	}

	if s.dedupEvents {
		first, err := s.eventRepo.MarkProcessed(ctx, event.ID)
		if err != nil {
			return err
		}
		if !first {
			slog.Info("Skipping retried webhook delivery", "event_id", event.ID)

			return nil
		}
	}

	if err := s.fulfill(ctx, summary.ID); err != nil {
		if s.dedupEvents {
			// Let the provider redeliver a failed fulfillment.
			if unmarkErr := s.eventRepo.Unmark(ctx, event.ID); unmarkErr != nil {
				slog.Error("Failed to release webhook event record", "event_id", event.ID, "error", unmarkErr)
			}
		}

		return err
	}

	return nil
}

func (s *WebhookService) fulfill(ctx context.Context, sessionID string) error {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("line_items.data.price.product")

	session, err := s.sessions.Get(sessionID, params)
	if err != nil {
		return errs.Internal("failed to retrieve checkout session", err)
	}

	address, err := extractAddress(session)
	if err != nil {
		return err
	}

	items, err := extractLineItems(session)
	if err != nil {
		return err
	}

	cust := ordersvc.CustomerInfo{ClerkID: session.ClientReferenceID}
	if session.CustomerDetails != nil {
		cust.Name = session.CustomerDetails.Name
		cust.Email = session.CustomerDetails.Email
	}

	shippingRate := "Standard"
	if session.ShippingCost != nil && session.ShippingCost.ShippingRate != nil {
		shippingRate = session.ShippingCost.ShippingRate.ID
	}

	created, err := s.orders.CreateOrder(ctx, ordersvc.CreateOrderModel{
		Customer:        cust,
		Products:        items,
		TotalAmount:     float64(session.AmountTotal) / 100,
		ShippingAddress: address,
		ShippingRate:    shippingRate,
	})
	if err != nil {
		return err
	}

	slog.Info("Order fulfilled from checkout session",
		"order_id", created.OrderID,
		"session_id", sessionID,
	)

	return nil
}

// extractAddress validates the shipping address as a whole; a partial
// address is never persisted.
func extractAddress(session *stripe.CheckoutSession) (order.ShippingAddress, error) {
	if session.ShippingDetails == nil || session.ShippingDetails.Address == nil {
		return order.ShippingAddress{}, errs.Validation("missing required shipping address fields")
	}

	addr := session.ShippingDetails.Address
	address := order.ShippingAddress{
		Street:     addr.Line1,
		City:       addr.City,
		State:      addr.State,
		PostalCode: addr.PostalCode,
		Country:    addr.Country,
	}
	if !address.Complete() {
		return order.ShippingAddress{}, errs.Validation("missing required shipping address fields")
	}

	return address, nil
}

// extractLineItems recovers the structured cart from the price metadata the
// checkout session builder attached.
func extractLineItems(session *stripe.CheckoutSession) ([]order.LineItem, error) {
	if session.LineItems == nil || len(session.LineItems.Data) == 0 {
		return nil, errs.Validation("checkout session has no line items")
	}

	items := make([]order.LineItem, 0, len(session.LineItems.Data))
	for _, li := range session.LineItems.Data {
		if li.Price == nil || li.Price.Product == nil {
			return nil, errs.Validation("line item is missing its product expansion")
		}

		metadata := li.Price.Product.Metadata

		productID, err := primitive.ObjectIDFromHex(metadata["productId"])
		if err != nil {
			return nil, errs.Validation("line item has an invalid product reference %q", metadata["productId"])
		}

		color := metadata["color"]
		if color == "" {
			color = "N/A"
		}
		size := metadata["size"]
		if size == "" {
			size = "N/A"
		}

		items = append(items, order.LineItem{
			Product:  productID,
			Color:    color,
			Size:     size,
			Quantity: int(li.Quantity),
		})
	}

	return items, nil
}
