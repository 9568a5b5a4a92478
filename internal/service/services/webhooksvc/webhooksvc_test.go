package webhooksvc

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/aays-store/backend/internal/errs"
	"github.com/aays-store/backend/internal/service/models/order"
	"github.com/aays-store/backend/internal/service/services/ordersvc"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v80"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeVerifier struct {
	event stripe.Event
	err   error
}

func (f *fakeVerifier) Verify(payload []byte, sigHeader string) (stripe.Event, error) {
	return f.event, f.err
}

type fakeSessionFetcher struct {
	session *stripe.CheckoutSession
	err     error
	calls   int
}

func (f *fakeSessionFetcher) Get(id string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.calls++

	return f.session, f.err
}

type fakeOrderCreator struct {
	got   *ordersvc.CreateOrderModel
	err   error
	calls int
}

func (f *fakeOrderCreator) CreateOrder(ctx context.Context, model ordersvc.CreateOrderModel) (*order.Order, error) {
	f.calls++
	f.got = &model

	if f.err != nil {
		return nil, f.err
	}

	return &order.Order{OrderID: "ORD-1-001", Status: order.StatusOrdered}, nil
}

type fakeEventRepo struct {
	marked   map[string]bool
	unmarked []string
	markErr  error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{marked: map[string]bool{}}
}

func (f *fakeEventRepo) MarkProcessed(ctx context.Context, eventID string) (bool, error) {
	if f.markErr != nil {
		return false, f.markErr
	}
	if f.marked[eventID] {
		return false, nil
	}
	f.marked[eventID] = true

	return true, nil
}

func (f *fakeEventRepo) Unmark(ctx context.Context, eventID string) error {
	f.unmarked = append(f.unmarked, eventID)
	delete(f.marked, eventID)

	return nil
}

func completedEvent(t *testing.T, sessionID string) stripe.Event {
	t.Helper()

	raw, err := json.Marshal(map[string]any{"id": sessionID})
	require.NoError(t, err)

	return stripe.Event{
		ID:   "evt_1",
		Type: "checkout.session.completed",
		Data: &stripe.EventData{Raw: raw},
	}
}

func fullSession(productID primitive.ObjectID) *stripe.CheckoutSession {
	return &stripe.CheckoutSession{
		ID:                "cs_test_1",
		ClientReferenceID: "user_2x",
		AmountTotal:       10998,
		CustomerDetails: &stripe.CheckoutSessionCustomerDetails{
			Name:  "Ada",
			Email: "ada@example.com",
		},
		ShippingDetails: &stripe.ShippingDetails{
			Address: &stripe.Address{
				Line1:      "12 King St W",
				City:       "Toronto",
				State:      "ON",
				PostalCode: "M5H 1A1",
				Country:    "CA",
			},
		},
		ShippingCost: &stripe.CheckoutSessionShippingCost{
			ShippingRate: &stripe.ShippingRate{ID: "shr_a"},
		},
		LineItems: &stripe.LineItemList{
			Data: []*stripe.LineItem{
				{
					Quantity: 2,
					Price: &stripe.Price{
						Product: &stripe.Product{
							Metadata: map[string]string{
								"productId": productID.Hex(),
								"size":      "M",
								"color":     "Black",
							},
						},
					},
				},
				{
					Quantity: 1,
					Price: &stripe.Price{
						Product: &stripe.Product{
							Metadata: map[string]string{
								"productId": productID.Hex(),
							},
						},
					},
				},
			},
		},
	}
}

func newTestService(
	verifier eventVerifier,
	sessions sessionFetcher,
	orders orderCreator,
	repo *fakeEventRepo,
	dedup bool,
) *WebhookService {
	viper.Set("webhooks.dedup_events", dedup)

	return MustNewWebhookService(
		WithEventVerifier(verifier),
		WithSessionFetcher(sessions),
		WithOrderCreator(orders),
		WithEventRepository(repo),
	)
}

func TestHandleEventFulfillsOrder(t *testing.T) {
	productID := primitive.NewObjectID()

	fetcher := &fakeSessionFetcher{session: fullSession(productID)}
	creator := &fakeOrderCreator{}
	repo := newFakeEventRepo()

	svc := newTestService(
		&fakeVerifier{event: completedEvent(t, "cs_test_1")},
		fetcher, creator, repo, true,
	)

	err := svc.HandleEvent(context.Background(), []byte("{}"), "sig")
	require.NoError(t, err)
	require.Equal(t, 1, creator.calls)

	model := creator.got
	assert.Equal(t, "user_2x", model.Customer.ClerkID)
	assert.Equal(t, "Ada", model.Customer.Name)
	assert.Equal(t, "ada@example.com", model.Customer.Email)
	assert.InDelta(t, 109.98, model.TotalAmount, 0.001)
	assert.Equal(t, "shr_a", model.ShippingRate)
	assert.Equal(t, "CA", model.ShippingAddress.Country)

	require.Len(t, model.Products, 2)
	assert.Equal(t, productID, model.Products[0].Product)
	assert.Equal(t, "Black", model.Products[0].Color)
	assert.Equal(t, 2, model.Products[0].Quantity)

	// Absent variant metadata falls back to N/A.
	assert.Equal(t, "N/A", model.Products[1].Color)
	assert.Equal(t, "N/A", model.Products[1].Size)
}

func TestHandleEventRejectsBadSignature(t *testing.T) {
	fetcher := &fakeSessionFetcher{}
	creator := &fakeOrderCreator{}

	svc := newTestService(
		&fakeVerifier{err: errors.New("signature mismatch")},
		fetcher, creator, newFakeEventRepo(), true,
	)

	err := svc.HandleEvent(context.Background(), []byte("{}"), "bad-sig")
	require.Error(t, err)
	assert.Equal(t, errs.KindSignature, errs.KindOf(err))
	assert.Zero(t, fetcher.calls)
	assert.Zero(t, creator.calls)
}

func TestHandleEventIgnoresOtherEventTypes(t *testing.T) {
	fetcher := &fakeSessionFetcher{}
	creator := &fakeOrderCreator{}

	svc := newTestService(
		&fakeVerifier{event: stripe.Event{ID: "evt_2", Type: "invoice.paid", Data: &stripe.EventData{Raw: []byte("{}")}}},
		fetcher, creator, newFakeEventRepo(), true,
	)

	err := svc.HandleEvent(context.Background(), []byte("{}"), "sig")
	require.NoError(t, err)
	assert.Zero(t, fetcher.calls)
	assert.Zero(t, creator.calls)
}

func TestHandleEventSkipsRetriedDelivery(t *testing.T) {
	productID := primitive.NewObjectID()

	fetcher := &fakeSessionFetcher{session: fullSession(productID)}
	creator := &fakeOrderCreator{}
	repo := newFakeEventRepo()

	svc := newTestService(
		&fakeVerifier{event: completedEvent(t, "cs_test_1")},
		fetcher, creator, repo, true,
	)

	require.NoError(t, svc.HandleEvent(context.Background(), []byte("{}"), "sig"))
	require.NoError(t, svc.HandleEvent(context.Background(), []byte("{}"), "sig"))

	assert.Equal(t, 1, creator.calls)
}

func TestHandleEventReleasesRecordOnFailure(t *testing.T) {
	productID := primitive.NewObjectID()

	fetcher := &fakeSessionFetcher{session: fullSession(productID)}
	creator := &fakeOrderCreator{err: errors.New("insert failed")}
	repo := newFakeEventRepo()

	svc := newTestService(
		&fakeVerifier{event: completedEvent(t, "cs_test_1")},
		fetcher, creator, repo, true,
	)

	err := svc.HandleEvent(context.Background(), []byte("{}"), "sig")
	require.Error(t, err)
	assert.Equal(t, []string{"evt_1"}, repo.unmarked)
}

func TestHandleEventRejectsIncompleteAddress(t *testing.T) {
	productID := primitive.NewObjectID()

	session := fullSession(productID)
	session.ShippingDetails.Address.PostalCode = ""

	fetcher := &fakeSessionFetcher{session: session}
	creator := &fakeOrderCreator{}

	svc := newTestService(
		&fakeVerifier{event: completedEvent(t, "cs_test_1")},
		fetcher, creator, newFakeEventRepo(), false,
	)

	err := svc.HandleEvent(context.Background(), []byte("{}"), "sig")
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	assert.Contains(t, err.Error(), "missing required shipping address fields")
	assert.Zero(t, creator.calls)
}

func TestHandleEventRejectsBadProductReference(t *testing.T) {
	session := fullSession(primitive.NewObjectID())
	session.LineItems.Data[0].Price.Product.Metadata["productId"] = "not-a-hex-id"

	fetcher := &fakeSessionFetcher{session: session}
	creator := &fakeOrderCreator{}

	svc := newTestService(
		&fakeVerifier{event: completedEvent(t, "cs_test_1")},
		fetcher, creator, newFakeEventRepo(), false,
	)

	err := svc.HandleEvent(context.Background(), []byte("{}"), "sig")
	require.Error(t, err)
	assert.Equal(t, errs.KindValidation, errs.KindOf(err))
	assert.Zero(t, creator.calls)
}
