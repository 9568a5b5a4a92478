package checkout

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aays-store/backend/internal/errs"
	"github.com/aays-store/backend/internal/service/services/checkoutsvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	gotItems []checkoutsvc.CartItem
	gotCust  checkoutsvc.Customer
	url      string
	err      error
}

func (f *fakeService) BuildSession(ctx context.Context, cartItems []checkoutsvc.CartItem, cust checkoutsvc.Customer) (string, error) {
	f.gotItems = cartItems
	f.gotCust = cust

	return f.url, f.err
}

func TestCreate(t *testing.T) {
	svc := &fakeService{url: "https://checkout.stripe.com/c/pay/cs_test_123"}

	body := `{
		"cartItems": [
			{"item": {"_id": "66a1f0c2e13e1a0001aa0001", "title": "Hoodie", "price": 49.99}, "quantity": 2, "size": "M", "color": "Black"}
		],
		"customer": {"clerkId": "user_2x", "name": "Ada", "email": "ada@example.com"}
	}`
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(body))
	rec := httptest.NewRecorder()

	Create(rec, req, svc)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url": "https://checkout.stripe.com/c/pay/cs_test_123"}`, rec.Body.String())

	require.Len(t, svc.gotItems, 1)
	assert.Equal(t, "Hoodie", svc.gotItems[0].Item.Title)
	assert.Equal(t, int64(2), svc.gotItems[0].Quantity)
	assert.Equal(t, "user_2x", svc.gotCust.ClerkID)
}

func TestCreateRejectsInvalidBody(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader("not json"))
	rec := httptest.NewRecorder()

	Create(rec, req, &fakeService{})

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateMapsValidationError(t *testing.T) {
	svc := &fakeService{err: errs.Validation("not enough data to checkout")}

	req := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(`{"cartItems": [], "customer": {}}`))
	rec := httptest.NewRecorder()

	Create(rec, req, svc)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "not enough data to checkout")
}
