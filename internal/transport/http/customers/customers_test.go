package customers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aays-store/backend/internal/service/models/customer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeService struct {
	ListCustomersFunc func(ctx context.Context) ([]customer.Customer, error)
}

func (f *fakeService) ListCustomers(ctx context.Context) ([]customer.Customer, error) {
	return f.ListCustomersFunc(ctx)
}

func TestList(t *testing.T) {
	svc := &fakeService{
		ListCustomersFunc: func(ctx context.Context) ([]customer.Customer, error) {
			return []customer.Customer{
				{ID: primitive.NewObjectID(), ClerkID: "user_2x", Name: "Ada Lovelace", Email: "ada@example.com"},
			}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/customers", nil)
	rec := httptest.NewRecorder()

	List(rec, req, svc)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Ada Lovelace")
	assert.Contains(t, rec.Body.String(), "user_2x")
}
