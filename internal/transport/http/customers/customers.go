package customers

import (
	"context"
	"net/http"

	"github.com/aays-store/backend/internal/service/models/customer"
	"github.com/aays-store/backend/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	ListCustomers(ctx context.Context) ([]customer.Customer, error)
}

// List handles the admin customer listing request.
func List(w http.ResponseWriter, r *http.Request, service service) {
	customers, err := service.ListCustomers(r.Context())
	if err != nil {
		respond.Error(w, r, err)

		return
	}

	respond.JSON(w, http.StatusOK, customers)
}
