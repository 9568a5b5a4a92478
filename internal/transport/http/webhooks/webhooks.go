package webhooks

import (
	"context"
	"io"
	"net/http"

	"github.com/aays-store/backend/internal/errs"
	"github.com/aays-store/backend/internal/transport/http/respond"
)

// service is an interface for the service layer.
type service interface {
	HandleEvent(ctx context.Context, payload []byte, sigHeader string) error
}

// Handle receives a signed payment-provider event. The body must stay raw:
// the signature covers the exact bytes on the wire.
func Handle(w http.ResponseWriter, r *http.Request, service service) {
	payload, err := io.ReadAll(r.Body)
	if err != nil {
		respond.Error(w, r, errs.Validation("failed to read request body: %v", err))

		return
	}

	sigHeader := r.Header.Get("Stripe-Signature")

	if err := service.HandleEvent(r.Context(), payload, sigHeader); err != nil {
		respond.Error(w, r, err)

		return
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}
