package respond

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/aays-store/backend/internal/errs"
)

// JSON writes v as a JSON response with the given status.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Error writing response", "error", err)
	}
}

// Error converts a classified error into an HTTP error response. All
// failures are logged here, at the route boundary.
func Error(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch errs.KindOf(err) {
	case errs.KindValidation, errs.KindSignature:
		status = http.StatusBadRequest
	case errs.KindNotFound:
		status = http.StatusNotFound
	case errs.KindUnauthorized:
		status = http.StatusUnauthorized
	}

	slog.ErrorContext(r.Context(), "Request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"status", status,
		"error", err,
	)

	msg := err.Error()
	if status == http.StatusInternalServerError {
		// Never leak database or provider details to the client.
		msg = "Internal Server Error"
	}

	http.Error(w, msg, status)
}
