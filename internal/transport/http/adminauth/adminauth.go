package adminauth

import (
	"crypto/subtle"
	"net/http"
	"os"
	"strings"

	"github.com/aays-store/backend/internal/errs"
	"github.com/aays-store/backend/internal/transport/http/respond"
)

// Middleware gates admin mutations behind a shared bearer key. A missing or
// unknown identity is rejected with 401 before any service code runs.
func Middleware(next http.Handler) http.Handler {
	key := os.Getenv("ADMIN_API_KEY")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if key == "" {
			respond.Error(w, r, errs.Unauthorized("admin access is not configured"))

			return
		}

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(key)) != 1 {
			respond.Error(w, r, errs.Unauthorized("admin identity required"))

			return
		}

		next.ServeHTTP(w, r)
	})
}
