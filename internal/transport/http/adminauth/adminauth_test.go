package adminauth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protected() (http.Handler, *bool) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	})

	return Middleware(next), &called
}

func TestMiddleware(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "topsecret")

	handler, called := protected()

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", "Bearer topsecret")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, *called)
}

func TestMiddlewareRejectsWrongKey(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "topsecret")

	handler, called := protected()

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "topsecret")

	handler, called := protected()

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}

func TestMiddlewareRejectsWhenUnconfigured(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "")

	handler, called := protected()

	req := httptest.NewRequest(http.MethodPost, "/products", nil)
	req.Header.Set("Authorization", "Bearer anything")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, *called)
}
