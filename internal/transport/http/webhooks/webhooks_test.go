package webhooks

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aays-store/backend/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeService struct {
	gotPayload []byte
	gotSig     string
	err        error
}

func (f *fakeService) HandleEvent(ctx context.Context, payload []byte, sigHeader string) error {
	f.gotPayload = payload
	f.gotSig = sigHeader

	return f.err
}

func TestHandle(t *testing.T) {
	svc := &fakeService{}

	req := httptest.NewRequest(http.MethodPost, "/webhooks", strings.NewReader(`{"id":"evt_1"}`))
	req.Header.Set("Stripe-Signature", "t=1,v1=abc")
	rec := httptest.NewRecorder()

	Handle(rec, req, svc)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", rec.Body.String())
	assert.Equal(t, `{"id":"evt_1"}`, string(svc.gotPayload))
	assert.Equal(t, "t=1,v1=abc", svc.gotSig)
}

func TestHandleRejectsBadSignature(t *testing.T) {
	svc := &fakeService{err: errs.Signature(errors.New("signature mismatch"))}

	req := httptest.NewRequest(http.MethodPost, "/webhooks", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	Handle(rec, req, svc)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleMasksInternalError(t *testing.T) {
	svc := &fakeService{err: errs.Internal("failed to retrieve checkout session", errors.New("connection reset"))}

	req := httptest.NewRequest(http.MethodPost, "/webhooks", strings.NewReader("{}"))
	rec := httptest.NewRecorder()

	Handle(rec, req, svc)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}
