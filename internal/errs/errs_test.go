package errs

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindValidation, KindOf(Validation("bad input")))
	assert.Equal(t, KindNotFound, KindOf(NotFound("missing")))
	assert.Equal(t, KindSignature, KindOf(Signature(errors.New("mismatch"))))
	assert.Equal(t, KindUnauthorized, KindOf(Unauthorized("nope")))
	assert.Equal(t, KindInternal, KindOf(Internal("boom", errors.New("db down"))))

	// Unclassified errors default to internal.
	assert.Equal(t, KindInternal, KindOf(errors.New("plain")))
}

func TestKindSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("loading order: %w", NotFound("order %q not found", "x"))
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestInternalUnwraps(t *testing.T) {
	cause := errors.New("db down")
	err := Internal("query failed", cause)

	require.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "query failed")
	assert.Contains(t, err.Error(), "db down")
}
