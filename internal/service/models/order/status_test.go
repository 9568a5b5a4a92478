package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []Status{StatusOrdered, StatusShipped, StatusOutForDelivery, StatusDelivered} {
		parsed, err := ParseStatus(string(s))
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}

	_, err := ParseStatus("Lost")
	require.ErrorIs(t, err, ErrInvalidStatus)

	// Matching is exact, including case.
	_, err = ParseStatus("shipped")
	require.ErrorIs(t, err, ErrInvalidStatus)
}

func TestStatusRank(t *testing.T) {
	assert.Less(t, StatusOrdered.Rank(), StatusShipped.Rank())
	assert.Less(t, StatusShipped.Rank(), StatusOutForDelivery.Rank())
	assert.Less(t, StatusOutForDelivery.Rank(), StatusDelivered.Rank())
}

func TestStatusTimestampField(t *testing.T) {
	assert.Equal(t, "shipped", StatusShipped.TimestampField())
	assert.Equal(t, "outForDelivery", StatusOutForDelivery.TimestampField())
	assert.Equal(t, "delivered", StatusDelivered.TimestampField())

	// The ordered timestamp is stamped at creation, never on transition.
	assert.Equal(t, "", StatusOrdered.TimestampField())
}

func TestShippingAddressComplete(t *testing.T) {
	full := ShippingAddress{
		Street:     "12 King St W",
		City:       "Toronto",
		State:      "ON",
		PostalCode: "M5H 1A1",
		Country:    "CA",
	}
	assert.True(t, full.Complete())

	partial := full
	partial.State = ""
	assert.False(t, partial.Complete())

	assert.False(t, ShippingAddress{}.Complete())
}
