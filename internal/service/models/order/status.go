package order

import "errors"

// Status is a fulfillment stage of an order.
type Status string

const (
	StatusOrdered        Status = "Ordered"
	StatusShipped        Status = "Shipped"
	StatusOutForDelivery Status = "Out for Delivery"
	StatusDelivered      Status = "Delivered"
)

var ErrInvalidStatus = errors.New("invalid order status")

func (s Status) String() string {
	return string(s)
}

// Rank returns the position of the status in the fulfillment sequence.
func (s Status) Rank() int {
	switch s {
	case StatusOrdered:
		return 0
	case StatusShipped:
		return 1
	case StatusOutForDelivery:
		return 2
	case StatusDelivered:
		return 3
	default:
		return -1
	}
}

// TimestampField returns the statusTimestamps subfield stamped when the
// order reaches this status. The ordered timestamp is set at creation only,
// so StatusOrdered maps to no field here.
func (s Status) TimestampField() string {
	switch s {
	case StatusShipped:
		return "shipped"
	case StatusOutForDelivery:
		return "outForDelivery"
	case StatusDelivered:
		return "delivered"
	default:
		return ""
	}
}

func ParseStatus(s string) (Status, error) {
	switch s {
	case StatusOrdered.String():
		return StatusOrdered, nil
	case StatusShipped.String():
		return StatusShipped, nil
	case StatusOutForDelivery.String():
		return StatusOutForDelivery, nil
	case StatusDelivered.String():
		return StatusDelivered, nil
	default:
		return "", ErrInvalidStatus
	}
}
