package order

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// LineItem is a single ordered product with its chosen variant.
type LineItem struct {
	Product  primitive.ObjectID `bson:"product"  json:"product"`
	Color    string             `bson:"color"    json:"color"`
	Size     string             `bson:"size"     json:"size"`
	Quantity int                `bson:"quantity" json:"quantity"`
}

// ShippingAddress is persisted only as a whole: all five fields or nothing.
type ShippingAddress struct {
	Street     string `bson:"street"     json:"street"`
	City       string `bson:"city"       json:"city"`
	State      string `bson:"state"      json:"state"`
	PostalCode string `bson:"postalCode" json:"postalCode"`
	Country    string `bson:"country"    json:"country"`
}

// Complete reports whether every address field is present.
func (a ShippingAddress) Complete() bool {
	return a.Street != "" && a.City != "" && a.State != "" && a.PostalCode != "" && a.Country != ""
}

// StatusTimestamps records when each fulfillment stage was reached. The
// ordered timestamp is set at creation and never cleared; each later stage
// sets exactly one field.
type StatusTimestamps struct {
	Ordered        *time.Time `bson:"ordered,omitempty"        json:"ordered,omitempty"`
	Shipped        *time.Time `bson:"shipped,omitempty"        json:"shipped,omitempty"`
	OutForDelivery *time.Time `bson:"outForDelivery,omitempty" json:"outForDelivery,omitempty"`
	Delivered      *time.Time `bson:"delivered,omitempty"      json:"delivered,omitempty"`
}

// Order is the transactional record of truth for a purchase.
type Order struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"    json:"_id"`
	OrderID          string             `bson:"orderId"          json:"orderId"`
	CustomerClerkID  string             `bson:"customerClerkId"  json:"customerClerkId"`
	Products         []LineItem         `bson:"products"         json:"products"`
	ShippingAddress  ShippingAddress    `bson:"shippingAddress"  json:"shippingAddress"`
	ShippingRate     string             `bson:"shippingRate"     json:"shippingRate"`
	TotalAmount      float64            `bson:"totalAmount"      json:"totalAmount"`
	Status           Status             `bson:"status"           json:"status"`
	StatusTimestamps StatusTimestamps   `bson:"statusTimestamps" json:"statusTimestamps"`
	CreatedAt        time.Time          `bson:"createdAt"        json:"createdAt"`
}
