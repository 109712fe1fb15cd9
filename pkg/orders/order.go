package orders

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a placed order as returned by the backend.
type Order struct {
	ID              string          `json:"_id"`
	Items           []Item          `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentInfo     PaymentInfo     `json:"paymentInfo"`
	ItemsPrice      decimal.Decimal `json:"itemsPrice"`
	TaxPrice        decimal.Decimal `json:"taxPrice"`
	ShippingPrice   decimal.Decimal `json:"shippingPrice"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Status          string          `json:"orderStatus"`
	CreatedAt       time.Time       `json:"createdAt,omitzero"`
}

// Item is one product line within an order.
type Item struct {
	ProductID string          `json:"product"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
}

// ShippingAddress is the delivery destination of an order.
type ShippingAddress struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
	Phone   string `json:"phone,omitempty"`
}

// PaymentInfo records the payment method and its settlement status.
type PaymentInfo struct {
	Method string `json:"method"`
	Status string `json:"status"`
}

// CreateInput is the payload for placing a new order, carrying the cart
// lines and the totals derived by the cart engine.
type CreateInput struct {
	Items           []Item          `json:"orderItems"`
	ShippingAddress ShippingAddress `json:"shippingAddress"`
	PaymentInfo     PaymentInfo     `json:"paymentInfo"`
	ItemsPrice      decimal.Decimal `json:"itemsPrice"`
	TaxPrice        decimal.Decimal `json:"taxPrice"`
	ShippingPrice   decimal.Decimal `json:"shippingPrice"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
}
