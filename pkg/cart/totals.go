package cart

import "github.com/shopspring/decimal"

// Pricing constants. The shipping fee is waived only when the items subtotal
// strictly exceeds the threshold: a subtotal of exactly 500.00 still pays it.
var (
	taxRate           = decimal.NewFromFloat(0.10)
	shippingFee       = decimal.NewFromInt(50)
	freeShippingAbove = decimal.NewFromInt(500)
)

// Line is one product's entry in the cart. At most one line exists per
// product; repeated adds merge into the existing line's quantity.
type Line struct {
	ProductID string          `json:"product"`
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"price"`
	Image     string          `json:"image,omitempty"`
	Quantity  int             `json:"quantity"`
}

// valid reports whether the line can enter the cart.
func (l Line) valid() bool {
	return l.ProductID != "" && l.Quantity >= 1 && !l.UnitPrice.IsNegative()
}

// Totals holds the derived pricing of the cart. It is recomputed from the
// full line list after every mutation and is never independently mutable.
type Totals struct {
	ItemsPrice    decimal.Decimal `json:"itemsPrice"`
	TaxPrice      decimal.Decimal `json:"taxPrice"`
	ShippingPrice decimal.Decimal `json:"shippingPrice"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
}

// CalculateTotals derives pricing from lines:
//
//	itemsPrice = Σ(unitPrice × quantity)
//	taxPrice   = itemsPrice × 0.10
//	shipping   = 0 if itemsPrice > 500, else 50
//	total      = itemsPrice + taxPrice + shipping
//
// Each of the four values is rounded to 2 decimal places independently, from
// the unrounded intermediates.
func CalculateTotals(lines []Line) Totals {
	items := decimal.Zero
	for _, line := range lines {
		items = items.Add(line.UnitPrice.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}

	tax := items.Mul(taxRate)

	shipping := shippingFee
	if items.GreaterThan(freeShippingAbove) {
		shipping = decimal.Zero
	}

	total := items.Add(tax).Add(shipping)

	return Totals{
		ItemsPrice:    items.Round(2),
		TaxPrice:      tax.Round(2),
		ShippingPrice: shipping.Round(2),
		TotalAmount:   total.Round(2),
	}
}
