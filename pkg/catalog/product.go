package catalog

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog item as returned by the backend.
type Product struct {
	ID            string           `json:"_id"`
	Name          string           `json:"name"`
	Description   string           `json:"description,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	DiscountPrice *decimal.Decimal `json:"discountPrice,omitempty"`
	Category      string           `json:"category,omitempty"`
	Brand         string           `json:"brand,omitempty"`
	Images        []Image          `json:"images,omitempty"`
	Stock         int              `json:"stock"`
	Ratings       float64          `json:"ratings"`
	NumReviews    int              `json:"numReviews"`
	Featured      bool             `json:"featured,omitempty"`
	Reviews       []Review         `json:"reviews,omitempty"`
	CreatedAt     time.Time        `json:"createdAt,omitzero"`
}

// Image is one product image reference.
type Image struct {
	URL string `json:"url"`
}

// Review is a customer review attached to a product.
type Review struct {
	User      string    `json:"user,omitempty"`
	Name      string    `json:"name,omitempty"`
	Rating    float64   `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitzero"`
}

// ReviewInput is the payload for submitting a new review.
type ReviewInput struct {
	Rating  float64 `json:"rating"`
	Comment string  `json:"comment"`
}

// Filters narrows a catalog fetch. Zero-valued fields are omitted from the
// query string.
type Filters struct {
	Keyword   string
	Category  string
	MinPrice  decimal.Decimal
	MaxPrice  decimal.Decimal
	MinRating float64
	Page      int
}

// Pagination mirrors the server-reported paging of the product listing. The
// values are adopted from the response verbatim, never recomputed locally.
type Pagination struct {
	TotalProducts int
	TotalPages    int
	CurrentPage   int
}
