package entities

import "time"

// CheckoutInput selects one of the two entry modes: a measured surface area,
// or explicit pack counts for up to three sealant sizes. DiscountPercent is
// only honored inside [1,20]; anything else is silently ignored so a caller
// mistake never blocks the checkout.
type CheckoutInput struct {
	AreaM2          *float64    `json:"area_m2,omitempty"`
	Counts          []SizeCount `json:"counts,omitempty"`
	DiscountPercent int         `json:"discount_percent,omitempty"`
	Email           string      `json:"email,omitempty"`
}

// PreviewLine is one normalized checkout preview row. Prices are
// locale-formatted strings rounded to 2 decimals; ImageURL is nil when no
// image could be resolved.
type PreviewLine struct {
	ImageURL     *string `json:"image_url"`
	Title        string  `json:"title"`
	VariantLabel string  `json:"variant_label"`
	Quantity     int     `json:"quantity"`
	UnitPrice    string  `json:"unit_price"`
	LineTotal    string  `json:"line_total"`
}

// CheckoutSummary is the preview's roll-up block. DiscountPercent and
// DiscountAmount are zero when no discount was applied.
type CheckoutSummary struct {
	ItemCount       int     `json:"item_count"`
	Subtotal        float64 `json:"subtotal"`
	Total           float64 `json:"total"`
	Currency        string  `json:"currency"`
	DiscountPercent int     `json:"discount_percent,omitempty"`
	DiscountAmount  float64 `json:"discount_amount,omitempty"`
}

// CheckoutResult is the assembled checkout artifact: either a direct
// add-to-cart URL or a draft-order invoice URL, plus the normalized preview.
type CheckoutResult struct {
	CheckoutURL string          `json:"checkout_url"`
	LineItems   []PreviewLine   `json:"line_items"`
	Summary     CheckoutSummary `json:"summary"`
}

// Quote is the persisted record of a successfully assembled checkout
// preview.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (owner_id-index): owner_id
type Quote struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"owner_id"`
	AreaM2        float64   `json:"area_m2,omitempty"`
	SealantLiters float64   `json:"sealant_liters"`
	ItemCount     int       `json:"item_count"`
	Subtotal      float64   `json:"subtotal"`
	Total         float64   `json:"total"`
	Currency      string    `json:"currency"`
	CheckoutURL   string    `json:"checkout_url"`
	CreatedAt     time.Time `json:"created_at"`
}
