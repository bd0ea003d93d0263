package response

import (
	"roofquote/internal/domain/entities"
)

type PreviewLineResponse struct {
	ImageURL     *string `json:"image_url"`
	Title        string  `json:"title"`
	VariantLabel string  `json:"variant_label"`
	Quantity     int     `json:"quantity"`
	UnitPrice    string  `json:"unit_price"`
	LineTotal    string  `json:"line_total"`
}

type CheckoutSummaryResponse struct {
	ItemCount       int     `json:"item_count"`
	Subtotal        float64 `json:"subtotal"`
	Total           float64 `json:"total"`
	Currency        string  `json:"currency"`
	DiscountPercent int     `json:"discount_percent,omitempty"`
	DiscountAmount  float64 `json:"discount_amount,omitempty"`
}

type CheckoutResponse struct {
	OK          bool                    `json:"ok"`
	CheckoutURL string                  `json:"checkout_url"`
	LineItems   []PreviewLineResponse   `json:"line_items"`
	Summary     CheckoutSummaryResponse `json:"summary"`
}

func FromCheckoutResult(r entities.CheckoutResult) CheckoutResponse {
	lines := make([]PreviewLineResponse, 0, len(r.LineItems))
	for _, l := range r.LineItems {
		lines = append(lines, PreviewLineResponse{
			ImageURL:     l.ImageURL,
			Title:        l.Title,
			VariantLabel: l.VariantLabel,
			Quantity:     l.Quantity,
			UnitPrice:    l.UnitPrice,
			LineTotal:    l.LineTotal,
		})
	}
	return CheckoutResponse{
		OK:          true,
		CheckoutURL: r.CheckoutURL,
		LineItems:   lines,
		Summary: CheckoutSummaryResponse{
			ItemCount:       r.Summary.ItemCount,
			Subtotal:        r.Summary.Subtotal,
			Total:           r.Summary.Total,
			Currency:        r.Summary.Currency,
			DiscountPercent: r.Summary.DiscountPercent,
			DiscountAmount:  r.Summary.DiscountAmount,
		},
	}
}
