package response

import (
	"time"

	"roofquote/internal/domain/entities"
)

type QuoteResponse struct {
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

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		ID:            q.ID,
		OwnerID:       q.OwnerID,
		AreaM2:        q.AreaM2,
		SealantLiters: q.SealantLiters,
		ItemCount:     q.ItemCount,
		Subtotal:      q.Subtotal,
		Total:         q.Total,
		Currency:      q.Currency,
		CheckoutURL:   q.CheckoutURL,
		CreatedAt:     q.CreatedAt,
	}
}

func FromQuotes(quotes []entities.Quote) []QuoteResponse {
	out := make([]QuoteResponse, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, FromQuote(q))
	}
	return out
}
