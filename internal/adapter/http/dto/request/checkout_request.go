package request

import (
	"strings"

	"roofquote/internal/domain/entities"
)

// SizeCountRequest is one explicit pack count.
type SizeCountRequest struct {
	Size     float64 `json:"size" binding:"required"`
	Quantity int     `json:"quantity"`
}

// CheckoutRequest is the widget-facing checkout payload. Exactly one of
// area_m2 / counts drives the quote; discount_percent outside [1,20] is
// accepted and ignored downstream.
type CheckoutRequest struct {
	OwnerID         string             `json:"owner_id" binding:"required"`
	AreaM2          *float64           `json:"area_m2"`
	Counts          []SizeCountRequest `json:"counts"`
	DiscountPercent int                `json:"discount_percent"`
	Email           string             `json:"email"`
}

func (r CheckoutRequest) ResolveOwnerID() string {
	return strings.TrimSpace(r.OwnerID)
}

// ToInput converts the wire payload into the domain input, dropping
// zero-quantity counts the same way zero-quantity line items are omitted
// from results.
func (r CheckoutRequest) ToInput() entities.CheckoutInput {
	input := entities.CheckoutInput{
		AreaM2:          r.AreaM2,
		DiscountPercent: r.DiscountPercent,
		Email:           strings.TrimSpace(r.Email),
	}
	for _, c := range r.Counts {
		if c.Quantity <= 0 {
			continue
		}
		input.Counts = append(input.Counts, entities.SizeCount{Size: c.Size, Quantity: c.Quantity})
	}
	return input
}

// BreakdownRequest asks for the bill of materials only.
type BreakdownRequest struct {
	OwnerID string  `json:"owner_id" binding:"required"`
	AreaM2  float64 `json:"area_m2" binding:"required"`
}

func (r BreakdownRequest) ResolveOwnerID() string {
	return strings.TrimSpace(r.OwnerID)
}
