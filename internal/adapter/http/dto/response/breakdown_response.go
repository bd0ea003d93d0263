package response

import (
	"roofquote/internal/domain/entities"
)

type BreakdownLineResponse struct {
	Role     string  `json:"role"`
	Size     float64 `json:"size"`
	Label    string  `json:"label"`
	Quantity int     `json:"quantity"`
}

type BreakdownResponse struct {
	LineItems      []BreakdownLineResponse `json:"line_items"`
	SealantLiters  float64                 `json:"sealant_liters"`
	TotalItemCount int                     `json:"total_item_count"`
}

func FromBreakdown(b entities.Breakdown) BreakdownResponse {
	lines := make([]BreakdownLineResponse, 0, len(b.LineItems))
	for _, item := range b.LineItems {
		lines = append(lines, BreakdownLineResponse{
			Role:     string(item.Role),
			Size:     item.Size,
			Label:    item.Label,
			Quantity: item.Quantity,
		})
	}
	return BreakdownResponse{
		LineItems:      lines,
		SealantLiters:  b.SealantLiters,
		TotalItemCount: b.TotalItemCount,
	}
}
