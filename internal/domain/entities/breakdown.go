package entities

// LineItem is one quoted material line: a role, the chosen pack size, a
// human-readable label and how many packs to buy.
type LineItem struct {
	Role     Role    `json:"role"`
	Size     float64 `json:"size"`
	Label    string  `json:"label"`
	Quantity int     `json:"quantity"`
}

// BucketPick is one size/quantity pair returned by the bucket optimizer.
type BucketPick struct {
	Size     float64 `json:"size"`
	Quantity int     `json:"quantity"`
}

// Breakdown is the deterministic multi-role bill of materials derived from a
// surface area. It is computed per request and never persisted here; only
// the final checkout preview is stored, by the assembler.
type Breakdown struct {
	LineItems      []LineItem `json:"line_items"`
	SealantLiters  float64    `json:"sealant_liters"`
	TotalItemCount int        `json:"total_item_count"`
}

// SizeCount is an explicit-count checkout entry: the caller already knows
// which sealant pack sizes they want.
type SizeCount struct {
	Size     float64 `json:"size"`
	Quantity int     `json:"quantity"`
}
