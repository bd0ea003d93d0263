package entities

// Types exchanged with the commerce-platform collaborator. They live in the
// domain so the use case never depends on a concrete provider package.

// CartPair is one (variant, quantity) segment of a direct add-to-cart URL.
type CartPair struct {
	VariantID string
	Quantity  int
}

// CartURLOptions carries the optional pieces of a cart permalink. The
// provider resolves DiscountPercent to its pre-provisioned promotional code;
// unknown percentages simply produce a URL without a discount parameter.
type CartURLOptions struct {
	DiscountPercent int
	Note            string
}

// DraftOrderLine is one line of a draft-order request. VariantID may be
// empty, in which case the platform creates a free-form (custom) line item.
type DraftOrderLine struct {
	Title     string
	VariantID string
	Quantity  int
	Price     float64
}

// DraftOrderRequest asks the platform to create a draft order and return an
// invoice-style checkout URL.
type DraftOrderRequest struct {
	LineItems       []DraftOrderLine
	Note            string
	Tags            []string
	Currency        string
	DiscountPercent int
	DiscountAmount  float64
	Email           string
}

// DraftOrderErrKind is the structured classification of a draft-order
// rejection. Providers translate their free-text errors into a kind; the
// assembler's retry predicate matches on the kind only.
type DraftOrderErrKind string

const (
	ErrKindNone               DraftOrderErrKind = ""
	ErrKindVariantUnavailable DraftOrderErrKind = "variant_unavailable"
	ErrKindPlatform           DraftOrderErrKind = "platform"
)

// DraftOrderResult reports the platform's answer. OK with a CheckoutURL on
// success; otherwise ErrKind plus the platform's message.
type DraftOrderResult struct {
	OK          bool
	CheckoutURL string
	ErrKind     DraftOrderErrKind
	Err         string
}

// ImageLookupLine identifies a variant for the best-effort platform image
// lookup.
type ImageLookupLine struct {
	Size  float64
	Price float64
	Title string
}
