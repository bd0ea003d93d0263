package interfaces

import (
	"context"

	"roofquote/internal/domain/entities"
)

// ICommercePlatform abstracts the storefront commerce platform.
//
// BuildCartURL is pure (no I/O). CreateDraftOrder is one network call and
// reports platform rejections as a structured DraftOrderErrKind rather than
// free text, so the assembler's retry predicate never matches substrings.
// FetchProductImages is best-effort: callers treat errors as an empty map.

type ICommercePlatform interface {
	BuildCartURL(shopDomain string, pairs []entities.CartPair, opts entities.CartURLOptions) string
	CreateDraftOrder(ctx context.Context, conn entities.Connection, req entities.DraftOrderRequest) (entities.DraftOrderResult, error)
	FetchProductImages(ctx context.Context, conn entities.Connection, lines []entities.ImageLookupLine) (map[string]string, error)
}
