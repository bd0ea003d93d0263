package interfaces

import (
	"context"

	"roofquote/internal/domain/entities"
)

// IQuoteRepository abstracts DynamoDB persistence for assembled checkout
// previews. Persistence is best-effort from the assembler's point of view: a
// failed write never invalidates the checkout artifact already built.

type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Quote, error)
}
