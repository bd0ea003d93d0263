package usecase

import (
	"context"
	"errors"
	"strings"

	"roofquote/internal/domain/entities"
	"roofquote/internal/usecase/interfaces"
)

var (
	ErrQuoteNotFound  = errors.New("quote not found")
	ErrInvalidQuoteID = errors.New("invalid quote id")
)

// IQuoteUseCase exposes read access to persisted checkout previews for the
// dashboard.

type IQuoteUseCase interface {
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Quote, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRepository
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo}
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidQuoteID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

func (u *QuoteUseCase) ListByOwnerID(ctx context.Context, ownerID string) ([]entities.Quote, error) {
	ownerID = strings.TrimSpace(ownerID)
	if ownerID == "" {
		return nil, ErrInvalidOwnerID
	}
	return u.repo.ListByOwnerID(ctx, ownerID)
}
