package repository

import (
	"context"

	"github.com/moscow89er/mesto-api/internal/domain"
)

type CardRepository interface {
	// Create persists a new card and returns it with the store-assigned id
	// and an empty like set.
	Create(ctx context.Context, card *domain.Card) (*domain.Card, error)

	// FindByID returns domain.ErrCardNotFound when absent.
	FindByID(ctx context.Context, id string) (*domain.Card, error)

	List(ctx context.Context) ([]*domain.Card, error)

	Delete(ctx context.Context, id string) error

	// AddLike and RemoveLike are idempotent set operations. Both return
	// domain.ErrCardNotFound when the card does not exist.
	AddLike(ctx context.Context, cardID, userID string) error
	RemoveLike(ctx context.Context, cardID, userID string) error
}
