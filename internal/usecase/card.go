package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/moscow89er/mesto-api/internal/apperror"
	"github.com/moscow89er/mesto-api/internal/domain"
	"github.com/moscow89er/mesto-api/internal/repository"
)

const (
	msgCardNotFound = "Requested card not found"
	msgDeleteNotOwn = "Insufficient rights to delete the card"
)

type CardUsecase struct {
	cards repository.CardRepository
}

func NewCardUsecase(cards repository.CardRepository) *CardUsecase {
	return &CardUsecase{cards: cards}
}

func (u *CardUsecase) List(ctx context.Context) ([]*domain.Card, error) {
	cards, err := u.cards.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	return cards, nil
}

func (u *CardUsecase) Create(ctx context.Context, ownerID, name, link string) (*domain.Card, error) {
	card, err := u.cards.Create(ctx, &domain.Card{
		Name:    name,
		Link:    link,
		OwnerID: ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	return card, nil
}

// Delete removes a card and returns it. Only the owner may delete; any
// other caller gets Forbidden and the card stays.
func (u *CardUsecase) Delete(ctx context.Context, cardID, callerID string) (*domain.Card, error) {
	card, err := u.cards.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return nil, apperror.NewNotFound(msgCardNotFound, err)
		}
		return nil, fmt.Errorf("find card: %w", err)
	}

	if card.OwnerID != callerID {
		return nil, apperror.NewForbidden(msgDeleteNotOwn, nil)
	}

	if err := u.cards.Delete(ctx, cardID); err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return nil, apperror.NewNotFound(msgCardNotFound, err)
		}
		return nil, fmt.Errorf("delete card: %w", err)
	}
	return card, nil
}

// Like adds the caller to the card's like set and returns the updated card.
// Liking twice is a no-op.
func (u *CardUsecase) Like(ctx context.Context, cardID, callerID string) (*domain.Card, error) {
	if err := u.cards.AddLike(ctx, cardID, callerID); err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return nil, apperror.NewNotFound(msgCardNotFound, err)
		}
		return nil, fmt.Errorf("add like: %w", err)
	}
	return u.reload(ctx, cardID)
}

// Unlike removes the caller from the like set; removing an absent like is a
// no-op.
func (u *CardUsecase) Unlike(ctx context.Context, cardID, callerID string) (*domain.Card, error) {
	if err := u.cards.RemoveLike(ctx, cardID, callerID); err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return nil, apperror.NewNotFound(msgCardNotFound, err)
		}
		return nil, fmt.Errorf("remove like: %w", err)
	}
	return u.reload(ctx, cardID)
}

func (u *CardUsecase) reload(ctx context.Context, cardID string) (*domain.Card, error) {
	card, err := u.cards.FindByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			return nil, apperror.NewNotFound(msgCardNotFound, err)
		}
		return nil, fmt.Errorf("reload card: %w", err)
	}
	return card, nil
}
