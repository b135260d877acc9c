package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/moscow89er/mesto-api/internal/domain"
)

type cardUsecaser interface {
	List(ctx context.Context) ([]*domain.Card, error)
	Create(ctx context.Context, ownerID, name, link string) (*domain.Card, error)
	Delete(ctx context.Context, cardID, callerID string) (*domain.Card, error)
	Like(ctx context.Context, cardID, callerID string) (*domain.Card, error)
	Unlike(ctx context.Context, cardID, callerID string) (*domain.Card, error)
}

type CardHandler struct {
	cards  cardUsecaser
	logger *slog.Logger
}

func NewCardHandler(cards cardUsecaser, logger *slog.Logger) *CardHandler {
	return &CardHandler{cards: cards, logger: logger.With("component", "card_handler")}
}

type cardResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Link      string    `json:"link"`
	Owner     string    `json:"owner"`
	Likes     []string  `json:"likes"`
	CreatedAt time.Time `json:"createdAt"`
}

func newCardResponse(card *domain.Card) cardResponse {
	likes := card.Likes
	if likes == nil {
		likes = []string{}
	}
	return cardResponse{
		ID:        card.ID,
		Name:      card.Name,
		Link:      card.Link,
		Owner:     card.OwnerID,
		Likes:     likes,
		CreatedAt: card.CreatedAt,
	}
}

type cardIDParam struct {
	CardID string `uri:"cardId" binding:"required,len=24,hexadecimal"`
}

type createCardRequest struct {
	Name string `json:"name" binding:"required,min=2,max=30"`
	Link string `json:"link" binding:"required,photourl"`
}

// GET /cards
func (h *CardHandler) List(c *gin.Context) {
	cards, err := h.cards.List(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	out := make([]cardResponse, 0, len(cards))
	for _, card := range cards {
		out = append(out, newCardResponse(card))
	}
	c.JSON(http.StatusOK, out)
}

// POST /cards
func (h *CardHandler) Create(c *gin.Context) {
	var req createCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	card, err := h.cards.Create(c.Request.Context(), c.GetString("userID"), req.Name, req.Link)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, newCardResponse(card))
}

// DELETE /cards/:cardId
func (h *CardHandler) Delete(c *gin.Context) {
	var p cardIDParam
	if err := c.ShouldBindUri(&p); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	card, err := h.cards.Delete(c.Request.Context(), p.CardID, c.GetString("userID"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newCardResponse(card))
}

// PUT /cards/:cardId/likes
func (h *CardHandler) Like(c *gin.Context) {
	var p cardIDParam
	if err := c.ShouldBindUri(&p); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	card, err := h.cards.Like(c.Request.Context(), p.CardID, c.GetString("userID"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newCardResponse(card))
}

// DELETE /cards/:cardId/likes
func (h *CardHandler) Unlike(c *gin.Context) {
	var p cardIDParam
	if err := c.ShouldBindUri(&p); err != nil {
		_ = c.Error(bindError(err))
		return
	}

	card, err := h.cards.Unlike(c.Request.Context(), p.CardID, c.GetString("userID"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, newCardResponse(card))
}
