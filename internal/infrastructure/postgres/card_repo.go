package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/moscow89er/mesto-api/internal/domain"
	"github.com/moscow89er/mesto-api/internal/objectid"
)

const pgForeignKeyViolation = "23503"

type CardRepository struct {
	pool *pgxpool.Pool
}

func NewCardRepository(pool *pgxpool.Pool) *CardRepository {
	return &CardRepository{pool: pool}
}

func (r *CardRepository) Create(ctx context.Context, card *domain.Card) (*domain.Card, error) {
	query := `
		INSERT INTO cards (id, name, link, owner_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, link, owner_id, created_at`

	var c domain.Card
	err := r.pool.QueryRow(ctx, query, objectid.New(), card.Name, card.Link, card.OwnerID).
		Scan(&c.ID, &c.Name, &c.Link, &c.OwnerID, &c.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("create card: %w", err)
	}
	c.Likes = []string{}
	return &c, nil
}

func (r *CardRepository) FindByID(ctx context.Context, id string) (*domain.Card, error) {
	query := cardSelect + ` WHERE c.id = $1 GROUP BY c.id`

	return scanCard(r.pool.QueryRow(ctx, query, id))
}

func (r *CardRepository) List(ctx context.Context) ([]*domain.Card, error) {
	query := cardSelect + ` GROUP BY c.id ORDER BY c.created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	var cards []*domain.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, rows.Err()
}

func (r *CardRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM cards WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete card: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCardNotFound
	}
	return nil
}

// AddLike is idempotent: liking an already-liked card is a no-op. A missing
// card surfaces as the foreign key violation on card_id.
func (r *CardRepository) AddLike(ctx context.Context, cardID, userID string) error {
	query := `
		INSERT INTO card_likes (card_id, user_id)
		VALUES ($1, $2)
		ON CONFLICT (card_id, user_id) DO NOTHING`

	_, err := r.pool.Exec(ctx, query, cardID, userID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrCardNotFound
		}
		return fmt.Errorf("add like: %w", err)
	}
	return nil
}

// RemoveLike is idempotent: removing an absent like is a no-op, but a
// missing card is still reported as not found.
func (r *CardRepository) RemoveLike(ctx context.Context, cardID, userID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM card_likes WHERE card_id = $1 AND user_id = $2`, cardID, userID)
	if err != nil {
		return fmt.Errorf("remove like: %w", err)
	}

	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM cards WHERE id = $1)`, cardID).Scan(&exists); err != nil {
			return fmt.Errorf("check card exists: %w", err)
		}
		if !exists {
			return domain.ErrCardNotFound
		}
	}
	return nil
}

const cardSelect = `
	SELECT c.id, c.name, c.link, c.owner_id, c.created_at,
	       COALESCE(ARRAY_AGG(l.user_id ORDER BY l.liked_at)
	                FILTER (WHERE l.user_id IS NOT NULL), '{}')
	FROM cards c
	LEFT JOIN card_likes l ON l.card_id = c.id`

func scanCard(row pgx.Row) (*domain.Card, error) {
	var c domain.Card
	err := row.Scan(&c.ID, &c.Name, &c.Link, &c.OwnerID, &c.CreatedAt, &c.Likes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCardNotFound
		}
		return nil, fmt.Errorf("scan card: %w", err)
	}
	if c.Likes == nil {
		c.Likes = []string{}
	}
	return &c, nil
}
