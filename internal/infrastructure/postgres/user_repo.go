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

const pgUniqueViolation = "23505"

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	// Optional fields fall back to the column defaults, mirroring the
	// profile defaults new accounts have always had.
	query := `
		INSERT INTO users (id, name, about, avatar, email, password_hash)
		VALUES ($1,
		        COALESCE(NULLIF($2, ''), 'Jacques-Yves Cousteau'),
		        COALESCE(NULLIF($3, ''), 'Explorer'),
		        COALESCE(NULLIF($4, ''), 'https://pictures.s3.yandex.net/resources/jacques-cousteau_1604399756.png'),
		        $5, $6)
		RETURNING id, name, about, avatar, email, created_at, updated_at`

	row := r.pool.QueryRow(ctx, query,
		objectid.New(),
		user.Name,
		user.About,
		user.Avatar,
		user.Email,
		user.PasswordHash,
	)

	created, err := scanUser(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, domain.ErrEmailTaken
		}
		return nil, err
	}
	return created, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, name, about, avatar, email, created_at, updated_at
		FROM users
		WHERE id = $1`

	return scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, name, about, avatar, email, password_hash, created_at, updated_at
		FROM users
		WHERE email = $1`

	var u domain.User
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email,
		&u.PasswordHash, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return &u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	query := `
		SELECT id, name, about, avatar, email, created_at, updated_at
		FROM users
		ORDER BY created_at`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id, name, about string) (*domain.User, error) {
	query := `
		UPDATE users
		SET    name = $2, about = $3, updated_at = NOW()
		WHERE  id = $1
		RETURNING id, name, about, avatar, email, created_at, updated_at`

	return scanUser(r.pool.QueryRow(ctx, query, id, name, about))
}

func (r *UserRepository) UpdateAvatar(ctx context.Context, id, avatar string) (*domain.User, error) {
	query := `
		UPDATE users
		SET    avatar = $2, updated_at = NOW()
		WHERE  id = $1
		RETURNING id, name, about, avatar, email, created_at, updated_at`

	return scanUser(r.pool.QueryRow(ctx, query, id, avatar))
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Name, &u.About, &u.Avatar, &u.Email, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}
	return &u, nil
}
