package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/moscow89er/mesto-api/internal/apperror"
	"github.com/moscow89er/mesto-api/internal/domain"
	"github.com/moscow89er/mesto-api/internal/password"
	"github.com/moscow89er/mesto-api/internal/repository"
	"github.com/moscow89er/mesto-api/internal/token"
)

const (
	msgEmailTaken     = "A user with this email already exists"
	msgBadCredentials = "Incorrect email or password"
)

type AuthUsecase struct {
	users  repository.UserRepository
	tokens *token.Service
}

func NewAuthUsecase(users repository.UserRepository, tokens *token.Service) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

type RegisterInput struct {
	Name     string
	About    string
	Avatar   string
	Email    string
	Password string
}

// Register hashes the password and persists the new user. The returned user
// never carries the password hash.
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (*domain.User, error) {
	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := u.users.Create(ctx, &domain.User{
		Name:         in.Name,
		About:        in.About,
		Avatar:       in.Avatar,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmailTaken) {
			return nil, apperror.NewConflict(msgEmailTaken, err)
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	created.PasswordHash = ""
	return created, nil
}

// Login verifies the credentials and issues a bearer token. An unknown email
// and a wrong password are indistinguishable to the caller.
func (u *AuthUsecase) Login(ctx context.Context, email, plaintext string) (string, string, error) {
	user, err := u.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", "", apperror.NewUnauthorized(msgBadCredentials, nil)
		}
		return "", "", fmt.Errorf("find user: %w", err)
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		return "", "", apperror.NewUnauthorized(msgBadCredentials, nil)
	}

	signed, err := u.tokens.Issue(user.ID)
	if err != nil {
		return "", "", fmt.Errorf("issue token: %w", err)
	}
	return signed, user.ID, nil
}
