package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/moscow89er/mesto-api/internal/apperror"
	"github.com/moscow89er/mesto-api/internal/domain"
	"github.com/moscow89er/mesto-api/internal/repository"
)

const msgUserNotFound = "Requested user not found"

type UserUsecase struct {
	users repository.UserRepository
}

func NewUserUsecase(users repository.UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

func (u *UserUsecase) List(ctx context.Context) ([]*domain.User, error) {
	users, err := u.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

func (u *UserUsecase) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperror.NewNotFound(msgUserNotFound, err)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateProfile mutates the caller's own record only; the id always comes
// from the verified token, never from the request.
func (u *UserUsecase) UpdateProfile(ctx context.Context, callerID, name, about string) (*domain.User, error) {
	user, err := u.users.UpdateProfile(ctx, callerID, name, about)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperror.NewNotFound(msgUserNotFound, err)
		}
		return nil, fmt.Errorf("update profile: %w", err)
	}
	return user, nil
}

func (u *UserUsecase) UpdateAvatar(ctx context.Context, callerID, avatar string) (*domain.User, error) {
	user, err := u.users.UpdateAvatar(ctx, callerID, avatar)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, apperror.NewNotFound(msgUserNotFound, err)
		}
		return nil, fmt.Errorf("update avatar: %w", err)
	}
	return user, nil
}
