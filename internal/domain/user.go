package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already taken")
)

// User is an account holder. PasswordHash is only ever populated on the
// login path and must never leave the service layer.
type User struct {
	ID           string
	Name         string
	About        string
	Avatar       string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
