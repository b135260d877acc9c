package domain

import (
	"errors"
	"time"
)

var ErrCardNotFound = errors.New("card not found")

// Card is a photo post. Likes holds user IDs, no duplicates; OwnerID is
// immutable after creation and gates deletion.
type Card struct {
	ID        string
	Name      string
	Link      string
	OwnerID   string
	Likes     []string
	CreatedAt time.Time
}
