package entity

import (
	"time"

	"github.com/google/uuid"

	"ferroblog/internal/domain/valueobject"
)

// User is the aggregate root for registered accounts. The plain password is
// never held here; only its hash.
type User struct {
	ID           uuid.UUID
	Email        valueobject.Email
	PasswordHash valueobject.PasswordHash
	CreatedAt    time.Time
}

// NewUser is the only creation path for users: fresh random identity and
// current timestamp.
func NewUser(email valueobject.Email, passwordHash valueobject.PasswordHash) *User {
	return &User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
