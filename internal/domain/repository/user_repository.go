package repository

import (
	"context"

	"github.com/google/uuid"

	"ferroblog/internal/domain/entity"
	"ferroblog/internal/domain/valueobject"
)

// UserRepository abstracts user persistence. Find methods return (nil, nil)
// when no row matches; errors are reserved for infrastructure failures.
type UserRepository interface {
	// Save inserts a new user. A unique-constraint violation on email is
	// reported as an AlreadyExists error by the implementation; the database
	// constraint is the authoritative guard against concurrent registration.
	Save(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error)
}
