package repository

import (
	"context"

	"github.com/google/uuid"

	"ferroblog/internal/domain/entity"
)

// PostRepository abstracts post persistence. Listings are pages ordered by
// created_at descending; no maximum page size is enforced here.
type PostRepository interface {
	Save(ctx context.Context, post *entity.Post) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Post, error)
	FindByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*entity.Post, error)
}
