package repository

import (
	"context"

	"github.com/google/uuid"

	"ferroblog/internal/domain/entity"
)

// CommentRepository abstracts comment persistence. FindByPost pages are
// ordered by created_at ascending.
type CommentRepository interface {
	Save(ctx context.Context, comment *entity.Comment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error)
	FindByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]*entity.Comment, error)
}
