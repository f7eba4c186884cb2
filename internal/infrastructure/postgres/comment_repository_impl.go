package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"ferroblog/internal/domain/domainerr"
	"ferroblog/internal/domain/entity"
	"ferroblog/internal/domain/repository"
	"ferroblog/internal/domain/valueobject"
)

type CommentRepository struct {
	pool *pgxpool.Pool
}

func NewCommentRepository(pool *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{pool: pool}
}

func (r *CommentRepository) Save(ctx context.Context, c *entity.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, content, post_id, author_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`, c.ID, c.Content.String(), c.PostID, c.AuthorID, c.CreatedAt)
	if err != nil {
		return domainerr.Infra("saving comment", err)
	}
	return nil
}

func (r *CommentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Comment, error) {
	var (
		content   string
		postID    uuid.UUID
		authorID  uuid.UUID
		createdAt time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, content, post_id, author_id, created_at
		FROM comments
		WHERE id = $1
	`, id).Scan(&id, &content, &postID, &authorID, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerr.Infra("querying comment", err)
	}
	return hydrateComment(id, content, postID, authorID, createdAt)
}

func (r *CommentRepository) FindByPost(ctx context.Context, postID uuid.UUID, limit, offset int) ([]*entity.Comment, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, content, post_id, author_id, created_at
		FROM comments
		WHERE post_id = $1
		ORDER BY created_at ASC
		LIMIT $2 OFFSET $3
	`, postID, limit, offset)
	if err != nil {
		return nil, domainerr.Infra("listing comments", err)
	}
	defer rows.Close()

	var comments []*entity.Comment
	for rows.Next() {
		var (
			id        uuid.UUID
			content   string
			pid       uuid.UUID
			authorID  uuid.UUID
			createdAt time.Time
		)
		if err := rows.Scan(&id, &content, &pid, &authorID, &createdAt); err != nil {
			return nil, domainerr.Infra("scanning comment row", err)
		}
		comment, err := hydrateComment(id, content, pid, authorID, createdAt)
		if err != nil {
			return nil, err
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.Infra("iterating comment rows", err)
	}
	return comments, nil
}

func hydrateComment(id uuid.UUID, content string, postID, authorID uuid.UUID, createdAt time.Time) (*entity.Comment, error) {
	commentContent, err := valueobject.NewCommentContent(content)
	if err != nil {
		return nil, domainerr.Infra("invalid content in storage", err)
	}
	return &entity.Comment{
		ID:        id,
		Content:   commentContent,
		PostID:    postID,
		AuthorID:  authorID,
		CreatedAt: createdAt,
	}, nil
}

var _ repository.CommentRepository = (*CommentRepository)(nil)
