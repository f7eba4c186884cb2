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

type PostRepository struct {
	pool *pgxpool.Pool
}

func NewPostRepository(pool *pgxpool.Pool) *PostRepository {
	return &PostRepository{pool: pool}
}

func (r *PostRepository) Save(ctx context.Context, p *entity.Post) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO posts (id, title, content, author_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, p.ID, p.Title.String(), p.Content.String(), p.AuthorID, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return domainerr.Infra("saving post", err)
	}
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var (
		title     string
		content   string
		authorID  uuid.UUID
		createdAt time.Time
		updatedAt time.Time
	)
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM posts
		WHERE id = $1
	`, id).Scan(&id, &title, &content, &authorID, &createdAt, &updatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, domainerr.Infra("querying post", err)
	}
	return hydratePost(id, title, content, authorID, createdAt, updatedAt)
}

func (r *PostRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM posts
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, domainerr.Infra("listing posts", err)
	}
	return scanPosts(rows)
}

func (r *PostRepository) FindByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) ([]*entity.Post, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, content, author_id, created_at, updated_at
		FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`, authorID, limit, offset)
	if err != nil {
		return nil, domainerr.Infra("listing posts by author", err)
	}
	return scanPosts(rows)
}

func scanPosts(rows pgx.Rows) ([]*entity.Post, error) {
	defer rows.Close()
	var posts []*entity.Post
	for rows.Next() {
		var (
			id        uuid.UUID
			title     string
			content   string
			authorID  uuid.UUID
			createdAt time.Time
			updatedAt time.Time
		)
		if err := rows.Scan(&id, &title, &content, &authorID, &createdAt, &updatedAt); err != nil {
			return nil, domainerr.Infra("scanning post row", err)
		}
		post, err := hydratePost(id, title, content, authorID, createdAt, updatedAt)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, domainerr.Infra("iterating post rows", err)
	}
	return posts, nil
}

// hydratePost revalidates stored values through the value-object factories;
// a row that no longer passes validation is an infrastructure fault, not a
// validation error of the caller.
func hydratePost(id uuid.UUID, title, content string, authorID uuid.UUID, createdAt, updatedAt time.Time) (*entity.Post, error) {
	postTitle, err := valueobject.NewPostTitle(title)
	if err != nil {
		return nil, domainerr.Infra("invalid title in storage", err)
	}
	postContent, err := valueobject.NewPostContent(content)
	if err != nil {
		return nil, domainerr.Infra("invalid content in storage", err)
	}
	return &entity.Post{
		ID:        id,
		Title:     postTitle,
		Content:   postContent,
		AuthorID:  authorID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}

var _ repository.PostRepository = (*PostRepository)(nil)
