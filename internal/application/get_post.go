package application

import (
	"context"

	"github.com/google/uuid"

	"ferroblog/internal/domain/domainerr"
	"ferroblog/internal/domain/repository"
)

// GetPost fetches a single post by id.
type GetPost struct {
	posts repository.PostRepository
}

func NewGetPost(posts repository.PostRepository) *GetPost {
	return &GetPost{posts: posts}
}

func (uc *GetPost) Execute(ctx context.Context, postID uuid.UUID) (*PostResponse, error) {
	post, err := uc.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domainerr.NotFound("post not found")
	}
	resp := postResponse(post)
	return &resp, nil
}
