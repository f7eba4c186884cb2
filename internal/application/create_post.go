package application

import (
	"context"

	"github.com/google/uuid"

	"ferroblog/internal/domain/entity"
	"ferroblog/internal/domain/repository"
	"ferroblog/internal/domain/valueobject"
)

// CreatePost validates and persists a new post for an authenticated author.
type CreatePost struct {
	posts repository.PostRepository
}

func NewCreatePost(posts repository.PostRepository) *CreatePost {
	return &CreatePost{posts: posts}
}

func (uc *CreatePost) Execute(ctx context.Context, title, content string, authorID uuid.UUID) (*PostResponse, error) {
	postTitle, err := valueobject.NewPostTitle(title)
	if err != nil {
		return nil, err
	}
	postContent, err := valueobject.NewPostContent(content)
	if err != nil {
		return nil, err
	}

	post := entity.NewPost(postTitle, postContent, authorID)
	if err := uc.posts.Save(ctx, post); err != nil {
		return nil, err
	}

	resp := postResponse(post)
	return &resp, nil
}
