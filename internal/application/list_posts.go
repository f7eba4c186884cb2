package application

import (
	"context"

	"github.com/google/uuid"

	"ferroblog/internal/domain/entity"
	"ferroblog/internal/domain/repository"
)

// ListPosts returns a page of posts ordered by created_at descending. Count in
// the response is the page length; total-count semantics are out of scope.
type ListPosts struct {
	posts repository.PostRepository
}

func NewListPosts(posts repository.PostRepository) *ListPosts {
	return &ListPosts{posts: posts}
}

func (uc *ListPosts) Execute(ctx context.Context, limit, offset int) (*ListPostsResponse, error) {
	posts, err := uc.posts.FindAll(ctx, limit, offset)
	if err != nil {
		return nil, err
	}
	return listPostsResponse(posts), nil
}

// ExecuteByAuthor pages the posts of a single author, same ordering.
func (uc *ListPosts) ExecuteByAuthor(ctx context.Context, authorID uuid.UUID, limit, offset int) (*ListPostsResponse, error) {
	posts, err := uc.posts.FindByAuthor(ctx, authorID, limit, offset)
	if err != nil {
		return nil, err
	}
	return listPostsResponse(posts), nil
}

func listPostsResponse(posts []*entity.Post) *ListPostsResponse {
	out := make([]PostResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, postResponse(p))
	}
	return &ListPostsResponse{Posts: out, Count: len(out)}
}
