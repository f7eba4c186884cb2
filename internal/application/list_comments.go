package application

import (
	"context"

	"github.com/google/uuid"

	"ferroblog/internal/domain/repository"
)

// ListComments returns a page of a post's comments ordered by created_at
// ascending. Count is the page length.
type ListComments struct {
	comments repository.CommentRepository
}

func NewListComments(comments repository.CommentRepository) *ListComments {
	return &ListComments{comments: comments}
}

func (uc *ListComments) Execute(ctx context.Context, postID uuid.UUID, limit, offset int) (*ListCommentsResponse, error) {
	comments, err := uc.comments.FindByPost(ctx, postID, limit, offset)
	if err != nil {
		return nil, err
	}
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, commentResponse(c))
	}
	return &ListCommentsResponse{Comments: out, Count: len(out)}, nil
}
