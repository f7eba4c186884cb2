package application

import (
	"context"

	"github.com/google/uuid"

	"ferroblog/internal/domain/domainerr"
	"ferroblog/internal/domain/entity"
	"ferroblog/internal/domain/repository"
	"ferroblog/internal/domain/valueobject"
)

// CreateComment attaches a comment to an existing post. The existence check
// runs before content validation, so an unknown post is NotFound even when the
// content is invalid.
type CreateComment struct {
	comments repository.CommentRepository
	posts    repository.PostRepository
}

func NewCreateComment(comments repository.CommentRepository, posts repository.PostRepository) *CreateComment {
	return &CreateComment{comments: comments, posts: posts}
}

func (uc *CreateComment) Execute(ctx context.Context, content string, postID, authorID uuid.UUID) (*CommentResponse, error) {
	post, err := uc.posts.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domainerr.NotFound("post not found")
	}

	commentContent, err := valueobject.NewCommentContent(content)
	if err != nil {
		return nil, err
	}

	comment := entity.NewComment(commentContent, postID, authorID)
	if err := uc.comments.Save(ctx, comment); err != nil {
		return nil, err
	}

	resp := commentResponse(comment)
	return &resp, nil
}
