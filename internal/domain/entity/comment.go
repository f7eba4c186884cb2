package entity

import (
	"time"

	"github.com/google/uuid"

	"ferroblog/internal/domain/valueobject"
)

// Comment is attached to a post. The rule that the post must exist is enforced
// by the create-comment use case, not here.
type Comment struct {
	ID        uuid.UUID
	Content   valueobject.CommentContent
	PostID    uuid.UUID
	AuthorID  uuid.UUID
	CreatedAt time.Time
}

func NewComment(content valueobject.CommentContent, postID, authorID uuid.UUID) *Comment {
	return &Comment{
		ID:        uuid.New(),
		Content:   content,
		PostID:    postID,
		AuthorID:  authorID,
		CreatedAt: time.Now().UTC(),
	}
}
