package entity

import (
	"time"

	"github.com/google/uuid"

	"ferroblog/internal/domain/valueobject"
)

// Post is an authored article. AuthorID references a User but the reference is
// not enforced here; the storage schema owns it.
type Post struct {
	ID        uuid.UUID
	Title     valueobject.PostTitle
	Content   valueobject.PostContent
	AuthorID  uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewPost creates a post with UpdatedAt equal to CreatedAt. There is no edit
// operation, so UpdatedAt never changes after this.
func NewPost(title valueobject.PostTitle, content valueobject.PostContent, authorID uuid.UUID) *Post {
	now := time.Now().UTC()
	return &Post{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		AuthorID:  authorID,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
