package valueobject

import (
	"strings"

	"ferroblog/internal/domain/domainerr"
)

const maxCommentContentLen = 2000

// CommentContent is a validated comment body.
type CommentContent struct {
	value string
}

func NewCommentContent(raw string) (CommentContent, error) {
	if strings.TrimSpace(raw) == "" {
		return CommentContent{}, domainerr.Validation("comment content cannot be empty")
	}
	if len(raw) > maxCommentContentLen {
		return CommentContent{}, domainerr.Validation("comment content cannot exceed 2000 characters")
	}
	return CommentContent{value: raw}, nil
}

func (c CommentContent) String() string { return c.value }
