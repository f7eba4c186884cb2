package valueobject

import (
	"strings"

	"ferroblog/internal/domain/domainerr"
)

const maxPostTitleLen = 200

// PostTitle is a validated post title.
type PostTitle struct {
	value string
}

func NewPostTitle(raw string) (PostTitle, error) {
	if strings.TrimSpace(raw) == "" {
		return PostTitle{}, domainerr.Validation("post title cannot be empty")
	}
	if len(raw) > maxPostTitleLen {
		return PostTitle{}, domainerr.Validation("post title cannot exceed 200 characters")
	}
	return PostTitle{value: raw}, nil
}

func (t PostTitle) String() string { return t.value }

// PostContent is a validated post body. There is no maximum length.
type PostContent struct {
	value string
}

func NewPostContent(raw string) (PostContent, error) {
	if strings.TrimSpace(raw) == "" {
		return PostContent{}, domainerr.Validation("post content cannot be empty")
	}
	return PostContent{value: raw}, nil
}

func (c PostContent) String() string { return c.value }
