package application

import (
	"time"

	"ferroblog/internal/domain/entity"
)

// AuthResponse is returned by both Register and Login; the shapes are
// identical by contract.
type AuthResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}

// PostResponse is the full post projection. Timestamps are RFC3339 strings.
type PostResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	AuthorID  string `json:"author_id"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ListPostsResponse carries one page. Count is the page length, not the total
// number of matching rows.
type ListPostsResponse struct {
	Posts []PostResponse `json:"posts"`
	Count int            `json:"count"`
}

type CommentResponse struct {
	ID        string `json:"id"`
	Content   string `json:"content"`
	PostID    string `json:"post_id"`
	AuthorID  string `json:"author_id"`
	CreatedAt string `json:"created_at"`
}

type ListCommentsResponse struct {
	Comments []CommentResponse `json:"comments"`
	Count    int               `json:"count"`
}

func postResponse(p *entity.Post) PostResponse {
	return PostResponse{
		ID:        p.ID.String(),
		Title:     p.Title.String(),
		Content:   p.Content.String(),
		AuthorID:  p.AuthorID.String(),
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
		UpdatedAt: p.UpdatedAt.Format(time.RFC3339),
	}
}

func commentResponse(c *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        c.ID.String(),
		Content:   c.Content.String(),
		PostID:    c.PostID.String(),
		AuthorID:  c.AuthorID.String(),
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
	}
}
