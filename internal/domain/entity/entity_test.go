package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"ferroblog/internal/domain/valueobject"
)

func TestNewUser(t *testing.T) {
	email, _ := valueobject.NewEmail("a@b.com")
	hash := valueobject.NewPasswordHash("hashed")

	u := NewUser(email, hash)
	if u.ID == uuid.Nil {
		t.Fatal("expected a fresh id")
	}
	if u.Email != email {
		t.Fatalf("unexpected email %v", u.Email)
	}
	if u.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
	if time.Since(u.CreatedAt) > time.Minute {
		t.Fatal("created_at should be roughly now")
	}
}

func TestNewUserAssignsUniqueIDs(t *testing.T) {
	email, _ := valueobject.NewEmail("a@b.com")
	hash := valueobject.NewPasswordHash("hashed")
	if NewUser(email, hash).ID == NewUser(email, hash).ID {
		t.Fatal("two users must not share an id")
	}
}

func TestNewPostTimestamps(t *testing.T) {
	title, _ := valueobject.NewPostTitle("T")
	content, _ := valueobject.NewPostContent("C")
	author := uuid.New()

	p := NewPost(title, content, author)
	if p.ID == uuid.Nil {
		t.Fatal("expected a fresh id")
	}
	if p.AuthorID != author {
		t.Fatalf("unexpected author %v", p.AuthorID)
	}
	if !p.UpdatedAt.Equal(p.CreatedAt) {
		t.Fatalf("updated_at must equal created_at at creation: %v vs %v", p.UpdatedAt, p.CreatedAt)
	}
}

func TestNewComment(t *testing.T) {
	content, _ := valueobject.NewCommentContent("nice post")
	post := uuid.New()
	author := uuid.New()

	c := NewComment(content, post, author)
	if c.ID == uuid.Nil {
		t.Fatal("expected a fresh id")
	}
	if c.PostID != post || c.AuthorID != author {
		t.Fatal("post/author references not preserved")
	}
	if c.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be set")
	}
}
