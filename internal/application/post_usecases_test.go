package application

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"ferroblog/internal/domain/domainerr"
	"ferroblog/internal/domain/entity"
	"ferroblog/internal/domain/valueobject"
)

func seededPost(t *testing.T, title string, author uuid.UUID, createdAt time.Time) *entity.Post {
	t.Helper()
	pt, err := valueobject.NewPostTitle(title)
	if err != nil {
		t.Fatal(err)
	}
	pc, err := valueobject.NewPostContent("content of " + title)
	if err != nil {
		t.Fatal(err)
	}
	p := entity.NewPost(pt, pc, author)
	p.CreatedAt = createdAt
	p.UpdatedAt = createdAt
	return p
}

func TestCreatePostSuccess(t *testing.T) {
	repo := &memPostRepo{}
	uc := NewCreatePost(repo)
	author := uuid.New()

	res, err := uc.Execute(context.Background(), "My First Post", "Hello, world!", author)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if res.Title != "My First Post" || res.Content != "Hello, world!" {
		t.Fatalf("unexpected projection %+v", res)
	}
	if res.AuthorID != author.String() {
		t.Fatalf("unexpected author %q", res.AuthorID)
	}
	if res.CreatedAt != res.UpdatedAt {
		t.Fatal("updated_at must equal created_at for a fresh post")
	}
	if len(repo.posts) != 1 {
		t.Fatalf("expected one persisted post, got %d", len(repo.posts))
	}
}

func TestCreatePostPreservesWhitespace(t *testing.T) {
	// Validation trims only to detect blank input; stored values are verbatim.
	uc := NewCreatePost(&memPostRepo{})
	res, err := uc.Execute(context.Background(), "  padded  ", "\tbody\n", uuid.New())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if res.Title != "  padded  " || res.Content != "\tbody\n" {
		t.Fatalf("fields must be stored as given, got %+v", res)
	}
}

func TestCreatePostInvalidInput(t *testing.T) {
	repo := &memPostRepo{}
	uc := NewCreatePost(repo)
	ctx := context.Background()

	cases := []struct {
		name           string
		title, content string
	}{
		{"empty title", "", "some content"},
		{"blank title", "   ", "some content"},
		{"empty content", "a title", ""},
		{"title too long", string(make([]byte, 201)), "some content"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(ctx, tc.title, tc.content, uuid.New())
			if !domainerr.IsKind(err, domainerr.KindValidation) {
				t.Fatalf("expected Validation, got %v", err)
			}
		})
	}
	if len(repo.posts) != 0 {
		t.Fatal("invalid posts must not be persisted")
	}
}

func TestGetPost(t *testing.T) {
	author := uuid.New()
	post := seededPost(t, "findable", author, time.Now().UTC())
	repo := &memPostRepo{posts: []*entity.Post{post}}
	uc := NewGetPost(repo)
	ctx := context.Background()

	res, err := uc.Execute(ctx, post.ID)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if res.ID != post.ID.String() || res.Title != "findable" {
		t.Fatalf("unexpected projection %+v", res)
	}

	_, err = uc.Execute(ctx, uuid.New())
	if !domainerr.IsKind(err, domainerr.KindNotFound) {
		t.Fatalf("expected NotFound for unknown id, got %v", err)
	}
}

func TestListPostsOrderingAndPaging(t *testing.T) {
	author := uuid.New()
	base := time.Now().UTC()
	repo := &memPostRepo{}
	for i := 0; i < 5; i++ {
		repo.posts = append(repo.posts, seededPost(t, titleN(i), author, base.Add(time.Duration(i)*time.Minute)))
	}
	uc := NewListPosts(repo)
	ctx := context.Background()

	res, err := uc.Execute(ctx, 3, 0)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if res.Count != 3 || len(res.Posts) != 3 {
		t.Fatalf("expected a page of 3, got count=%d len=%d", res.Count, len(res.Posts))
	}
	// Newest first.
	if res.Posts[0].Title != titleN(4) || res.Posts[2].Title != titleN(2) {
		t.Fatalf("unexpected ordering: %q .. %q", res.Posts[0].Title, res.Posts[2].Title)
	}

	res, err = uc.Execute(ctx, 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 2 {
		t.Fatalf("expected remaining 2 on second page, got %d", res.Count)
	}

	res, err = uc.Execute(ctx, 10, 100)
	if err != nil {
		t.Fatal(err)
	}
	if res.Count != 0 || res.Posts == nil {
		t.Fatalf("out-of-range page must be empty but non-nil, got %+v", res)
	}
}

func TestListPostsByAuthor(t *testing.T) {
	alice, bob := uuid.New(), uuid.New()
	base := time.Now().UTC()
	repo := &memPostRepo{posts: []*entity.Post{
		seededPost(t, "alice-1", alice, base),
		seededPost(t, "bob-1", bob, base.Add(time.Minute)),
		seededPost(t, "alice-2", alice, base.Add(2*time.Minute)),
	}}
	uc := NewListPosts(repo)

	res, err := uc.ExecuteByAuthor(context.Background(), alice, 20, 0)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if res.Count != 2 {
		t.Fatalf("expected 2 posts for alice, got %d", res.Count)
	}
	if res.Posts[0].Title != "alice-2" {
		t.Fatalf("expected newest first, got %q", res.Posts[0].Title)
	}
}

func titleN(i int) string {
	return "post-" + string(rune('a'+i))
}
