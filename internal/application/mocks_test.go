package application

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"ferroblog/internal/domain/domainerr"
	"ferroblog/internal/domain/entity"
	"ferroblog/internal/domain/valueobject"
)

// In-memory fakes standing in for the storage and security ports. The user
// repo enforces email uniqueness on Save just like the real schema does, so
// the advisory-check-then-insert race stays observable in tests.

type memUserRepo struct {
	mu      sync.Mutex
	users   []*entity.User
	saveErr error
	findErr error
}

func (r *memUserRepo) Save(_ context.Context, u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return domainerr.AlreadyExists("user with this email already exists")
		}
	}
	r.users = append(r.users, u)
	return nil
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email valueobject.Email) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

type memPostRepo struct {
	mu      sync.Mutex
	posts   []*entity.Post
	saveErr error
}

func (r *memPostRepo) Save(_ context.Context, p *entity.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.posts = append(r.posts, p)
	return nil
}

func (r *memPostRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *memPostRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Post, len(r.posts))
	copy(out, r.posts)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, limit, offset), nil
}

func (r *memPostRepo) FindByAuthor(_ context.Context, authorID uuid.UUID, limit, offset int) ([]*entity.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Post
	for _, p := range r.posts {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return page(out, limit, offset), nil
}

type memCommentRepo struct {
	mu       sync.Mutex
	comments []*entity.Comment
	saveErr  error
}

func (r *memCommentRepo) Save(_ context.Context, c *entity.Comment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.comments = append(r.comments, c)
	return nil
}

func (r *memCommentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.comments {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (r *memCommentRepo) FindByPost(_ context.Context, postID uuid.UUID, limit, offset int) ([]*entity.Comment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Comment
	for _, c := range r.comments {
		if c.PostID == postID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return page(out, limit, offset), nil
}

func page[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return nil
	}
	items = items[offset:]
	if limit < len(items) {
		items = items[:limit]
	}
	return items
}

type fakeHasher struct{}

func (fakeHasher) Hash(_ context.Context, plain valueobject.PlainPassword) (valueobject.PasswordHash, error) {
	return valueobject.NewPasswordHash("hashed_" + plain.Raw()), nil
}

type fakeVerifier struct{}

func (fakeVerifier) Verify(plain, hash string) (bool, error) {
	return strings.TrimPrefix(hash, "hashed_") == plain, nil
}

type errVerifier struct{ err error }

func (v errVerifier) Verify(string, string) (bool, error) { return false, v.err }

type fakeIssuer struct{}

func (fakeIssuer) Generate(userID uuid.UUID, _ string) (string, error) {
	return "token_" + userID.String(), nil
}
