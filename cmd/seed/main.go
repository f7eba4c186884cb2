package main

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"ferroblog/config"
	"ferroblog/internal/application"
	"ferroblog/internal/domain/domainerr"
	pginfra "ferroblog/internal/infrastructure/postgres"
	infsec "ferroblog/internal/infrastructure/security"
)

// Seeds a demo author with a couple of posts and comments through the real
// use cases, so the seeded data obeys the same validation as live traffic.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	users := pginfra.NewUserRepository(pool)
	posts := pginfra.NewPostRepository(pool)
	comments := pginfra.NewCommentRepository(pool)
	tokens := infsec.NewTokenService(cfg.JWTSecret, cfg.JWTExpiryHours)
	passwords := infsec.NewBcryptPasswordService(cfg.BcryptCost)

	register := application.NewRegisterUser(users, passwords, tokens)
	login := application.NewLoginUser(users, passwords, tokens)
	createPost := application.NewCreatePost(posts)
	createComment := application.NewCreateComment(comments, posts)

	email := "demo@ferroblog.dev"
	password := "password123"

	auth, err := register.Execute(ctx, email, password)
	if domainerr.IsKind(err, domainerr.KindAlreadyExists) {
		auth, err = login.Execute(ctx, email, password)
	}
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s password=%s\n", auth.UserID, auth.Email, password)

	authorID := mustParse(auth.UserID)
	seedPosts := []struct {
		title   string
		content string
	}{
		{"Hello, world", "First post on the demo blog."},
		{"Second post", "Some longer body text for testing list pages."},
	}
	for _, sp := range seedPosts {
		post, err := createPost.Execute(ctx, sp.title, sp.content, authorID)
		if err != nil {
			log.Fatalf("failed to seed post %q: %v", sp.title, err)
		}
		fmt.Printf("seeded post: id=%s title=%q\n", post.ID, post.Title)

		comment, err := createComment.Execute(ctx, "Nice post!", mustParse(post.ID), authorID)
		if err != nil {
			log.Fatalf("failed to seed comment: %v", err)
		}
		fmt.Printf("seeded comment: id=%s\n", comment.ID)
	}
}

func mustParse(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		log.Fatalf("invalid id %q: %v", s, err)
	}
	return id
}
