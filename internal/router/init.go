package router

import (
	"ferroblog/internal/application"
	"ferroblog/internal/container"
	pginfra "ferroblog/internal/infrastructure/postgres"
	handlers "ferroblog/internal/interface/http"
	"ferroblog/internal/router/modules"
)

// InitModules wires repositories, use cases and handlers from container
// singletons and registers the feature modules. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()
	tokens := container.GetTokenService()
	passwords := container.GetPasswordService()

	users := pginfra.NewUserRepository(pool)
	posts := pginfra.NewPostRepository(pool)
	comments := pginfra.NewCommentRepository(pool)

	authHandler := handlers.NewAuthHandler(
		application.NewRegisterUser(users, passwords, tokens),
		application.NewLoginUser(users, passwords, tokens),
		logger,
	)
	postHandler := handlers.NewPostHandler(
		application.NewCreatePost(posts),
		application.NewGetPost(posts),
		application.NewListPosts(posts),
		logger,
	)
	commentHandler := handlers.NewCommentHandler(
		application.NewCreateComment(comments, posts),
		application.NewListComments(comments),
		logger,
	)

	r.Add(modules.NewAuthModule(authHandler))
	r.Add(modules.NewPostModule(postHandler, tokens))
	r.Add(modules.NewCommentModule(commentHandler, tokens))
}
