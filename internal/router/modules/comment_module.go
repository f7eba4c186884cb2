package modules

import (
	"github.com/gin-gonic/gin"

	"ferroblog/internal/domain/security"
	handlers "ferroblog/internal/interface/http"
	"ferroblog/internal/interface/middleware"
)

type CommentModule struct {
	Handler *handlers.CommentHandler
	Tokens  security.TokenVerifier
}

func NewCommentModule(h *handlers.CommentHandler, tokens security.TokenVerifier) *CommentModule {
	return &CommentModule{Handler: h, Tokens: tokens}
}

func (m *CommentModule) Register(rg *gin.RouterGroup) {
	rg.GET("/posts/:id/comments", m.Handler.HandleList)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Tokens))
	{
		auth.POST("/posts/:id/comments", m.Handler.HandleCreate)
	}
}
