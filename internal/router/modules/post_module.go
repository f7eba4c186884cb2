package modules

import (
	"github.com/gin-gonic/gin"

	"ferroblog/internal/domain/security"
	handlers "ferroblog/internal/interface/http"
	"ferroblog/internal/interface/middleware"
)

type PostModule struct {
	Handler *handlers.PostHandler
	Tokens  security.TokenVerifier
}

func NewPostModule(h *handlers.PostHandler, tokens security.TokenVerifier) *PostModule {
	return &PostModule{Handler: h, Tokens: tokens}
}

func (m *PostModule) Register(rg *gin.RouterGroup) {
	rg.GET("/posts", m.Handler.HandleList)
	rg.GET("/posts/:id", m.Handler.HandleGet)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Tokens))
	{
		auth.POST("/posts", m.Handler.HandleCreate)
	}
}
