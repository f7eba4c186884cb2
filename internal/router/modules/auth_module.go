package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"ferroblog/internal/container"
	handlers "ferroblog/internal/interface/http"
	"ferroblog/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits; registration is tighter
	// than login.
	cfg := container.GetConfig()
	registerLimiter := middleware.RateLimit(container.GetRedis(), cfg.RegisterRateLimit, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), cfg.LoginRateLimit, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/auth/register", registerLimiter, m.Handler.HandleRegister)
	rg.POST("/auth/login", loginLimiter, m.Handler.HandleLogin)
}
