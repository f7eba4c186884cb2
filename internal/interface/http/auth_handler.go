package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ferroblog/internal/application"
	"ferroblog/pkg/response"
	"ferroblog/pkg/validation"
)

type AuthHandler struct {
	Register *application.RegisterUser
	Login    *application.LoginUser
	Logger   *logrus.Logger
}

func NewAuthHandler(register *application.RegisterUser, login *application.LoginUser, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Register: register, Login: login, Logger: logger}
}

type credentialsRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// HandleRegister POST /api/auth/register
func (h *AuthHandler) HandleRegister(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Register.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, res, "registered", nil)
}

// HandleLogin POST /api/auth/login
func (h *AuthHandler) HandleLogin(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Login.Execute(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res, "login successful", nil)
}
