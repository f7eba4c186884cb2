package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"ferroblog/internal/application"
	"ferroblog/internal/domain/domainerr"
	"ferroblog/internal/interface/middleware"
	"ferroblog/pkg/response"
	"ferroblog/pkg/validation"
)

type CommentHandler struct {
	Create *application.CreateComment
	List   *application.ListComments
	Logger *logrus.Logger
}

func NewCommentHandler(create *application.CreateComment, list *application.ListComments, logger *logrus.Logger) *CommentHandler {
	return &CommentHandler{Create: create, List: list, Logger: logger}
}

type createCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// HandleCreate POST /api/posts/:id/comments (auth required)
func (h *CommentHandler) HandleCreate(c *gin.Context) {
	authorID, ok := middleware.UserID(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondDomainError(c, h.Logger, domainerr.Validation("invalid post id"))
		return
	}
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Create.Execute(c.Request.Context(), req.Content, postID, authorID)
	if err != nil {
		respondDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, res, "comment created", nil)
}

// HandleList GET /api/posts/:id/comments?limit=&offset=
func (h *CommentHandler) HandleList(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondDomainError(c, h.Logger, domainerr.Validation("invalid post id"))
		return
	}
	limit, offset := pageParams(c)
	res, err := h.List.Execute(c.Request.Context(), postID, limit, offset)
	if err != nil {
		respondDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res, "comments", nil)
}
