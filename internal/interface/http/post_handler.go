package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"ferroblog/internal/application"
	"ferroblog/internal/domain/domainerr"
	"ferroblog/internal/interface/middleware"
	"ferroblog/pkg/response"
	"ferroblog/pkg/validation"
)

const (
	defaultPageLimit  = 20
	defaultPageOffset = 0
)

type PostHandler struct {
	Create *application.CreatePost
	Get    *application.GetPost
	List   *application.ListPosts
	Logger *logrus.Logger
}

func NewPostHandler(create *application.CreatePost, get *application.GetPost, list *application.ListPosts, logger *logrus.Logger) *PostHandler {
	return &PostHandler{Create: create, Get: get, List: list, Logger: logger}
}

type createPostRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// HandleCreate POST /api/posts (auth required)
func (h *PostHandler) HandleCreate(c *gin.Context) {
	authorID, ok := middleware.UserID(c)
	if !ok {
		response.Error[any](c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	res, err := h.Create.Execute(c.Request.Context(), req.Title, req.Content, authorID)
	if err != nil {
		respondDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusCreated, res, "post created", nil)
}

// HandleGet GET /api/posts/:id
func (h *PostHandler) HandleGet(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondDomainError(c, h.Logger, domainerr.Validation("invalid post id"))
		return
	}
	res, err := h.Get.Execute(c.Request.Context(), postID)
	if err != nil {
		respondDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res, "post", nil)
}

// HandleList GET /api/posts?limit=&offset=&author_id=
func (h *PostHandler) HandleList(c *gin.Context) {
	limit, offset := pageParams(c)

	if raw := c.Query("author_id"); raw != "" {
		authorID, err := uuid.Parse(raw)
		if err != nil {
			respondDomainError(c, h.Logger, domainerr.Validation("invalid author id"))
			return
		}
		res, err := h.List.ExecuteByAuthor(c.Request.Context(), authorID, limit, offset)
		if err != nil {
			respondDomainError(c, h.Logger, err)
			return
		}
		response.Success(c, http.StatusOK, res, "posts", nil)
		return
	}

	res, err := h.List.Execute(c.Request.Context(), limit, offset)
	if err != nil {
		respondDomainError(c, h.Logger, err)
		return
	}
	response.Success(c, http.StatusOK, res, "posts", nil)
}

// pageParams reads limit/offset query params with defaults; negative or
// unparseable values fall back to the defaults.
func pageParams(c *gin.Context) (int, int) {
	limit := defaultPageLimit
	offset := defaultPageOffset
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			limit = v
		}
	}
	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}
	return limit, offset
}
