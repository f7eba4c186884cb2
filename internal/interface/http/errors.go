package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"ferroblog/internal/domain/domainerr"
	"ferroblog/pkg/response"
)

// respondDomainError maps the error taxonomy to HTTP statuses:
// Validation 400, AlreadyExists 409, NotFound 404, Infra 500 with the reason
// redacted from the client and logged server-side.
func respondDomainError(c *gin.Context, logger *logrus.Logger, err error) {
	switch domainerr.KindOf(err) {
	case domainerr.KindValidation:
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case domainerr.KindAlreadyExists:
		response.Error[any](c, http.StatusConflict, err.Error(), nil)
	case domainerr.KindNotFound:
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	default:
		if logger != nil {
			logger.WithFields(logrus.Fields{
				"error":      err.Error(),
				"path":       c.FullPath(),
				"request_id": c.GetString("request_id"),
			}).Error("infrastructure error")
		}
		response.Error[any](c, http.StatusInternalServerError, "internal server error", nil)
	}
}
