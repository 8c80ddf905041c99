package handlers

import (
	"errors"
	"net/http"

	dom "taskbill/internal/domain"
	"taskbill/internal/dto"
	"taskbill/internal/platform/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// writeError maps a service error to a status. Only dom.ErrNotFound is
// inspected; everything else is logged and returned as an opaque 500.
func writeError(c *gin.Context, log *logger.Logger, err error, notFound, failed string) {
	if errors.Is(err, dom.ErrNotFound) {
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: notFound})
		return
	}
	log.Error(failed, "error", err, "method", c.Request.Method, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: failed})
}

func parseID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid id"})
		return uuid.Nil, false
	}
	return id, true
}

func badRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
}
