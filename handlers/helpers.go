package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tourgate/models"
	"tourgate/upstream"
	"tourgate/utils"
)

// expandParam parses the ?expand=a,b query into the relationship names the
// resolver understands.
func expandParam(c *gin.Context) []string {
	raw := c.Query("expand")
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	fields := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			fields = append(fields, trimmed)
		}
	}
	return fields
}

func limitParam(c *gin.Context) int {
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		return 0
	}
	return limit
}

func floatParam(c *gin.Context, name string) *float64 {
	raw := c.Query(name)
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &v
}

// writeError translates the upstream error taxonomy into HTTP statuses.
// Reads rarely land here since adapters degrade them; this is the write path.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, "invalid status", err.Error())
	case errors.Is(err, upstream.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, "upstream rejected the payload", err.Error())
	case errors.Is(err, upstream.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "resource not found", err.Error())
	case errors.Is(err, upstream.ErrTimeout):
		utils.JSONError(c, http.StatusGatewayTimeout, "upstream timed out", err.Error())
	case errors.Is(err, upstream.ErrUnreachable):
		utils.JSONError(c, http.StatusBadGateway, "upstream unreachable", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "internal error", err.Error())
	}
}

// notFound is the uniform 404 for lookups that resolved to nil.
func notFound(c *gin.Context, what string) {
	utils.JSONError(c, http.StatusNotFound, what+" not found", "")
}
