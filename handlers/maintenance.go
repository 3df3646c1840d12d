package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tourgate/services/resolver"
)

func flushCache(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.FlushCache(c.Request.Context()); err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "flushed"})
	}
}

func purgeReportCache(svc resolver.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		removed, err := svc.PurgeReportCache(c.Request.Context())
		if err != nil {
			writeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "purged", "removed": removed})
	}
}
