package handler

import (
	"net/http"
	"strconv"

	"teamvote/internal/apperr"
	"teamvote/internal/logger"

	"github.com/gin-gonic/gin"
)

// fail renders a service error as {"error": msg} with its taxonomy status.
// Unclassified errors are logged and masked as a plain 500.
func fail(c *gin.Context, err error) {
	status := apperr.Status(err)
	if status == http.StatusInternalServerError {
		logger.Error("request failed", "path", c.FullPath(), "err", err)
		c.JSON(status, gin.H{"error": "internal error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func pathID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}
