package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soundthread/internal/middleware"
	"soundthread/internal/services"
	"soundthread/internal/utils"
	"soundthread/internal/validation"
)

func statusFor(kind validation.Kind) int {
	switch kind {
	case validation.KindUnauthorized:
		return http.StatusUnauthorized
	case validation.KindForbidden:
		return http.StatusForbidden
	case validation.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// RenderViolations writes violations in order; the first one picks the
// status code.
func RenderViolations(c *gin.Context, v validation.Violations) {
	c.JSON(statusFor(v.Kind()), gin.H{"errors": v})
}

// RenderError maps a use case error. Store details never reach the client.
func RenderError(c *gin.Context, err error, message string) {
	if services.IsNotFound(err) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	utils.LogErrorWithUser(middleware.CallerID(c), err, message)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func badRequest(c *gin.Context) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "malformed request"})
}

// respond writes the outcome of a use case. StatusNoContent drops the value.
func respond[T any](c *gin.Context, status int, out services.Outcome[T], err error, message string) {
	if err != nil {
		RenderError(c, err, message)
		return
	}
	if !out.OK() {
		RenderViolations(c, out.Violations)
		return
	}
	if status == http.StatusNoContent {
		c.Status(status)
		return
	}
	c.JSON(status, out.Value)
}

func paramID(c *gin.Context, name string) int64 {
	return utils.ParseID(c.Param(name))
}

type textBody struct {
	Text string `json:"text"`
}
