package handler

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/potatolake/internal/logging"
	"github.com/potatolake/internal/service"
)

const internalErrorMessage = "internal server error"

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondInternal logs err and hides it from the client.
func respondInternal(c *gin.Context, err error, action string) {
	logging.Error().
		Err(err).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Msg(action)
	respondError(c, http.StatusInternalServerError, internalErrorMessage)
}

// bindJSON binds and validates the body. Validation failures name the
// offending field; malformed bodies get message.
func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		if text, ok := validationMessage(err); ok {
			respondError(c, http.StatusBadRequest, text)
			return false
		}
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

// respondServiceError maps service errors onto the HTTP taxonomy.
func respondServiceError(c *gin.Context, err error, entity string) {
	var fieldErr *service.FieldError
	switch {
	case errors.As(err, &fieldErr):
		respondError(c, http.StatusBadRequest, fieldErr.Error())
	case errors.Is(err, service.ErrPageNotFound):
		respondError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotFound):
		respondError(c, http.StatusNotFound, entity+" not found")
	case errors.Is(err, service.ErrReorderUnsupported):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		respondInternal(c, err, entity+" request failed")
	}
}

// requestID reads the id from the path when present, else from ?id=.
func requestID(c *gin.Context) (uint, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	if raw == "" {
		raw = strings.TrimSpace(c.Query("id"))
	}
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func parsePositiveInt(raw string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
