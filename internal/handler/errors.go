package handler

import (
	"errors"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/Baaaki/gigflow/internal/service"
	"github.com/Baaaki/gigflow/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MapErrorToHTTP maps service errors to an HTTP status and client message.
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return http.StatusUnauthorized, sentence(service.PublicMessage(err))
	case errors.Is(err, service.ErrForbidden):
		return http.StatusForbidden, "Access denied"
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound, sentence(err.Error())
	case errors.Is(err, service.ErrDuplicateBid),
		errors.Is(err, service.ErrSelfBidForbidden):
		return http.StatusBadRequest, sentence(err.Error())
	case errors.Is(err, service.ErrInvalidOperation),
		errors.Is(err, service.ErrValidation):
		return http.StatusBadRequest, sentence(service.PublicMessage(err))
	default:
		return http.StatusInternalServerError, "Server error"
	}
}

func respondError(c *gin.Context, op string, err error) {
	status, message := MapErrorToHTTP(err)
	if status >= http.StatusInternalServerError {
		logger.Log.Error(op+" failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
	}
	c.JSON(status, gin.H{"error": message})
}

// handleBindError answers 400 for a request body that did not parse or validate.
func handleBindError(c *gin.Context, op string, err error) {
	logger.Log.Warn(op+": invalid request body",
		zap.String("ip", c.ClientIP()),
		zap.Error(err),
	)
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
}

func sentence(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
