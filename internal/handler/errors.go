package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/kyodai-travel/tourbook/internal/service"
)

// respondError maps service errors onto HTTP responses. Storage failures are
// logged with detail but surface as a generic message.
func respondError(ctx *gin.Context, logger *zap.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		ctx.JSON(401, gin.H{
			"error": "Please log in",
		})
	case errors.Is(err, service.ErrNotFound):
		ctx.JSON(404, gin.H{
			"error": "Resource not found",
		})
	case errors.Is(err, service.ErrEmailTaken):
		ctx.JSON(400, gin.H{
			"error": "Email already registered",
		})
	case errors.Is(err, service.ErrInvalidInput):
		ctx.JSON(400, gin.H{
			"error":  "Invalid request",
			"detail": err.Error(),
		})
	default:
		logger.Error("request failed", zap.String("path", ctx.FullPath()), zap.Error(err))
		ctx.JSON(500, gin.H{
			"error":   "Internal server error",
			"message": "Something went wrong, please try again later",
		})
	}
}
