package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/produce_ledger/internal/apperrors"
	"github.com/SscSPs/produce_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// requestLogger returns the request-scoped logger, or the default logger when
// the logging middleware is not installed.
func requestLogger(c *gin.Context) *slog.Logger {
	if logger := middleware.GetLoggerFromCtx(c.Request.Context()); logger != nil {
		return logger
	}
	return slog.Default()
}

// respondError maps err onto a status code and a message a market operator can act on.
// Client errors also carry the underlying detail.
func respondError(c *gin.Context, logger *slog.Logger, err error, action string) {
	status := apperrors.StatusCode(err)
	body := gin.H{"error": apperrors.UserMessage(err)}
	if status < http.StatusInternalServerError {
		logger.Warn("Rejected request: "+action, slog.String("error", err.Error()))
		body["details"] = err.Error()
	} else {
		logger.Error("Failed to "+action, slog.String("error", err.Error()))
	}
	c.JSON(status, body)
}

func respondBindError(c *gin.Context, logger *slog.Logger, err error, what string) {
	logger.Warn("Failed to bind "+what, slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
