package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/walterBrayan/BackTalentHub/pkg/apperror"
	"github.com/walterBrayan/BackTalentHub/pkg/logger"
)

// ErrorMiddleware drains errors handlers attached via c.Error and writes the
// JSON response for the last one. Handlers never write error bodies
// themselves.
func ErrorMiddleware(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err

		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			status := apperror.ToHTTPStatus(appErr)
			if status >= http.StatusInternalServerError {
				log.Error("request failed", appErr)
			}
			c.JSON(status, appErr.ToJSON())
			return
		}

		log.Error("unhandled error in request", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"message": "An internal server error occurred",
		})
	}
}
