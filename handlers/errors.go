package handlers

import (
	"errors"
	"net/http"

	"quizapi/services"

	"github.com/gin-gonic/gin"
)

// writeServiceError maps service errors onto HTTP statuses: validation
// failures become 400, missing entities 404, anything else 500 with the
// underlying message exposed (this is an internal development tool).
func writeServiceError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, services.ErrQuizNotFound),
		errors.Is(err, services.ErrQuestionNotFound),
		errors.Is(err, services.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
