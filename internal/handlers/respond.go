package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stayfront/hotel-booking-backend/internal/services"
)

// respondError maps classified service errors onto HTTP statuses.
// Anything unclassified is a store failure and reported as 500
// without leaking the underlying error.
func respondError(c *gin.Context, logger *logrus.Logger, err error) {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		return
	}

	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
		return
	}

	var conflictErr *services.ConflictError
	if errors.As(err, &conflictErr) {
		c.JSON(http.StatusConflict, gin.H{"error": conflictErr.Message})
		return
	}

	if errors.Is(err, services.ErrAlreadyCancelled) || errors.Is(err, services.ErrCannotCancelCompleted) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	logger.WithError(err).Error("Operation failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
