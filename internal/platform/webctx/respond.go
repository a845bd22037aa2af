package webctx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "studytrack/internal/platform/errors"
)

// Fail maps sentinel errors onto the wire contract: missing or invalid
// references are client errors, auth failures are 401, anything else is a
// store failure.
func Fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound),
		errors.Is(err, apperrors.ErrInvalidInput),
		errors.Is(err, apperrors.ErrTaskCompleted),
		errors.Is(err, apperrors.ErrNoActiveSession),
		errors.Is(err, apperrors.ErrUsernameTaken),
		errors.Is(err, apperrors.ErrInvalidCredentials):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
