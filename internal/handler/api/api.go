package api

import (
	"errors"
	"net/http"

	"car-auction/internal/domain/dealer"
	"car-auction/internal/handler/httperr"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errUnauthenticated = errors.New("dealer not authenticated")

func isDomainValidationError(err error) bool {
	return errors.Is(err, dealer.ErrInvalidEmail) ||
		errors.Is(err, dealer.ErrInvalidName) ||
		errors.Is(err, dealer.ErrPasswordTooWeak)
}

// parseUUIDParam reads a UUID path parameter and writes the 400 response
// itself when the value does not parse.
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}
