package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/craftnet/backend/internal/service"
)

// identityFrom returns the authenticated caller's id, or nil for anonymous
// requests.
func identityFrom(c *gin.Context) *uuid.UUID {
	v, ok := c.Get("user_id")
	if !ok {
		return nil
	}
	id, ok := v.(uuid.UUID)
	if !ok {
		return nil
	}
	return &id
}

// mustIdentity returns the caller's id on routes behind the auth
// middleware, replying 401 when it is somehow absent.
func mustIdentity(c *gin.Context) (uuid.UUID, bool) {
	id := identityFrom(c)
	if id == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not authenticated"})
		return uuid.Nil, false
	}
	return *id, true
}

// parseID parses a :id route parameter, replying 404 for malformed ids so
// /posts/garbage behaves like any other miss.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrNotFound.Error()})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps domain errors onto status codes. Everything the
// services raise deliberately is a 4xx; anything unrecognized is a 500.
func respondError(c *gin.Context, err error) {
	var companyExists *service.CompanyExistsError
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUnauthenticated), errors.Is(err, service.ErrInvalidCredentials), errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrCompanyLimit):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
	case errors.As(err, &companyExists), errors.Is(err, service.ErrDuplicateFollow), errors.Is(err, service.ErrUserExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSelfFollow):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// respondBindError turns gin binding failures into field-scoped messages.
func respondBindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %s validation", strings.ToLower(fe.Field()), fe.Tag()))
		}
		c.JSON(http.StatusBadRequest, gin.H{"errors": msgs})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
}
