package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/craftnet/backend/internal/types"
)

type stubValidator struct {
	claims *types.TokenClaims
	err    error
}

func (v *stubValidator) ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error) {
	return v.claims, v.err
}

func validClaims() *types.TokenClaims {
	return &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{ID: "session-1"},
		UserID:           uuid.New(),
		Username:         "mariab",
	}
}

func performWithHeader(handler gin.HandlerFunc, header string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)
	if header != "" {
		c.Request.Header.Set("Authorization", header)
	}
	handler(c)
	return w, c
}

func TestAuthMiddleware(t *testing.T) {
	claims := validClaims()

	w, c := performWithHeader(AuthMiddleware(&stubValidator{claims: claims}), "Bearer sometoken")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, claims.UserID, c.MustGet("user_id"))
	assert.Equal(t, "mariab", c.MustGet("username"))
	assert.Equal(t, "session-1", c.MustGet("session_id"))

	w, _ = performWithHeader(AuthMiddleware(&stubValidator{claims: claims}), "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = performWithHeader(AuthMiddleware(&stubValidator{claims: claims}), "NotBearer sometoken")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = performWithHeader(AuthMiddleware(&stubValidator{err: errors.New("bad token")}), "Bearer sometoken")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuthMiddleware(t *testing.T) {
	claims := validClaims()

	// With a valid token the identity lands in the context.
	w, c := performWithHeader(OptionalAuthMiddleware(&stubValidator{claims: claims}), "Bearer sometoken")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, claims.UserID, c.MustGet("user_id"))

	// Without a token the request proceeds anonymously.
	w, c = performWithHeader(OptionalAuthMiddleware(&stubValidator{claims: claims}), "")
	assert.Equal(t, http.StatusOK, w.Code)
	_, exists := c.Get("user_id")
	assert.False(t, exists)

	// An invalid token is treated like no token at all.
	w, c = performWithHeader(OptionalAuthMiddleware(&stubValidator{err: errors.New("bad token")}), "Bearer sometoken")
	assert.Equal(t, http.StatusOK, w.Code)
	_, exists = c.Get("user_id")
	assert.False(t, exists)
}
