package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craftnet/backend/internal/middleware"
	"github.com/craftnet/backend/internal/service"
	"github.com/craftnet/backend/internal/types"
)

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(router *gin.RouterGroup) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", middleware.AuthMiddleware(h.authService), h.Logout)
	}
	router.DELETE("/account", middleware.AuthMiddleware(h.authService), h.DeleteAccount)
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req types.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token":    token,
		"user_id":  user.ID,
		"username": user.Username,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":    token,
		"user_id":  user.ID,
		"username": user.Username,
	})
}

func (h *AuthHandler) Logout(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if err := h.authService.Logout(c.Request.Context(), sessionID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

// DeleteAccount cascades: profile, account, then every session of the
// caller. The identity comes from the token, never from the payload.
func (h *AuthHandler) DeleteAccount(c *gin.Context) {
	userID, ok := mustIdentity(c)
	if !ok {
		return
	}

	if err := h.authService.DeleteAccount(c.Request.Context(), userID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
