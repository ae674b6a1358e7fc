package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/craftnet/backend/internal/middleware"
	"github.com/craftnet/backend/internal/service"
	"github.com/craftnet/backend/internal/types"
)

type FollowerHandler struct {
	followerService service.IFollowerService
	authService     *service.AuthService
}

func NewFollowerHandler(followerService service.IFollowerService, authService *service.AuthService) *FollowerHandler {
	return &FollowerHandler{
		followerService: followerService,
		authService:     authService,
	}
}

func (h *FollowerHandler) RegisterRoutes(router *gin.RouterGroup) {
	followers := router.Group("/followers")
	{
		followers.GET("", middleware.OptionalAuthMiddleware(h.authService), h.ListFollowers)
		followers.POST("", middleware.AuthMiddleware(h.authService), h.Follow)
		followers.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.Unfollow)
	}
}

func (h *FollowerHandler) ListFollowers(c *gin.Context) {
	edges, err := h.followerService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]FollowerResponse, len(edges))
	for i := range edges {
		responses[i] = newFollowerResponse(&edges[i])
	}

	c.JSON(http.StatusOK, gin.H{"followers": responses})
}

func (h *FollowerHandler) Follow(c *gin.Context) {
	userID, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req types.CreateFollowerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	followedID, err := uuid.Parse(req.FollowedID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": service.ErrNotFound.Error()})
		return
	}

	edge, err := h.followerService.Follow(c.Request.Context(), userID, followedID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newFollowerResponse(edge))
}

func (h *FollowerHandler) Unfollow(c *gin.Context) {
	userID, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.followerService.Unfollow(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
