package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/craftnet/backend/internal/middleware"
	"github.com/craftnet/backend/internal/service"
	"github.com/craftnet/backend/internal/types"
)

type ProfileHandler struct {
	profileService service.IProfileService
	authService    *service.AuthService
	mediaService   *service.MediaService
}

func NewProfileHandler(profileService service.IProfileService, authService *service.AuthService, mediaService *service.MediaService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		authService:    authService,
		mediaService:   mediaService,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profiles := router.Group("/profiles")
	{
		profiles.GET("", middleware.OptionalAuthMiddleware(h.authService), h.ListProfiles)
		profiles.GET("/:id", middleware.OptionalAuthMiddleware(h.authService), h.GetProfile)
		profiles.PUT("/:id", middleware.AuthMiddleware(h.authService), h.UpdateProfile)
	}
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	opts := service.ProfileListOptions{
		Ordering: c.Query("ordering"),
		Search:   c.Query("search"),
	}
	if v := c.Query("followed_by"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid followed_by filter"})
			return
		}
		opts.FollowedBy = &id
	}
	if v := c.Query("following"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid following filter"})
			return
		}
		opts.Following = &id
	}
	if v := c.Query("employer"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employer filter"})
			return
		}
		opts.Employer = &id
	}

	profiles, err := h.profileService.List(c.Request.Context(), opts)
	if err != nil {
		respondError(c, err)
		return
	}

	identity := identityFrom(c)
	responses := make([]ProfileResponse, len(profiles))
	for i := range profiles {
		image := h.mediaService.ResolveImageURL(c.Request.Context(), profiles[i].ImageKey)
		responses[i] = newProfileResponse(&profiles[i], identity, image)
	}

	c.JSON(http.StatusOK, gin.H{"profiles": responses})
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	image := h.mediaService.ResolveImageURL(c.Request.Context(), profile.ImageKey)
	c.JSON(http.StatusOK, newProfileResponse(profile, identityFrom(c), image))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	profile, err := h.profileService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	image := h.mediaService.ResolveImageURL(c.Request.Context(), profile.ImageKey)
	c.JSON(http.StatusOK, newProfileResponse(profile, &userID, image))
}
