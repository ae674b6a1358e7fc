package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/craftnet/backend/internal/middleware"
	"github.com/craftnet/backend/internal/service"
	"github.com/craftnet/backend/internal/types"
)

type PostHandler struct {
	postService service.IPostService
	authService *service.AuthService
	rateLimiter *middleware.RateLimiter
}

// NewPostHandler creates a post handler. rateLimiter may be nil when no
// Redis backend is configured; creation then runs unthrottled.
func NewPostHandler(postService service.IPostService, authService *service.AuthService, rateLimiter *middleware.RateLimiter) *PostHandler {
	return &PostHandler{
		postService: postService,
		authService: authService,
		rateLimiter: rateLimiter,
	}
}

func (h *PostHandler) RegisterRoutes(router *gin.RouterGroup) {
	posts := router.Group("/posts")
	{
		posts.GET("", middleware.OptionalAuthMiddleware(h.authService), h.ListPosts)
		posts.GET("/:id", middleware.OptionalAuthMiddleware(h.authService), h.GetPost)

		createHandlers := []gin.HandlerFunc{middleware.AuthMiddleware(h.authService)}
		if h.rateLimiter != nil {
			createHandlers = append(createHandlers, h.rateLimiter.RateLimitMiddleware())
		}
		createHandlers = append(createHandlers, h.CreatePost)
		posts.POST("", createHandlers...)

		posts.PUT("/:id", middleware.AuthMiddleware(h.authService), h.UpdatePost)
		posts.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.DeletePost)
	}
}

func (h *PostHandler) ListPosts(c *gin.Context) {
	posts, err := h.postService.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	identity := identityFrom(c)
	responses := make([]PostResponse, len(posts))
	for i := range posts {
		responses[i] = newPostResponse(&posts[i], identity)
	}

	c.JSON(http.StatusOK, gin.H{"posts": responses})
}

func (h *PostHandler) GetPost(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	post, err := h.postService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPostResponse(post, identityFrom(c)))
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req types.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	post, err := h.postService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newPostResponse(post, &userID))
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	userID, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req types.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	post, err := h.postService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPostResponse(post, &userID))
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	userID, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.postService.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
