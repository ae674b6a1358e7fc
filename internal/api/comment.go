package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/craftnet/backend/internal/middleware"
	"github.com/craftnet/backend/internal/service"
	"github.com/craftnet/backend/internal/types"
)

type CommentHandler struct {
	commentService service.ICommentService
	authService    *service.AuthService
}

func NewCommentHandler(commentService service.ICommentService, authService *service.AuthService) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		authService:    authService,
	}
}

func (h *CommentHandler) RegisterRoutes(router *gin.RouterGroup) {
	comments := router.Group("/comments")
	{
		comments.GET("", middleware.OptionalAuthMiddleware(h.authService), h.ListComments)
		comments.GET("/:id", middleware.OptionalAuthMiddleware(h.authService), h.GetComment)
		comments.POST("", middleware.AuthMiddleware(h.authService), h.CreateComment)
		comments.PUT("/:id", middleware.AuthMiddleware(h.authService), h.UpdateComment)
		comments.DELETE("/:id", middleware.AuthMiddleware(h.authService), h.DeleteComment)
	}
}

func (h *CommentHandler) ListComments(c *gin.Context) {
	var postID *uuid.UUID
	if v := c.Query("post"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post filter"})
			return
		}
		postID = &id
	}

	comments, err := h.commentService.List(c.Request.Context(), postID)
	if err != nil {
		respondError(c, err)
		return
	}

	identity := identityFrom(c)
	responses := make([]CommentResponse, len(comments))
	for i := range comments {
		responses[i] = newCommentResponse(&comments[i], identity, false)
	}

	c.JSON(http.StatusOK, gin.H{"comments": responses})
}

func (h *CommentHandler) GetComment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	comment, err := h.commentService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCommentResponse(comment, identityFrom(c), true))
}

func (h *CommentHandler) CreateComment(c *gin.Context) {
	userID, ok := mustIdentity(c)
	if !ok {
		return
	}

	var req types.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	comment, err := h.commentService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newCommentResponse(comment, &userID, true))
}

func (h *CommentHandler) UpdateComment(c *gin.Context) {
	userID, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req types.UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	comment, err := h.commentService.Update(c.Request.Context(), userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newCommentResponse(comment, &userID, true))
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	userID, ok := mustIdentity(c)
	if !ok {
		return
	}
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.commentService.Delete(c.Request.Context(), userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
