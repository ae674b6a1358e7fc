package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftnet/backend/internal/models"
	"github.com/craftnet/backend/internal/types"
)

// CommentService handles comment CRUD.
type CommentService struct {
	db *gorm.DB
}

// Ensure CommentService implements ICommentService
var _ ICommentService = (*CommentService)(nil)

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// List returns comments, optionally restricted to one post.
func (s *CommentService) List(ctx context.Context, postID *uuid.UUID) ([]models.Comment, error) {
	query := s.db.WithContext(ctx).Preload("Owner").Order("created_at DESC")
	if postID != nil {
		query = query.Where("post_id = ?", *postID)
	}

	var comments []models.Comment
	if err := query.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentService) Get(ctx context.Context, id uuid.UUID) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).Preload("Owner").
		First(&comment, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &comment, nil
}

// Create attaches a comment to an existing post; a missing post is a
// not-found error, not a validation failure.
func (s *CommentService) Create(ctx context.Context, ownerID uuid.UUID, req *types.CreateCommentRequest) (*models.Comment, error) {
	postID, err := uuid.Parse(req.PostID)
	if err != nil {
		return nil, ErrNotFound
	}

	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, "id = ?", postID).Error; err != nil {
		return nil, asNotFound(err)
	}

	comment := models.Comment{
		OwnerID: ownerID,
		PostID:  post.ID,
		Content: req.Content,
	}
	if err := s.db.WithContext(ctx).Create(&comment).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, comment.ID)
}

func (s *CommentService) Update(ctx context.Context, identity uuid.UUID, id uuid.UUID, req *types.UpdateCommentRequest) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}

	if err := Authorize(&identity, comment.OwnerID); err != nil {
		return nil, err
	}

	comment.Content = req.Content
	if err := s.db.WithContext(ctx).Save(&comment).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, comment.ID)
}

func (s *CommentService) Delete(ctx context.Context, identity uuid.UUID, id uuid.UUID) error {
	var comment models.Comment
	if err := s.db.WithContext(ctx).First(&comment, "id = ?", id).Error; err != nil {
		return asNotFound(err)
	}

	if err := Authorize(&identity, comment.OwnerID); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&comment).Error
}
