package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftnet/backend/internal/models"
	"github.com/craftnet/backend/internal/types"
)

// PostService handles post CRUD. The owner is always the authenticated
// caller; payloads cannot assign ownership.
type PostService struct {
	db *gorm.DB
}

// Ensure PostService implements IPostService
var _ IPostService = (*PostService)(nil)

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

func (s *PostService) List(ctx context.Context) ([]models.Post, error) {
	var posts []models.Post
	if err := s.db.WithContext(ctx).Preload("Owner").
		Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, id uuid.UUID) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).Preload("Owner").
		First(&post, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}
	return &post, nil
}

func (s *PostService) Create(ctx context.Context, ownerID uuid.UUID, req *types.CreatePostRequest) (*models.Post, error) {
	post := models.Post{
		OwnerID: ownerID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, post.ID)
}

func (s *PostService) Update(ctx context.Context, identity uuid.UUID, id uuid.UUID, req *types.UpdatePostRequest) (*models.Post, error) {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}

	if err := Authorize(&identity, post.OwnerID); err != nil {
		return nil, err
	}

	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Content != nil {
		post.Content = *req.Content
	}

	if err := s.db.WithContext(ctx).Save(&post).Error; err != nil {
		return nil, err
	}
	return s.Get(ctx, post.ID)
}

func (s *PostService) Delete(ctx context.Context, identity uuid.UUID, id uuid.UUID) error {
	var post models.Post
	if err := s.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return asNotFound(err)
	}

	if err := Authorize(&identity, post.OwnerID); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&post).Error
}
