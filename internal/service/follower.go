package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftnet/backend/internal/models"
)

// FollowerService handles follower edges. Duplicate edges are not
// pre-checked; the store's unique index rejects them and the violation is
// translated into a domain conflict, avoiding a second race window.
type FollowerService struct {
	db *gorm.DB
}

// Ensure FollowerService implements IFollowerService
var _ IFollowerService = (*FollowerService)(nil)

func NewFollowerService(db *gorm.DB) *FollowerService {
	return &FollowerService{db: db}
}

func (s *FollowerService) List(ctx context.Context) ([]models.Follower, error) {
	var edges []models.Follower
	if err := s.db.WithContext(ctx).Preload("Owner").Preload("Followed").
		Order("created_at DESC").Find(&edges).Error; err != nil {
		return nil, err
	}
	return edges, nil
}

// Follow creates an edge from the caller to followedID.
func (s *FollowerService) Follow(ctx context.Context, ownerID, followedID uuid.UUID) (*models.Follower, error) {
	if ownerID == followedID {
		return nil, ErrSelfFollow
	}

	var followed models.User
	if err := s.db.WithContext(ctx).First(&followed, "id = ?", followedID).Error; err != nil {
		return nil, asNotFound(err)
	}

	edge := models.Follower{
		OwnerID:    ownerID,
		FollowedID: followedID,
	}
	if err := s.db.WithContext(ctx).Create(&edge).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicateFollow
		}
		return nil, err
	}

	var created models.Follower
	if err := s.db.WithContext(ctx).Preload("Owner").Preload("Followed").
		First(&created, "id = ?", edge.ID).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

// Unfollow removes an edge; ownership is the edge's follower side.
func (s *FollowerService) Unfollow(ctx context.Context, identity uuid.UUID, id uuid.UUID) error {
	var edge models.Follower
	if err := s.db.WithContext(ctx).First(&edge, "id = ?", id).Error; err != nil {
		return asNotFound(err)
	}

	if err := Authorize(&identity, edge.OwnerID); err != nil {
		return err
	}

	return s.db.WithContext(ctx).Delete(&edge).Error
}
