package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/craftnet/backend/internal/models"
	"github.com/craftnet/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	Logout(ctx context.Context, sessionID string) error
	DeleteAccount(ctx context.Context, userID uuid.UUID) error
	ValidateToken(ctx context.Context, token string) (*types.TokenClaims, error)
}

// IProfileService defines the interface for profile operations
type IProfileService interface {
	Get(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	GetByUser(ctx context.Context, userID uuid.UUID) (*models.Profile, error)
	List(ctx context.Context, opts ProfileListOptions) ([]models.Profile, error)
	Update(ctx context.Context, identity uuid.UUID, id uuid.UUID, req *types.UpdateProfileRequest) (*models.Profile, error)
}

// ICompanyService defines the interface for company operations
type ICompanyService interface {
	List(ctx context.Context, ordering string) ([]models.Company, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Company, error)
	Create(ctx context.Context, ownerID uuid.UUID, req *types.CreateCompanyRequest) (*models.Company, error)
	Update(ctx context.Context, identity uuid.UUID, id uuid.UUID, req *types.UpdateCompanyRequest) (*models.Company, error)
	Delete(ctx context.Context, identity uuid.UUID, id uuid.UUID) error
}

// IPostService defines the interface for post operations
type IPostService interface {
	List(ctx context.Context) ([]models.Post, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Post, error)
	Create(ctx context.Context, ownerID uuid.UUID, req *types.CreatePostRequest) (*models.Post, error)
	Update(ctx context.Context, identity uuid.UUID, id uuid.UUID, req *types.UpdatePostRequest) (*models.Post, error)
	Delete(ctx context.Context, identity uuid.UUID, id uuid.UUID) error
}

// ICommentService defines the interface for comment operations
type ICommentService interface {
	List(ctx context.Context, postID *uuid.UUID) ([]models.Comment, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Comment, error)
	Create(ctx context.Context, ownerID uuid.UUID, req *types.CreateCommentRequest) (*models.Comment, error)
	Update(ctx context.Context, identity uuid.UUID, id uuid.UUID, req *types.UpdateCommentRequest) (*models.Comment, error)
	Delete(ctx context.Context, identity uuid.UUID, id uuid.UUID) error
}

// IFollowerService defines the interface for follower edge operations
type IFollowerService interface {
	List(ctx context.Context) ([]models.Follower, error)
	Follow(ctx context.Context, ownerID, followedID uuid.UUID) (*models.Follower, error)
	Unfollow(ctx context.Context, identity uuid.UUID, id uuid.UUID) error
}
