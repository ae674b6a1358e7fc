package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/craftnet/backend/internal/models"
	"github.com/craftnet/backend/internal/types"
)

const tokenTTL = 24 * time.Hour

// AuthService handles registration, login, token validation and the
// account deletion cascade.
type AuthService struct {
	db        *gorm.DB
	sessions  SessionStore
	jwtSecret string
}

// Ensure AuthService implements IAuthService
var _ IAuthService = (*AuthService)(nil)

func NewAuthService(db *gorm.DB, sessions SessionStore, jwtSecret string) *AuthService {
	return &AuthService{
		db:        db,
		sessions:  sessions,
		jwtSecret: jwtSecret,
	}
}

// Register creates the account and its profile in one transaction, so a
// profile always exists before any profile-referencing read is possible.
func (s *AuthService) Register(ctx context.Context, req *types.RegisterRequest) (*models.User, string, error) {
	var existing models.User
	err := s.db.WithContext(ctx).
		Where("username = ? OR email = ?", req.Username, req.Email).
		First(&existing).Error
	if err == nil {
		return nil, "", ErrUserExists
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	user := models.User{
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
	}

	name := req.Name
	if name == "" {
		name = req.Username
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrUserExists
			}
			return err
		}
		profile := models.Profile{
			UserID: user.ID,
			Name:   name,
			Job:    req.Job,
		}
		return tx.Create(&profile).Error
	})
	if err != nil {
		return nil, "", err
	}

	token, err := s.generateToken(ctx, user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// Login verifies credentials and opens a new session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, string, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.generateToken(ctx, user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	return &user, token, nil
}

// Logout revokes the session carried by the presented token.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Revoke(ctx, sessionID)
}

// DeleteAccount removes the account and everything hanging off it in a
// single transaction, then revokes every session of the user. Self-service
// only; the caller's identity is the account being deleted.
func (s *AuthService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return asNotFound(err)
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Comments under the user's posts go first, then their own
		// comments and the posts themselves.
		var postIDs []uuid.UUID
		if err := tx.Model(&models.Post{}).Where("owner_id = ?", userID).
			Pluck("id", &postIDs).Error; err != nil {
			return err
		}
		if len(postIDs) > 0 {
			if err := tx.Where("post_id IN ?", postIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("owner_id = ?", userID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ?", userID).Delete(&models.Post{}).Error; err != nil {
			return err
		}

		// Follower edges in both directions, so nobody's counts keep a
		// deleted account in them.
		if err := tx.Where("owner_id = ? OR followed_id = ?", userID, userID).
			Delete(&models.Follower{}).Error; err != nil {
			return err
		}
		if err := tx.Where("owner_id = ? OR profile_id = ?", userID, profile.ID).
			Delete(&models.Approval{}).Error; err != nil {
			return err
		}

		// Companies the user owns are removed and their (name, location)
		// pairs released; employees of those companies lose the employer
		// reference, not their profiles.
		var companyIDs []uuid.UUID
		if err := tx.Model(&models.Company{}).Where("owner_id = ?", userID).
			Pluck("id", &companyIDs).Error; err != nil {
			return err
		}
		if len(companyIDs) > 0 {
			if err := tx.Model(&models.Profile{}).Where("employer_id IN ?", companyIDs).
				Update("employer_id", nil).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", companyIDs).Delete(&models.Company{}).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&profile).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, "id = ?", userID).Error
	})
	if err != nil {
		return err
	}

	return s.sessions.RevokeAll(ctx, userID)
}

func (s *AuthService) generateToken(ctx context.Context, userID uuid.UUID, username string) (string, error) {
	sessionID := uuid.NewString()
	now := time.Now()

	claims := &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
		UserID:   userID,
		Username: username,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", err
	}

	if err := s.sessions.Save(ctx, sessionID, userID, tokenTTL); err != nil {
		return "", err
	}

	return signed, nil
}

// ValidateToken parses and verifies a token, then checks that its session
// is still live.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*types.TokenClaims, error) {
	claims := &types.TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	live, err := s.sessions.Valid(ctx, claims.ID)
	if err != nil {
		return nil, err
	}
	if !live {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
