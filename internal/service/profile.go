package service

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/craftnet/backend/internal/models"
	"github.com/craftnet/backend/internal/types"
)

// ProfileService handles profile reads, updates and the request-time
// aggregate counts that annotate them.
type ProfileService struct {
	db *gorm.DB
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{db: db}
}

// ProfileListOptions carries the list query parameters.
type ProfileListOptions struct {
	// Ordering is one of posts_count, followers_count, following_count,
	// approval_count, created_on; a leading '-' reverses it.
	Ordering string
	// Search matches against username, profile name, job and the
	// employer's name and location.
	Search string
	// FollowedBy restricts to profiles of users who follow the given user.
	FollowedBy *uuid.UUID
	// Following restricts to profiles of users the given user follows.
	Following *uuid.UUID
	// Employer restricts to profiles employed by the given company.
	Employer *uuid.UUID
}

// Get retrieves one profile with its employer and aggregate counts.
func (s *ProfileService) Get(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Preload("User").Preload("Employer").
		First(&profile, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}
	if err := s.loadCounts(ctx, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetByUser retrieves the profile belonging to a user.
func (s *ProfileService) GetByUser(ctx context.Context, userID uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).Preload("User").Preload("Employer").
		Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, asNotFound(err)
	}
	if err := s.loadCounts(ctx, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// List returns profiles with aggregate counts, filtered, searched and
// ordered per opts.
func (s *ProfileService) List(ctx context.Context, opts ProfileListOptions) ([]models.Profile, error) {
	query := s.db.WithContext(ctx).Model(&models.Profile{}).
		Preload("User").Preload("Employer").
		Joins("JOIN users ON users.id = profiles.user_id").
		Joins("LEFT JOIN companies ON companies.id = profiles.employer_id")

	if opts.Search != "" {
		like := "%" + strings.ToLower(opts.Search) + "%"
		query = query.Where(
			"LOWER(users.username) LIKE ? OR LOWER(profiles.name) LIKE ? OR LOWER(profiles.job) LIKE ? OR LOWER(companies.name) LIKE ? OR LOWER(companies.location) LIKE ?",
			like, like, like, like, like,
		)
	}

	if opts.FollowedBy != nil {
		query = query.
			Joins("JOIN followers AS fb ON fb.owner_id = profiles.user_id").
			Where("fb.followed_id = ?", *opts.FollowedBy)
	}
	if opts.Following != nil {
		query = query.
			Joins("JOIN followers AS fw ON fw.followed_id = profiles.user_id").
			Where("fw.owner_id = ?", *opts.Following)
	}
	if opts.Employer != nil {
		query = query.Where("profiles.employer_id = ?", *opts.Employer)
	}

	field, descending := parseOrdering(opts.Ordering)
	if field == "created_on" {
		if descending {
			query = query.Order("profiles.created_at DESC")
		} else {
			query = query.Order("profiles.created_at ASC")
		}
	} else {
		// Count orderings are applied after annotation.
		query = query.Order("profiles.created_at DESC")
	}

	var profiles []models.Profile
	if err := query.Find(&profiles).Error; err != nil {
		return nil, err
	}

	for i := range profiles {
		if err := s.loadCounts(ctx, &profiles[i]); err != nil {
			return nil, err
		}
	}

	sortProfilesByCount(profiles, field, descending)
	return profiles, nil
}

// Update merges the provided fields into the caller's profile.
func (s *ProfileService) Update(ctx context.Context, identity uuid.UUID, id uuid.UUID, req *types.UpdateProfileRequest) (*models.Profile, error) {
	var profile models.Profile
	if err := s.db.WithContext(ctx).First(&profile, "id = ?", id).Error; err != nil {
		return nil, asNotFound(err)
	}

	if err := Authorize(&identity, profile.UserID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Job != nil {
		profile.Job = *req.Job
	}
	if req.ImageKey != nil {
		profile.ImageKey = *req.ImageKey
	}
	if req.EmployerID != nil {
		if *req.EmployerID == "" {
			profile.EmployerID = nil
		} else {
			employerID, err := uuid.Parse(*req.EmployerID)
			if err != nil {
				return nil, asNotFound(gorm.ErrRecordNotFound)
			}
			var employer models.Company
			if err := s.db.WithContext(ctx).First(&employer, "id = ?", employerID).Error; err != nil {
				return nil, asNotFound(err)
			}
			profile.EmployerID = &employerID
		}
	}

	if err := s.db.WithContext(ctx).Save(&profile).Error; err != nil {
		return nil, err
	}

	return s.Get(ctx, profile.ID)
}

func (s *ProfileService) loadCounts(ctx context.Context, profile *models.Profile) error {
	db := s.db.WithContext(ctx)
	if err := db.Model(&models.Post{}).
		Where("owner_id = ?", profile.UserID).
		Count(&profile.PostsCount).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Follower{}).
		Where("followed_id = ?", profile.UserID).
		Count(&profile.FollowersCount).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Follower{}).
		Where("owner_id = ?", profile.UserID).
		Count(&profile.FollowingCount).Error; err != nil {
		return err
	}
	return db.Model(&models.Approval{}).
		Where("profile_id = ?", profile.ID).
		Count(&profile.ApprovalCount).Error
}

func parseOrdering(ordering string) (field string, descending bool) {
	if ordering == "" {
		return "created_on", true
	}
	if strings.HasPrefix(ordering, "-") {
		return strings.TrimPrefix(ordering, "-"), true
	}
	return ordering, false
}

func sortProfilesByCount(profiles []models.Profile, field string, descending bool) {
	var value func(*models.Profile) int64
	switch field {
	case "posts_count":
		value = func(p *models.Profile) int64 { return p.PostsCount }
	case "followers_count":
		value = func(p *models.Profile) int64 { return p.FollowersCount }
	case "following_count":
		value = func(p *models.Profile) int64 { return p.FollowingCount }
	case "approval_count":
		value = func(p *models.Profile) int64 { return p.ApprovalCount }
	default:
		return
	}

	sort.SliceStable(profiles, func(i, j int) bool {
		if descending {
			return value(&profiles[i]) > value(&profiles[j])
		}
		return value(&profiles[i]) < value(&profiles[j])
	})
}
