package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Profile is created inside the registration transaction and removed only
// as part of account deletion.
type Profile struct {
	ID         uuid.UUID  `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID     uuid.UUID  `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	User       User       `gorm:"foreignKey:UserID" json:"-"`
	Name       string     `gorm:"size:255" json:"name"`
	Job        string     `gorm:"size:255" json:"job"`
	ImageKey   string     `gorm:"size:255" json:"-"`
	EmployerID *uuid.UUID `gorm:"type:varchar(36)" json:"employer_id,omitempty"`
	Employer   *Company   `gorm:"foreignKey:EmployerID" json:"employer,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`

	// Aggregates are computed at query time; never persisted.
	PostsCount     int64 `gorm:"-" json:"posts_count"`
	FollowersCount int64 `gorm:"-" json:"followers_count"`
	FollowingCount int64 `gorm:"-" json:"following_count"`
	ApprovalCount  int64 `gorm:"-" json:"approval_count"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
