package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Follower is a directed edge: the owner observes the followed user.
// The composite unique index is the source of truth for duplicate edges;
// inserts racing past application checks are rejected by the store.
type Follower struct {
	ID         uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	OwnerID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_followers_edge" json:"owner_id"`
	Owner      User      `gorm:"foreignKey:OwnerID" json:"-"`
	FollowedID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_followers_edge" json:"followed_id"`
	Followed   User      `gorm:"foreignKey:FollowedID" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
}

func (f *Follower) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
