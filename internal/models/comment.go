package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Comment struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:varchar(36);not null;index" json:"owner_id"`
	Owner     User      `gorm:"foreignKey:OwnerID" json:"-"`
	PostID    uuid.UUID `gorm:"type:varchar(36);not null;index" json:"post_id"`
	Post      Post      `gorm:"foreignKey:PostID" json:"-"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
