package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company rows are hard deleted: the composite unique index backs the
// (name, location) duplicate rule, and a tombstoned row would keep the
// pair occupied after deletion.
type Company struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:varchar(36);not null;index" json:"owner_id"`
	Owner     User      `gorm:"foreignKey:OwnerID" json:"-"`
	Name      string    `gorm:"size:100;not null;uniqueIndex:idx_companies_name_location" json:"name"`
	Location  string    `gorm:"size:100;uniqueIndex:idx_companies_name_location" json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// EmployeeCount is not persisted; computed at query time.
	EmployeeCount int64 `gorm:"-" json:"employee_count"`
}

func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
