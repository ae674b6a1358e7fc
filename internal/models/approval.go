package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Approval records that a user approved a profile. The writing side lives
// outside this service; this core only counts approvals when annotating
// profiles, so no endpoints are registered for it.
type Approval struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	OwnerID   uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_approvals_edge" json:"owner_id"`
	ProfileID uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex:idx_approvals_edge" json:"profile_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *Approval) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
