package models

import (
	"time"

	"gorm.io/gorm"
)

// Cabinet is the tenant root: one dental practice.
type Cabinet struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name       string    `gorm:"size:150;not null" json:"name"`
	Address    *string   `gorm:"size:255" json:"address"`
	City       *string   `gorm:"size:100" json:"city"`
	PostalCode *string   `gorm:"size:20" json:"postal_code"`
	Phone      *string   `gorm:"size:30" json:"phone"`
	Email      *string   `gorm:"size:150" json:"email"`
	Timezone   string    `gorm:"size:64;default:'Europe/Zurich'" json:"timezone"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (c *Cabinet) BeforeCreate(tx *gorm.DB) error {
	ensureID(&c.ID)
	return nil
}
