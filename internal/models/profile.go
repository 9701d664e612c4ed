package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleOwner = "owner"
	RoleStaff = "staff"
)

// Profile is a login bound to exactly one cabinet.
type Profile struct {
	ID        string  `gorm:"type:uuid;primaryKey" json:"id"`
	CabinetID string  `gorm:"type:uuid;index;not null" json:"cabinet_id"`
	Cabinet   Cabinet `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Email        string `gorm:"size:150;uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	FullName     string `gorm:"size:150" json:"full_name"`
	Role         string `gorm:"size:20;default:'owner'" json:"role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
