package models

import (
	"time"

	"gorm.io/gorm"
)

type Dentist struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	CabinetID string `gorm:"type:uuid;index;not null" json:"cabinet_id"`

	FirstName      string  `gorm:"size:100;not null" json:"first_name"`
	LastName       string  `gorm:"size:100;not null" json:"last_name"`
	Specialization *string `gorm:"size:150" json:"specialization"`
	Email          *string `gorm:"size:150" json:"email"`
	Phone          *string `gorm:"size:30" json:"phone"`
	IsActive       bool    `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Dentist) BeforeCreate(tx *gorm.DB) error {
	ensureID(&d.ID)
	return nil
}

func (d *Dentist) DisplayName() string {
	return "Dr. " + d.FirstName + " " + d.LastName
}
