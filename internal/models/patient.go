package models

import (
	"time"

	"gorm.io/gorm"
)

type Patient struct {
	ID        string `gorm:"type:uuid;primaryKey" json:"id"`
	CabinetID string `gorm:"type:uuid;index;not null" json:"cabinet_id"`

	DentistID *string  `gorm:"type:uuid;index" json:"dentist_id"`
	Dentist   *Dentist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"dentist,omitempty"`

	FirstName   string     `gorm:"size:100;not null" json:"first_name"`
	LastName    string     `gorm:"size:100;not null" json:"last_name"`
	Phone       string     `gorm:"size:30;not null" json:"phone"`
	Email       *string    `gorm:"size:150" json:"email"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth"`
	Address     *string    `gorm:"size:255" json:"address"`
	City        *string    `gorm:"size:100" json:"city"`
	PostalCode  *string    `gorm:"size:20" json:"postal_code"`
	Notes       *string    `gorm:"type:text" json:"notes"`
	IsActive    bool       `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Patient) BeforeCreate(tx *gorm.DB) error {
	ensureID(&p.ID)
	return nil
}
