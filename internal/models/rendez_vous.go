package models

import (
	"time"

	"gorm.io/gorm"
)

type RendezVous struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	CabinetID string   `gorm:"type:uuid;index;not null" json:"cabinet_id"`
	Cabinet   *Cabinet `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"cabinet,omitempty"`

	PatientID string   `gorm:"type:uuid;index;not null" json:"patient_id"`
	Patient   *Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"patient,omitempty"`

	DentistID string   `gorm:"type:uuid;index;not null" json:"dentist_id"`
	Dentist   *Dentist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"dentist,omitempty"`

	StartsAt time.Time `gorm:"index;not null" json:"starts_at"`
	EndsAt   time.Time `gorm:"not null" json:"ends_at"`

	Status string  `gorm:"size:20;default:'scheduled'" json:"status"`
	Reason *string `gorm:"size:255" json:"reason"`
	Notes  *string `gorm:"type:text" json:"notes"`

	ReminderSent   bool       `gorm:"default:false" json:"reminder_sent"`
	ReminderSentAt *time.Time `json:"reminder_sent_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (RendezVous) TableName() string {
	return "rendez_vous"
}

func (r *RendezVous) BeforeCreate(tx *gorm.DB) error {
	ensureID(&r.ID)
	return nil
}
