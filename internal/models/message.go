package models

import (
	"time"

	"gorm.io/gorm"
)

// Message records one outbound notification attempt. Rows are append-only.
type Message struct {
	ID string `gorm:"type:uuid;primaryKey" json:"id"`

	CabinetID    *string `gorm:"type:uuid;index" json:"cabinet_id"`
	PatientID    *string `gorm:"type:uuid;index" json:"patient_id"`
	RendezVousID *string `gorm:"type:uuid;index" json:"rendez_vous_id"`

	Channel   string `gorm:"size:20;default:'sms'" json:"channel"`
	Type      string `gorm:"size:30;default:'reminder'" json:"type"`
	Direction string `gorm:"size:20;default:'outbound'" json:"direction"`

	ToPhone string `gorm:"size:30" json:"to_phone"`
	Body    string `gorm:"type:text" json:"message_body"`
	Status  string `gorm:"size:20;not null" json:"status"`

	ProviderMessageID *string `gorm:"size:100" json:"provider_message_id"`
	ProviderStatus    *string `gorm:"size:50" json:"provider_status"`
	ErrorMessage      *string `gorm:"type:text" json:"error_message"`

	SentAt    *time.Time `json:"sent_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	ensureID(&m.ID)
	return nil
}
