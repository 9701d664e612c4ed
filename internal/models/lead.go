package models

import (
	"time"

	"gorm.io/gorm"
)

// Lead is a contact-form submission. Email and Details hold ciphertext.
type Lead struct {
	ID       string  `gorm:"type:uuid;primaryKey" json:"id"`
	Name     string  `gorm:"size:200;not null" json:"name"`
	Email    string  `gorm:"type:text;not null" json:"email"`
	Company  *string `gorm:"size:200" json:"company"`
	Budget   *string `gorm:"size:100" json:"budget"`
	Deadline *string `gorm:"size:100" json:"deadline"`
	Details  string  `gorm:"type:text;not null" json:"details"`

	AISummary string `gorm:"type:text" json:"ai_summary"`
	Priority  string `gorm:"size:10" json:"priority"`

	CreatedAt time.Time `json:"created_at"`
}

func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	ensureID(&l.ID)
	return nil
}
