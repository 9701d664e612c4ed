package events

import "time"

type ReminderEvent struct {
	RendezVousID      string    `json:"rendez_vous_id"`
	CabinetID         string    `json:"cabinet_id,omitempty"`
	Outcome           string    `json:"outcome"`
	ProviderMessageID string    `json:"provider_message_id,omitempty"`
	Error             string    `json:"error,omitempty"`
	OccurredAt        time.Time `json:"occurred_at"`
}

type LeadEvent struct {
	LeadID     string    `json:"lead_id"`
	Priority   string    `json:"priority"`
	OccurredAt time.Time `json:"occurred_at"`
}
