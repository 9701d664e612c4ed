package reminder

import (
	"fmt"
	"time"
)

// Outcome of one dispatch attempt.
type Outcome string

const (
	OutcomeSent      Outcome = "sent"
	OutcomeFailed    Outcome = "failed"
	OutcomeSimulated Outcome = "simulated"
)

const (
	MessageStatusSent   = "sent"
	MessageStatusFailed = "failed"

	ProviderStatusSimulated = "simulated"
	SimulatedNote           = "Mode simulation - fournisseur SMS non configuré"

	ChannelSMS        = "sms"
	TypeReminder      = "reminder"
	DirectionOutbound = "outbound"
)

// MessageStatus is the delivery status stored on the message row. A
// simulated send is recorded as sent.
func (o Outcome) MessageStatus() string {
	if o == OutcomeFailed {
		return MessageStatusFailed
	}
	return MessageStatusSent
}

func SimulatedMessageID(now time.Time) string {
	return fmt.Sprintf("SIMULATED_%d", now.UnixMilli())
}
