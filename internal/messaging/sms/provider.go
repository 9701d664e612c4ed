package sms

import "context"

// Receipt is what the provider reports for an accepted message.
type Receipt struct {
	MessageID string
	Status    string
}

type Sender interface {
	Send(ctx context.Context, to, body string) (Receipt, error)
}

const (
	labelConfigured    = "✓ Configuré"
	labelNotConfigured = "✗ Non configuré"
)

// Status describes the provider configuration without exposing secrets.
type Status struct {
	Configured  bool   `json:"configured"`
	AccountSID  string `json:"accountSid"`
	AuthToken   string `json:"authToken"`
	PhoneNumber string `json:"phoneNumber"`
}

// Provider is either Configured with a live Sender or Unconfigured, in
// which case reminders are simulated.
type Provider struct {
	sender Sender
	status Status
}

func Configured(sender Sender, status Status) Provider {
	status.Configured = true
	return Provider{sender: sender, status: status}
}

func Unconfigured(status Status) Provider {
	status.Configured = false
	return Provider{status: status}
}

// Sender returns the live sender, or false when unconfigured.
func (p Provider) Sender() (Sender, bool) {
	return p.sender, p.sender != nil
}

func (p Provider) IsConfigured() bool {
	return p.sender != nil
}

func (p Provider) Status() Status {
	return p.status
}

// FromCredentials builds the Twilio-backed provider when all three
// credentials are present, and an unconfigured one otherwise.
func FromCredentials(accountSID, authToken, phoneNumber string) Provider {
	status := Status{
		AccountSID:  label(accountSID),
		AuthToken:   label(authToken),
		PhoneNumber: phoneNumber,
	}
	if phoneNumber == "" {
		status.PhoneNumber = labelNotConfigured
	}

	if accountSID == "" || authToken == "" || phoneNumber == "" {
		return Unconfigured(status)
	}
	return Configured(NewTwilioSender(accountSID, authToken, phoneNumber), status)
}

func label(v string) string {
	if v == "" {
		return labelNotConfigured
	}
	return labelConfigured
}
