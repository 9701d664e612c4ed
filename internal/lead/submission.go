package lead

import (
	"strings"

	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/validators"
)

// Submission is a contact-form payload after normalization.
type Submission struct {
	Name     string
	Email    string
	Company  string
	Budget   string
	Deadline string
	Details  string
}

// Normalize trims every field and lowercases the email.
func (s Submission) Normalize() Submission {
	return Submission{
		Name:     strings.TrimSpace(s.Name),
		Email:    validators.NormalizeEmail(s.Email),
		Company:  strings.TrimSpace(s.Company),
		Budget:   strings.TrimSpace(s.Budget),
		Deadline: strings.TrimSpace(s.Deadline),
		Details:  strings.TrimSpace(s.Details),
	}
}

// Validate reports the first problem found, in field order. It expects a
// normalized submission.
func (s Submission) Validate() error {
	if s.Name == "" {
		return httperr.ErrValidation("missing_name", `Le champ "name" est obligatoire`)
	}
	if s.Email == "" {
		return httperr.ErrValidation("missing_email", `Le champ "email" est obligatoire`)
	}
	if !validators.IsEmailFormatValid(s.Email) {
		return httperr.ErrValidation("invalid_email", "Le format de l'email est invalide")
	}
	if s.Details == "" {
		return httperr.ErrValidation("missing_details", `Le champ "details" est obligatoire`)
	}
	return nil
}
