package clinic

import (
	"strings"

	"github.com/BruksfildServices01/dentismart/internal/httperr"
)

const (
	MsgPatientRequired = "Les champs prénom, nom et téléphone sont obligatoires"
	MsgNoCabinet       = "Aucun cabinet trouvé. Veuillez d'abord créer un cabinet."
)

// ValidatePatient checks the fields a patient row cannot exist without.
func ValidatePatient(firstName, lastName, phone string) error {
	if strings.TrimSpace(firstName) == "" ||
		strings.TrimSpace(lastName) == "" ||
		strings.TrimSpace(phone) == "" {
		return httperr.ErrValidation("missing_required_fields", MsgPatientRequired)
	}
	return nil
}

// ErrNoCabinet is returned when no tenant row can be resolved.
func ErrNoCabinet() error {
	return httperr.ErrValidation("no_cabinet", MsgNoCabinet)
}
