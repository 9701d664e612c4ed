package rendezvous

import (
	"time"

	"github.com/BruksfildServices01/dentismart/internal/httperr"
)

const (
	MsgRequiredFields = "Les champs patient, dentiste, date de début et date de fin sont obligatoires"
	MsgInvalidWindow  = "La date de fin doit être après la date de début"
)

// ValidateWindow requires ends strictly after starts. Equal instants are rejected.
func ValidateWindow(starts, ends time.Time) error {
	if !ends.After(starts) {
		return httperr.ErrValidation("invalid_time_window", MsgInvalidWindow)
	}
	return nil
}
