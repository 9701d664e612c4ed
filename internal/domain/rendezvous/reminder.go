package rendezvous

import (
	"time"

	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/models"
)

const (
	MsgNotFound        = "Rendez-vous introuvable"
	MsgAlreadyReminded = "Un rappel a déjà été envoyé pour ce rendez-vous"
	MsgInPast          = "Impossible d'envoyer un rappel pour un rendez-vous passé"
	MsgNoPhone         = "Le patient n'a pas de numéro de téléphone"
	MsgNoPatient       = "Patient introuvable pour ce rendez-vous"
)

func ErrNotFound() error {
	return httperr.ErrNotFound("rendezvous_not_found", MsgNotFound)
}

func ErrNoPhone() error {
	return httperr.ErrInvalidState("patient_without_phone", MsgNoPhone)
}

func ErrNoPatient() error {
	return httperr.ErrInvalidState("patient_not_found", MsgNoPatient)
}

// CanSendReminder runs the checks that gate a reminder, in order:
// not already sent, not in the past, patient reachable by phone.
func CanSendReminder(rv *models.RendezVous, now time.Time) error {
	if rv.ReminderSent {
		return httperr.ErrInvalidState("reminder_already_sent", MsgAlreadyReminded)
	}

	if rv.StartsAt.Before(now) {
		return httperr.ErrInvalidState("rendezvous_in_past", MsgInPast)
	}

	return RequirePhone(rv)
}

func RequirePhone(rv *models.RendezVous) error {
	if rv.Patient == nil {
		return ErrNoPatient()
	}
	if rv.Patient.Phone == "" {
		return ErrNoPhone()
	}
	return nil
}
