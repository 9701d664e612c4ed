package rendezvous

import "github.com/BruksfildServices01/dentismart/internal/httperr"

// ===============================
// Rendez-vous Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// InitialStatus returns the requested status, or scheduled when none is given.
func InitialStatus(requested string) (Status, error) {
	if requested == "" {
		return StatusScheduled, nil
	}

	s := Status(requested)
	if !s.IsValid() {
		return "", httperr.ErrValidation("invalid_status", "Statut de rendez-vous invalide")
	}
	return s, nil
}

// ===============================
// Transitions
// ===============================

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// CanTransition allows moving forward from scheduled or confirmed. Terminal
// statuses are final.
func CanTransition(from, to Status) error {
	if !to.IsValid() || to == StatusScheduled {
		return httperr.ErrValidation("invalid_status", "Statut de rendez-vous invalide")
	}
	if from.IsTerminal() || from == to {
		return httperr.ErrInvalidState("invalid_status_transition", "Ce rendez-vous ne peut plus changer de statut")
	}
	return nil
}
