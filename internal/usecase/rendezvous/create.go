package rendezvous

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/dentismart/internal/audit"
	"github.com/BruksfildServices01/dentismart/internal/domain/clinic"
	domain "github.com/BruksfildServices01/dentismart/internal/domain/rendezvous"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/models"
)

const MsgCreated = "Rendez-vous créé avec succès"

// ======================================================
// INPUT
// ======================================================

type CreateRendezVousInput struct {
	CabinetID string
	ProfileID string

	PatientID string
	DentistID string
	StartsAt  string // RFC 3339
	EndsAt    string // RFC 3339
	Status    string
	Reason    string
	Notes     string
}

// ======================================================
// USE CASE
// ======================================================

type CreateRendezVous struct {
	repo    domain.Repository
	cabinet clinic.Directory
	audit   *audit.Dispatcher
}

func NewCreateRendezVous(
	repo domain.Repository,
	cabinet clinic.Directory,
	audit *audit.Dispatcher,
) *CreateRendezVous {
	return &CreateRendezVous{
		repo:    repo,
		cabinet: cabinet,
		audit:   audit,
	}
}

func (uc *CreateRendezVous) Execute(
	ctx context.Context,
	in CreateRendezVousInput,
) (*models.RendezVous, error) {

	// --------------------------------------------------
	// 1. Required fields
	// --------------------------------------------------
	if blank(in.PatientID) || blank(in.DentistID) || blank(in.StartsAt) || blank(in.EndsAt) {
		return nil, httperr.ErrValidation("missing_required_fields", domain.MsgRequiredFields)
	}

	// --------------------------------------------------
	// 2. Time window
	// --------------------------------------------------
	starts, err := parseInstant(in.StartsAt)
	if err != nil {
		return nil, err
	}
	ends, err := parseInstant(in.EndsAt)
	if err != nil {
		return nil, err
	}
	if err := domain.ValidateWindow(starts, ends); err != nil {
		return nil, err
	}

	status, err := domain.InitialStatus(strings.TrimSpace(in.Status))
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3. Tenant
	// --------------------------------------------------
	cab, err := clinic.ResolveCabinet(ctx, uc.cabinet, in.CabinetID)
	if err != nil {
		return nil, err
	}

	patientID := strings.TrimSpace(in.PatientID)
	dentistID := strings.TrimSpace(in.DentistID)

	okPatient, err := clinic.Member(ctx, uc.cabinet.PatientInCabinet, cab.ID, patientID)
	if err != nil {
		return nil, err
	}
	okDentist, err := clinic.Member(ctx, uc.cabinet.DentistInCabinet, cab.ID, dentistID)
	if err != nil {
		return nil, err
	}
	if !okPatient || !okDentist {
		return nil, errPatientOrDentistNotFound()
	}

	// --------------------------------------------------
	// 4. Insert
	// --------------------------------------------------
	rv := &models.RendezVous{
		CabinetID:    cab.ID,
		PatientID:    patientID,
		DentistID:    dentistID,
		StartsAt:     starts.UTC(),
		EndsAt:       ends.UTC(),
		Status:       string(status),
		Reason:       optional(in.Reason),
		Notes:        optional(in.Notes),
		ReminderSent: false,
	}

	if err := uc.repo.CreateRendezVous(ctx, rv); err != nil {
		if httperr.IsForeignKeyViolation(err) {
			return nil, errPatientOrDentistNotFound()
		}
		return nil, httperr.ErrUpstream("rendezvous_create_failed", "Erreur lors de la création du rendez-vous", err)
	}

	// --------------------------------------------------
	// 5. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		CabinetID: cab.ID,
		ProfileID: optional(in.ProfileID),
		Action:    "rendezvous_created",
		Entity:    "rendez_vous",
		EntityID:  &rv.ID,
		Metadata: map[string]any{
			"starts_at": rv.StartsAt,
			"ends_at":   rv.EndsAt,
		},
	})

	return rv, nil
}

func errPatientOrDentistNotFound() error {
	return httperr.ErrValidation("patient_or_dentist_not_found", "Patient ou dentiste introuvable")
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func parseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, httperr.ErrValidation("invalid_datetime", "Format de date invalide (ISO 8601 attendu)")
	}
	return t, nil
}
