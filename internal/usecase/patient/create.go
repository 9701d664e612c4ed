package patient

import (
	"context"
	"strings"
	"time"

	"github.com/BruksfildServices01/dentismart/internal/audit"
	"github.com/BruksfildServices01/dentismart/internal/domain/clinic"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/models"
)

const MsgCreated = "Patient créé avec succès"

// ======================================================
// INPUT
// ======================================================

type CreatePatientInput struct {
	// Session tenant; empty for anonymous callers.
	CabinetID string
	ProfileID string

	FirstName string
	LastName  string
	Phone     string

	Email       string
	DateOfBirth string
	Address     string
	City        string
	PostalCode  string
	Notes       string
	DentistID   string
}

// ======================================================
// USE CASE
// ======================================================

type CreatePatient struct {
	repo  clinic.Repository
	audit *audit.Dispatcher
}

func NewCreatePatient(repo clinic.Repository, audit *audit.Dispatcher) *CreatePatient {
	return &CreatePatient{repo: repo, audit: audit}
}

func (uc *CreatePatient) Execute(
	ctx context.Context,
	in CreatePatientInput,
) (*models.Patient, error) {

	// --------------------------------------------------
	// 1. Required fields
	// --------------------------------------------------
	if err := clinic.ValidatePatient(in.FirstName, in.LastName, in.Phone); err != nil {
		return nil, err
	}

	dob, err := parseDate(in.DateOfBirth)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2. Tenant
	// --------------------------------------------------
	cab, err := clinic.ResolveCabinet(ctx, uc.repo, in.CabinetID)
	if err != nil {
		return nil, err
	}

	dentistID := optional(in.DentistID)
	if dentistID != nil {
		ok, err := clinic.Member(ctx, uc.repo.DentistInCabinet, cab.ID, *dentistID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errDentistNotFound()
		}
	}

	// --------------------------------------------------
	// 3. Insert
	// --------------------------------------------------
	p := &models.Patient{
		CabinetID:   cab.ID,
		FirstName:   strings.TrimSpace(in.FirstName),
		LastName:    strings.TrimSpace(in.LastName),
		Phone:       strings.TrimSpace(in.Phone),
		Email:       optional(in.Email),
		DateOfBirth: dob,
		Address:     optional(in.Address),
		City:        optional(in.City),
		PostalCode:  optional(in.PostalCode),
		Notes:       optional(in.Notes),
		DentistID:   dentistID,
		IsActive:    true,
	}

	if err := uc.repo.CreatePatient(ctx, p); err != nil {
		if httperr.IsForeignKeyViolation(err) {
			return nil, errDentistNotFound()
		}
		return nil, httperr.ErrUpstream("patient_create_failed", "Erreur lors de la création du patient", err)
	}

	// --------------------------------------------------
	// 4. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		CabinetID: cab.ID,
		ProfileID: optional(in.ProfileID),
		Action:    "patient_created",
		Entity:    "patient",
		EntityID:  &p.ID,
	})

	return p, nil
}

func errDentistNotFound() error {
	return httperr.ErrValidation("dentist_not_found", "Dentiste introuvable")
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_date_of_birth", "Date de naissance invalide (format AAAA-MM-JJ)")
	}
	return &t, nil
}
