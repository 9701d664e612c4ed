package clinic

import (
	"context"
	"errors"

	"github.com/BruksfildServices01/dentismart/internal/domain"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/models"
)

type CabinetFinder interface {
	GetCabinet(ctx context.Context, id string) (*models.Cabinet, error)
	FirstCabinet(ctx context.Context) (*models.Cabinet, error)
}

// Directory resolves the tenant and answers whether a referenced dentist or
// patient lives in it.
type Directory interface {
	CabinetFinder
	DentistInCabinet(ctx context.Context, cabinetID, dentistID string) (bool, error)
	PatientInCabinet(ctx context.Context, cabinetID, patientID string) (bool, error)
}

// ResolveCabinet picks the tenant for a write. An authenticated session
// decides; anonymous callers fall back to the oldest cabinet.
func ResolveCabinet(ctx context.Context, repo CabinetFinder, sessionCabinetID string) (*models.Cabinet, error) {
	var (
		cab *models.Cabinet
		err error
	)
	if sessionCabinetID != "" {
		cab, err = repo.GetCabinet(ctx, sessionCabinetID)
	} else {
		cab, err = repo.FirstCabinet(ctx)
	}

	if errors.Is(err, domain.ErrNotFound) {
		return nil, ErrNoCabinet()
	}
	if err != nil {
		return nil, httperr.ErrUpstream("cabinet_lookup_failed", "Erreur serveur", err)
	}
	return cab, nil
}

// Member reports whether id names a row of the cabinet according to check.
// Malformed ids are never members.
func Member(
	ctx context.Context,
	check func(ctx context.Context, cabinetID, id string) (bool, error),
	cabinetID, id string,
) (bool, error) {
	if !domain.ValidID(id) {
		return false, nil
	}
	ok, err := check(ctx, cabinetID, id)
	if err != nil {
		return false, httperr.ErrUpstream("membership_lookup_failed", "Erreur serveur", err)
	}
	return ok, nil
}
