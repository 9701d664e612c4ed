package clinic

import (
	"context"

	"github.com/BruksfildServices01/dentismart/internal/models"
)

// Repository covers the tenant-scoped reference data. An empty cabinetID on
// list and count calls means "every cabinet".
type Repository interface {
	// -------- Cabinet --------
	GetCabinet(ctx context.Context, id string) (*models.Cabinet, error)
	FirstCabinet(ctx context.Context) (*models.Cabinet, error)

	// -------- Dentist --------
	ListActiveDentists(ctx context.Context, cabinetID string) ([]models.Dentist, error)
	DentistInCabinet(ctx context.Context, cabinetID, dentistID string) (bool, error)

	// -------- Patient --------
	CreatePatient(ctx context.Context, p *models.Patient) error
	ListActivePatients(ctx context.Context, cabinetID string) ([]models.Patient, error)
	CountActivePatients(ctx context.Context, cabinetID string) (int64, error)
	PatientInCabinet(ctx context.Context, cabinetID, patientID string) (bool, error)
}

// ProfileRepository backs registration and login.
type ProfileRepository interface {
	CreateCabinetWithOwner(ctx context.Context, cabinet *models.Cabinet, owner *models.Profile) error
	GetProfileByEmail(ctx context.Context, email string) (*models.Profile, error)
	GetProfile(ctx context.Context, id string) (*models.Profile, error)
}
