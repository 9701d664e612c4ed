package rendezvous

import (
	"context"
	"time"

	"github.com/BruksfildServices01/dentismart/internal/models"
)

type Repository interface {
	CreateRendezVous(ctx context.Context, rv *models.RendezVous) error

	// ListRendezVous joins patient, dentist and cabinet, ordered by start.
	// An empty cabinetID lists every cabinet.
	ListRendezVous(ctx context.Context, cabinetID string) ([]models.RendezVous, error)

	CountStartingBetween(ctx context.Context, cabinetID string, from, to time.Time) (int64, error)

	GetRendezVous(ctx context.Context, id string) (*models.RendezVous, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
}
