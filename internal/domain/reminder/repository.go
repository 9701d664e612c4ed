package reminder

import (
	"context"
	"time"

	"github.com/BruksfildServices01/dentismart/internal/models"
)

type Repository interface {
	// GetRendezVousWithDetails loads the rendez-vous with its patient,
	// dentist and cabinet. Returns domain.ErrNotFound when absent.
	GetRendezVousWithDetails(ctx context.Context, id string) (*models.RendezVous, error)

	CreateMessage(ctx context.Context, msg *models.Message) error

	MarkReminderSent(ctx context.Context, rendezVousID string, at time.Time) error
}
