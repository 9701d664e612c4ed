package dashboard

import (
	"context"
	"time"

	"github.com/BruksfildServices01/dentismart/internal/domain/clinic"
	"github.com/BruksfildServices01/dentismart/internal/domain/rendezvous"
	"github.com/BruksfildServices01/dentismart/internal/dto"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/timezone"
)

type GetStats struct {
	clinic     clinic.Repository
	rendezVous rendezvous.Repository
	now        func() time.Time
}

func NewGetStats(clinicRepo clinic.Repository, rvRepo rendezvous.Repository) *GetStats {
	return &GetStats{clinic: clinicRepo, rendezVous: rvRepo, now: time.Now}
}

// Execute counts active patients and rendez-vous starting today and
// tomorrow, with day boundaries in the cabinet's timezone.
func (uc *GetStats) Execute(ctx context.Context, cabinetID, role string) (*dto.StatsDTO, error) {
	cab, err := clinic.ResolveCabinet(ctx, uc.clinic, cabinetID)
	if err != nil {
		return nil, err
	}

	patients, err := uc.clinic.CountActivePatients(ctx, cab.ID)
	if err != nil {
		return nil, httperr.ErrUpstream("stats_failed", "Erreur lors du calcul des statistiques", err)
	}

	todayStart, tomorrowStart := timezone.DayBounds(uc.now(), cab.Timezone)
	dayAfter := tomorrowStart.AddDate(0, 0, 1)

	today, err := uc.rendezVous.CountStartingBetween(ctx, cab.ID, todayStart, tomorrowStart)
	if err != nil {
		return nil, httperr.ErrUpstream("stats_failed", "Erreur lors du calcul des statistiques", err)
	}

	tomorrow, err := uc.rendezVous.CountStartingBetween(ctx, cab.ID, tomorrowStart, dayAfter)
	if err != nil {
		return nil, httperr.ErrUpstream("stats_failed", "Erreur lors du calcul des statistiques", err)
	}

	return &dto.StatsDTO{
		CabinetName:        cab.Name,
		Role:               role,
		TotalPatients:      patients,
		RendezVousToday:    today,
		RendezVousTomorrow: tomorrow,
	}, nil
}
