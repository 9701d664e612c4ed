package rendezvous

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/dentismart/internal/audit"
	"github.com/BruksfildServices01/dentismart/internal/domain"
	rvdomain "github.com/BruksfildServices01/dentismart/internal/domain/rendezvous"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/models"
)

const MsgStatusUpdated = "Statut du rendez-vous mis à jour"

type UpdateStatusInput struct {
	CabinetID    string
	ProfileID    string
	RendezVousID string
	Status       string
}

// UpdateStatus confirms, completes, cancels or marks a rendez-vous as a
// no-show. The reminder flag is left alone.
type UpdateStatus struct {
	repo  rvdomain.Repository
	audit *audit.Dispatcher
}

func NewUpdateStatus(repo rvdomain.Repository, audit *audit.Dispatcher) *UpdateStatus {
	return &UpdateStatus{repo: repo, audit: audit}
}

func (uc *UpdateStatus) Execute(ctx context.Context, in UpdateStatusInput) (*models.RendezVous, error) {
	if !domain.ValidID(in.RendezVousID) {
		return nil, rvdomain.ErrNotFound()
	}

	rv, err := uc.repo.GetRendezVous(ctx, in.RendezVousID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, rvdomain.ErrNotFound()
	}
	if err != nil {
		return nil, httperr.ErrUpstream("rendezvous_lookup_failed", "Erreur serveur", err)
	}
	if rv.CabinetID != in.CabinetID {
		return nil, rvdomain.ErrNotFound()
	}

	from := rvdomain.Status(rv.Status)
	to := rvdomain.Status(strings.TrimSpace(in.Status))
	if err := rvdomain.CanTransition(from, to); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateStatus(ctx, rv.ID, to); err != nil {
		return nil, httperr.ErrUpstream("rendezvous_update_failed", "Erreur lors de la mise à jour du rendez-vous", err)
	}
	rv.Status = string(to)

	uc.audit.Dispatch(audit.Event{
		CabinetID: rv.CabinetID,
		ProfileID: optional(in.ProfileID),
		Action:    "rendezvous_" + string(to),
		Entity:    "rendez_vous",
		EntityID:  &rv.ID,
		Metadata:  map[string]any{"from": string(from)},
	})

	return rv, nil
}
