package rendezvous

import (
	"context"

	domain "github.com/BruksfildServices01/dentismart/internal/domain/rendezvous"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/models"
)

type ListRendezVous struct {
	repo domain.Repository
}

func NewListRendezVous(repo domain.Repository) *ListRendezVous {
	return &ListRendezVous{repo: repo}
}

func (uc *ListRendezVous) Execute(ctx context.Context, cabinetID string) ([]models.RendezVous, error) {
	list, err := uc.repo.ListRendezVous(ctx, cabinetID)
	if err != nil {
		return nil, httperr.ErrUpstream("rendezvous_list_failed", "Erreur lors de la récupération des rendez-vous", err)
	}
	return list, nil
}
