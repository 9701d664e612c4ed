package dentist

import (
	"context"

	"github.com/BruksfildServices01/dentismart/internal/domain/clinic"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/models"
)

type ListDentists struct {
	repo clinic.Repository
}

func NewListDentists(repo clinic.Repository) *ListDentists {
	return &ListDentists{repo: repo}
}

// Execute lists active dentists ordered by last name.
func (uc *ListDentists) Execute(ctx context.Context, cabinetID string) ([]models.Dentist, error) {
	list, err := uc.repo.ListActiveDentists(ctx, cabinetID)
	if err != nil {
		return nil, httperr.ErrUpstream("dentists_list_failed", "Erreur lors de la récupération des dentistes", err)
	}
	return list, nil
}
