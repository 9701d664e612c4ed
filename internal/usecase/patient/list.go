package patient

import (
	"context"

	"github.com/BruksfildServices01/dentismart/internal/domain/clinic"
	"github.com/BruksfildServices01/dentismart/internal/httperr"
	"github.com/BruksfildServices01/dentismart/internal/models"
)

type ListPatients struct {
	repo clinic.Repository
}

func NewListPatients(repo clinic.Repository) *ListPatients {
	return &ListPatients{repo: repo}
}

// Execute lists active patients with their dentist, newest first. An empty
// cabinetID lists every cabinet.
func (uc *ListPatients) Execute(ctx context.Context, cabinetID string) ([]models.Patient, error) {
	list, err := uc.repo.ListActivePatients(ctx, cabinetID)
	if err != nil {
		return nil, httperr.ErrUpstream("patients_list_failed", "Erreur lors de la récupération des patients", err)
	}
	return list, nil
}
