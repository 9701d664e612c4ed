package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/dentismart/internal/domain"
	"github.com/BruksfildServices01/dentismart/internal/domain/clinic"
	"github.com/BruksfildServices01/dentismart/internal/models"
)

type ClinicGormRepository struct {
	db *gorm.DB
}

func NewClinicGormRepository(db *gorm.DB) *ClinicGormRepository {
	return &ClinicGormRepository{db: db}
}

// scope narrows q to one cabinet; an empty id leaves it unscoped.
func scope(q *gorm.DB, column, cabinetID string) *gorm.DB {
	if cabinetID == "" {
		return q
	}
	return q.Where(column+" = ?", cabinetID)
}

// --------------------------------------------------
// Cabinet
// --------------------------------------------------

func (r *ClinicGormRepository) GetCabinet(
	ctx context.Context,
	id string,
) (*models.Cabinet, error) {

	var cab models.Cabinet
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&cab).Error; err != nil {
		return nil, notFound(err)
	}
	return &cab, nil
}

func (r *ClinicGormRepository) FirstCabinet(ctx context.Context) (*models.Cabinet, error) {
	var cab models.Cabinet
	if err := r.db.WithContext(ctx).Order("created_at ASC").First(&cab).Error; err != nil {
		return nil, notFound(err)
	}
	return &cab, nil
}

// --------------------------------------------------
// Dentist
// --------------------------------------------------

func (r *ClinicGormRepository) ListActiveDentists(
	ctx context.Context,
	cabinetID string,
) ([]models.Dentist, error) {

	var dentists []models.Dentist
	q := r.db.WithContext(ctx).Where("is_active = ?", true)
	if err := scope(q, "cabinet_id", cabinetID).
		Order("last_name ASC").
		Find(&dentists).Error; err != nil {
		return nil, err
	}
	return dentists, nil
}

func (r *ClinicGormRepository) DentistInCabinet(
	ctx context.Context,
	cabinetID, dentistID string,
) (bool, error) {
	return r.exists(ctx, &models.Dentist{}, cabinetID, dentistID)
}

// exists counts rows of model with the id inside the cabinet.
func (r *ClinicGormRepository) exists(
	ctx context.Context,
	model any,
	cabinetID, id string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(model).
		Where("id = ? AND cabinet_id = ?", id, cabinetID).
		Count(&count).Error; err != nil {
		if errors.Is(notFound(err), domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return count > 0, nil
}

// --------------------------------------------------
// Patient
// --------------------------------------------------

func (r *ClinicGormRepository) CreatePatient(
	ctx context.Context,
	p *models.Patient,
) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ClinicGormRepository) ListActivePatients(
	ctx context.Context,
	cabinetID string,
) ([]models.Patient, error) {

	var patients []models.Patient
	q := r.db.WithContext(ctx).
		Preload("Dentist").
		Where("patients.is_active = ?", true)

	if err := scope(q, "patients.cabinet_id", cabinetID).
		Order("patients.created_at DESC").
		Find(&patients).Error; err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *ClinicGormRepository) CountActivePatients(
	ctx context.Context,
	cabinetID string,
) (int64, error) {

	var count int64
	q := r.db.WithContext(ctx).Model(&models.Patient{}).Where("is_active = ?", true)
	if err := scope(q, "cabinet_id", cabinetID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *ClinicGormRepository) PatientInCabinet(
	ctx context.Context,
	cabinetID, patientID string,
) (bool, error) {
	return r.exists(ctx, &models.Patient{}, cabinetID, patientID)
}

// --------------------------------------------------
// Profile
// --------------------------------------------------

func (r *ClinicGormRepository) CreateCabinetWithOwner(
	ctx context.Context,
	cabinet *models.Cabinet,
	owner *models.Profile,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(cabinet).Error; err != nil {
			return err
		}
		owner.CabinetID = cabinet.ID
		return tx.Create(owner).Error
	})
}

func (r *ClinicGormRepository) GetProfileByEmail(
	ctx context.Context,
	email string,
) (*models.Profile, error) {

	var p models.Profile
	if err := r.db.WithContext(ctx).
		Preload("Cabinet").
		Where("email = ?", email).
		First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

func (r *ClinicGormRepository) GetProfile(
	ctx context.Context,
	id string,
) (*models.Profile, error) {

	var p models.Profile
	if err := r.db.WithContext(ctx).
		Preload("Cabinet").
		Where("id = ?", id).
		First(&p).Error; err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}

// Compile-time checks
var (
	_ clinic.Repository        = (*ClinicGormRepository)(nil)
	_ clinic.ProfileRepository = (*ClinicGormRepository)(nil)
)
