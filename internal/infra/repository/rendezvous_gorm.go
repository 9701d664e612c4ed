package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/dentismart/internal/domain/reminder"
	"github.com/BruksfildServices01/dentismart/internal/domain/rendezvous"
	"github.com/BruksfildServices01/dentismart/internal/models"
)

type RendezVousGormRepository struct {
	db *gorm.DB
}

func NewRendezVousGormRepository(db *gorm.DB) *RendezVousGormRepository {
	return &RendezVousGormRepository{db: db}
}

// --------------------------------------------------
// Rendez-vous
// --------------------------------------------------

func (r *RendezVousGormRepository) CreateRendezVous(
	ctx context.Context,
	rv *models.RendezVous,
) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *RendezVousGormRepository) ListRendezVous(
	ctx context.Context,
	cabinetID string,
) ([]models.RendezVous, error) {

	var list []models.RendezVous
	q := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Dentist").
		Preload("Cabinet")

	if err := scope(q, "cabinet_id", cabinetID).
		Order("starts_at ASC").
		Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}

func (r *RendezVousGormRepository) CountStartingBetween(
	ctx context.Context,
	cabinetID string,
	from, to time.Time,
) (int64, error) {

	var count int64
	q := r.db.WithContext(ctx).
		Model(&models.RendezVous{}).
		Where("starts_at >= ? AND starts_at < ?", from, to)

	if err := scope(q, "cabinet_id", cabinetID).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *RendezVousGormRepository) GetRendezVous(
	ctx context.Context,
	id string,
) (*models.RendezVous, error) {
	var rv models.RendezVous
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&rv).Error; err != nil {
		return nil, notFound(err)
	}
	return &rv, nil
}

func (r *RendezVousGormRepository) UpdateStatus(
	ctx context.Context,
	id string,
	status rendezvous.Status,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.RendezVous{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return notFound(res.Error)
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound)
	}
	return nil
}

// --------------------------------------------------
// Reminder
// --------------------------------------------------

func (r *RendezVousGormRepository) GetRendezVousWithDetails(
	ctx context.Context,
	id string,
) (*models.RendezVous, error) {

	var rv models.RendezVous
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Dentist").
		Preload("Cabinet").
		Where("id = ?", id).
		First(&rv).Error; err != nil {
		return nil, notFound(err)
	}
	return &rv, nil
}

func (r *RendezVousGormRepository) CreateMessage(
	ctx context.Context,
	msg *models.Message,
) error {
	return r.db.WithContext(ctx).Create(msg).Error
}

func (r *RendezVousGormRepository) MarkReminderSent(
	ctx context.Context,
	rendezVousID string,
	at time.Time,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.RendezVous{}).
		Where("id = ?", rendezVousID).
		Updates(map[string]any{
			"reminder_sent":    true,
			"reminder_sent_at": at,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return notFound(gorm.ErrRecordNotFound)
	}
	return nil
}

// Compile-time checks
var (
	_ rendezvous.Repository = (*RendezVousGormRepository)(nil)
	_ reminder.Repository   = (*RendezVousGormRepository)(nil)
)
