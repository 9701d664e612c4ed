package lead

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/dentismart/internal/models"
)

type Store interface {
	CreateLead(ctx context.Context, l *models.Lead) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateLead(ctx context.Context, l *models.Lead) error {
	return s.db.WithContext(ctx).Create(l).Error
}

var _ Store = (*GormStore)(nil)
