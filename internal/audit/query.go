package audit

import (
	"context"
	"time"

	"github.com/BruksfildServices01/dentismart/internal/models"
)

const (
	DefaultLimit = 50
	MaxLimit     = 200
)

// Filter selects audit rows of one cabinet. Zero values mean "any".
type Filter struct {
	CabinetID string
	Action    string
	Entity    string
	From      *time.Time
	To        *time.Time // exclusive

	Page  int
	Limit int
}

// Normalize clamps paging to sane values.
func (f Filter) Normalize() Filter {
	if f.Page <= 0 {
		f.Page = 1
	}
	if f.Limit <= 0 || f.Limit > MaxLimit {
		f.Limit = DefaultLimit
	}
	return f
}

func (f Filter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type Reader interface {
	ListAuditLogs(ctx context.Context, f Filter) ([]models.AuditLog, int64, error)
}

func (l *Logger) ListAuditLogs(ctx context.Context, f Filter) ([]models.AuditLog, int64, error) {
	f = f.Normalize()

	q := l.db.WithContext(ctx).
		Model(&models.AuditLog{}).
		Where("cabinet_id = ?", f.CabinetID)

	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(f.Limit).
		Offset(f.Offset()).
		Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}

var _ Reader = (*Logger)(nil)
