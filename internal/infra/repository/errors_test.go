package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/dentismart/internal/domain"
)

func TestNotFound(t *testing.T) {
	boom := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"missing row", gorm.ErrRecordNotFound, domain.ErrNotFound},
		{"malformed uuid", fmt.Errorf("select: %w", &pgconn.PgError{Code: "22P02"}), domain.ErrNotFound},
		{"other pg error", &pgconn.PgError{Code: "23503"}, nil},
		{"driver error", boom, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := notFound(tt.err)
			if tt.want == nil {
				if errors.Is(got, domain.ErrNotFound) {
					t.Fatalf("notFound(%v) = ErrNotFound, want passthrough", tt.err)
				}
				return
			}
			if !errors.Is(got, tt.want) {
				t.Errorf("notFound(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
