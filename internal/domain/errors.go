package domain

import (
	"errors"

	"github.com/google/uuid"
)

// ErrNotFound is returned by repositories when the requested row is absent.
var ErrNotFound = errors.New("record not found")

// ValidID reports whether s can name a row. Primary keys are UUIDs, so
// anything else cannot match and is treated as absent by callers.
func ValidID(s string) bool {
	_, err := uuid.Parse(s)
	return err == nil
}
