package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"parma-backoffice/internal/models"
	"parma-backoffice/internal/storage"
)

// mapRepoError maps storage errors to service errors.
func mapRepoError(err error, operation string) error {
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %s", ErrNotFound, operation)
	}
	if errors.Is(err, storage.ErrConflict) {
		return fmt.Errorf("%w: %s (%v)", ErrConflict, operation, err)
	}
	log.Printf("Unexpected repository error during %s: %v", operation, err)
	return fmt.Errorf("internal error during %s: %w", operation, err)
}

// parseDate parses a dd/mm/yyyy value.
func parseDate(s string) (time.Time, error) {
	return time.Parse(models.DateLayout, s)
}

// onOrBeforeToday compares calendar dates only, ignoring time of day.
func onOrBeforeToday(d time.Time) bool {
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return !d.After(today)
}

// today returns the current calendar date in the persisted layout.
func today() string {
	return time.Now().Format(models.DateLayout)
}

// fieldChange is one audited difference produced by an edit.
type fieldChange struct {
	field, old, new string
}

// applyChange overwrites dst with src when src is set and different,
// recording the difference under the persisted column name.
func applyChange(dst *string, src *string, field string, changes *[]fieldChange) {
	if src == nil || *src == *dst {
		return
	}
	*changes = append(*changes, fieldChange{field: field, old: *dst, new: *src})
	*dst = *src
}
