package common

import (
	"errors"
	"fmt"
)

// ErrSlotConflict is returned when the re-check at write time finds an
// existing confirmed reservation for the same (restaurant, table, time).
var ErrSlotConflict = errors.New("table is not available at this time")

// FieldError names the required field a caller left out.
type FieldError struct {
	Field string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
