package database

import (
	"errors"
	"fmt"
)

var (
	ErrModelRequired  = errors.New("model is required")
	ErrInvalidBetween = errors.New("query.between must hold a start and an end, start not after end")
)

// InvalidModelError is returned when the find discriminator names no data source.
type InvalidModelError struct {
	Model string
}

func (e *InvalidModelError) Error() string {
	return fmt.Sprintf("Model %q is invalid.", e.Model)
}
