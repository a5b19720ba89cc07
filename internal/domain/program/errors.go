package program

import "errors"

var (
	ErrProgramNotFound      = errors.New("program not found")
	ErrInvalidCategory      = errors.New("category is not one of the known set")
	ErrInvalidDateRange     = errors.New("end time must not be before start time")
	ErrNegativeHours        = errors.New("hours must not be negative")
	ErrInvalidProgramStatus = errors.New("status is not one of the known set")
)
