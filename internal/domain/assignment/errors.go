package assignment

import "errors"

var (
	ErrAssignmentNotFound = errors.New("assignment not found")
	ErrAlreadyAssigned    = errors.New("user is already assigned to this program")
	ErrInvalidStatus      = errors.New("unknown assignment status")
	ErrNotAssigned        = errors.New("user is not assigned to this program")
	ErrAlreadyAttended    = errors.New("attendance already marked")
)
