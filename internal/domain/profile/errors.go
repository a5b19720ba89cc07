package profile

import "errors"

var (
	ErrProfileNotFound  = errors.New("profile not found")
	ErrProfileInactive  = errors.New("profile is inactive")
	ErrEmailExists      = errors.New("email already registered")
	ErrInvalidRole      = errors.New("role must be admin or employee")
	ErrInvalidStatus    = errors.New("status must be active or inactive")
	ErrCannotDeleteSelf = errors.New("cannot delete your own profile")
)
