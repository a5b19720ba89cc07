package profile

import "time"

type Profile struct {
	ID         string
	Name       string
	Email      string
	Department *string
	Role       Role
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  *time.Time
}

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// DepartmentOrUnknown returns the profile's department, folding a missing
// or empty value into the "Unknown" bucket used by the aggregators.
func (p Profile) DepartmentOrUnknown() string {
	if p.Department == nil || *p.Department == "" {
		return "Unknown"
	}
	return *p.Department
}
