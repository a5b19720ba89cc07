package program

import "time"

type Program struct {
	ID        string
	Title     string
	Category  Category
	StartAt   time.Time
	EndAt     time.Time
	Hours     float64
	Status    Status
	CreatedBy *string
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type Category string

const (
	CategoryTechnical  Category = "Technical"
	CategoryLeadership Category = "Leadership"
	CategorySoftSkill  Category = "Soft Skill"
	CategoryMandatory  Category = "Mandatory"
	CategoryOthers     Category = "Others"
)

// Categories is the closed set of program categories, in display order.
var Categories = []Category{
	CategoryTechnical,
	CategoryLeadership,
	CategorySoftSkill,
	CategoryMandatory,
	CategoryOthers,
}

// ValidCategory reports whether c is one of the closed category set.
func ValidCategory(c Category) bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Normalize folds any unrecognized category value into Others. The
// aggregators never reject a row for a bad category.
func (c Category) Normalize() Category {
	if ValidCategory(c) {
		return c
	}
	return CategoryOthers
}

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusOngoing   Status = "ongoing"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ValidStatus reports whether s is a known program status.
func ValidStatus(s Status) bool {
	switch s {
	case StatusScheduled, StatusOngoing, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
