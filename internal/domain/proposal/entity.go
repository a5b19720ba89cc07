package proposal

import "time"

// ProposedTraining holds an employee's two free-text training proposals
// for a year. One row exists per (user, year); writes are upserts.
type ProposedTraining struct {
	ID                 string
	UserID             string
	Year               int
	SlotOne            *string
	SlotTwo            *string
	SlotOneEntertained bool
	SlotTwoEntertained bool
	EntertainedBy      *string
	EntertainedAt      *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// Slot identifies one of the two proposal slots.
type Slot int

const (
	SlotFirst  Slot = 1
	SlotSecond Slot = 2
)

// TargetYear resolves which year a proposal submitted at t applies to.
// The proposal window runs December through January: December submissions
// target the coming year, January submissions the current one.
func TargetYear(t time.Time) (int, bool) {
	switch t.Month() {
	case time.December:
		return t.Year() + 1, true
	case time.January:
		return t.Year(), true
	}
	return 0, false
}
