package compliance

import (
	"math"

	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/domain/program"
)

// Calculator holds the compliance business constants and performs the
// single-pass hour reductions every dashboard view is built from. Two
// hour policies exist side by side: the strict one only credits Attended
// assignments, the permissive one credits every status. Each call site
// picks one explicitly; nothing infers a default.
type Calculator struct {
	targetHours     float64
	leaderboardSize int
}

func NewCalculator(targetHours float64, leaderboardSize int) *Calculator {
	return &Calculator{
		targetHours:     targetHours,
		leaderboardSize: leaderboardSize,
	}
}

func (c *Calculator) TargetHours() float64 {
	return c.targetHours
}

// SumAttendedHours sums program hours over rows with status Attended.
// This is the strict policy used for employee-facing totals.
func SumAttendedHours(rows []assignment.WithProgram) float64 {
	var total float64
	for _, row := range rows {
		if row.Assignment.Status == assignment.StatusAttended {
			total += row.Hours()
		}
	}
	return total
}

// SumAllAssignedHours sums program hours over every row regardless of
// status. This is the permissive policy the admin-wide aggregates use.
func SumAllAssignedHours(rows []assignment.WithProgram) float64 {
	var total float64
	for _, row := range rows {
		total += row.Hours()
	}
	return total
}

// CompliancePercentage converts completed hours into a percentage of the
// target, clamped to [0,100] and rounded to the nearest integer. A zero
// or negative target reports 0.
func CompliancePercentage(completed, target float64) int {
	if target <= 0 {
		return 0
	}
	ratio := completed / target
	if ratio > 1 {
		ratio = 1
	}
	if ratio < 0 {
		ratio = 0
	}
	return int(math.Round(ratio * 100))
}

// Compliance applies the configured annual target.
func (c *Calculator) Compliance(completed float64) int {
	return CompliancePercentage(completed, c.targetHours)
}

// FilterYear keeps rows whose joined program end date falls in the given
// calendar year, both boundaries inclusive. Rows without a joined program
// are dropped.
func FilterYear(rows []assignment.WithProgram, year int) []assignment.WithProgram {
	out := make([]assignment.WithProgram, 0, len(rows))
	for _, row := range rows {
		if row.EndsIn(year) {
			out = append(out, row)
		}
	}
	return out
}

// HoursByCategory buckets attended-only hours into the fixed five
// categories. Every bucket is present even when zero; unrecognized or
// missing categories fold into Others. The bucket sum always equals
// SumAttendedHours over the same rows.
func HoursByCategory(rows []assignment.WithProgram) map[program.Category]float64 {
	buckets := make(map[program.Category]float64, len(program.Categories))
	for _, cat := range program.Categories {
		buckets[cat] = 0
	}
	for _, row := range rows {
		if row.Assignment.Status != assignment.StatusAttended {
			continue
		}
		buckets[row.Category()] += row.Hours()
	}
	return buckets
}
