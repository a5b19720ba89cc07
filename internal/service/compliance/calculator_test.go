package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/domain/program"
)

func row(userID string, status assignment.Status, hours float64, end time.Time, category program.Category) assignment.WithProgram {
	h := hours
	e := end
	c := category
	return assignment.WithProgram{
		Assignment: assignment.Assignment{
			ID:        userID + "-" + string(status) + e.Format("20060102"),
			UserID:    userID,
			ProgramID: "prog-" + e.Format("20060102150405"),
			Status:    status,
		},
		ProgramHours:    &h,
		ProgramEndAt:    &e,
		ProgramCategory: &c,
	}
}

func TestSumHours_BothPolicies(t *testing.T) {
	// Scenario from the dashboard contract: one attended 8h row, one
	// merely assigned 16h row.
	rows := []assignment.WithProgram{
		row("u1", assignment.StatusAttended, 8, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), program.CategoryTechnical),
		row("u1", assignment.StatusAssigned, 16, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), program.CategoryTechnical),
	}

	assert.Equal(t, 8.0, SumAttendedHours(rows))
	assert.Equal(t, 24.0, SumAllAssignedHours(rows))
	assert.Equal(t, 20, CompliancePercentage(8, 40))
	assert.Equal(t, 60, CompliancePercentage(24, 40))
}

func TestCompliancePercentage_Clamped(t *testing.T) {
	cases := []struct {
		name      string
		completed float64
		target    float64
		want      int
	}{
		{"zero target", 100, 0, 0},
		{"negative target", 10, -5, 0},
		{"zero completed", 0, 40, 0},
		{"half", 20, 40, 50},
		{"exact", 40, 40, 100},
		{"over target clamps", 400, 40, 100},
		{"rounds half up", 25, 40, 63}, // 62.5
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := CompliancePercentage(c.completed, c.target)
			assert.Equal(t, c.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestFilterYear_InclusiveBoundaries(t *testing.T) {
	rows := []assignment.WithProgram{
		row("u1", assignment.StatusAttended, 1, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), program.CategoryTechnical),
		row("u1", assignment.StatusAttended, 2, time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC), program.CategoryTechnical),
		row("u1", assignment.StatusAttended, 4, time.Date(2023, 12, 31, 23, 59, 59, 0, time.UTC), program.CategoryTechnical),
		row("u1", assignment.StatusAttended, 8, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), program.CategoryTechnical),
	}

	got := FilterYear(rows, 2024)
	assert.Len(t, got, 2)
	assert.Equal(t, 3.0, SumAttendedHours(got))
}

func TestFilterYear_DropsRowsWithoutProgram(t *testing.T) {
	dangling := assignment.WithProgram{
		Assignment: assignment.Assignment{ID: "a1", UserID: "u1", ProgramID: "p1", Status: assignment.StatusAttended},
	}
	assert.Empty(t, FilterYear([]assignment.WithProgram{dangling}, 2024))
	// The permissive sum still tolerates the missing join.
	assert.Equal(t, 0.0, SumAllAssignedHours([]assignment.WithProgram{dangling}))
}

func TestHoursByCategory_Conservation(t *testing.T) {
	end := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	rows := []assignment.WithProgram{
		row("u1", assignment.StatusAttended, 8, end, program.CategoryTechnical),
		row("u1", assignment.StatusAttended, 4, end, program.CategoryLeadership),
		row("u1", assignment.StatusAttended, 2, end, program.Category("Workshop")), // unknown -> Others
		row("u1", assignment.StatusAssigned, 16, end, program.CategoryMandatory),   // not attended, ignored
	}

	buckets := HoursByCategory(rows)

	assert.Len(t, buckets, 5)
	assert.Equal(t, 8.0, buckets[program.CategoryTechnical])
	assert.Equal(t, 4.0, buckets[program.CategoryLeadership])
	assert.Equal(t, 2.0, buckets[program.CategoryOthers])
	assert.Equal(t, 0.0, buckets[program.CategoryMandatory])
	assert.Equal(t, 0.0, buckets[program.CategorySoftSkill])

	var total float64
	for _, h := range buckets {
		total += h
	}
	assert.Equal(t, SumAttendedHours(rows), total)
}

func TestHoursByCategory_MissingCategoryFoldsIntoOthers(t *testing.T) {
	end := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	h := 3.0
	noCategory := assignment.WithProgram{
		Assignment:   assignment.Assignment{ID: "a1", UserID: "u1", ProgramID: "p1", Status: assignment.StatusAttended},
		ProgramHours: &h,
		ProgramEndAt: &end,
	}

	buckets := HoursByCategory([]assignment.WithProgram{noCategory})
	assert.Equal(t, 3.0, buckets[program.CategoryOthers])
}

func TestCalculator_Compliance_UsesConfiguredTarget(t *testing.T) {
	calc := NewCalculator(80, 10)
	assert.Equal(t, 50, calc.Compliance(40))
	assert.Equal(t, 80.0, calc.TargetHours())
}
