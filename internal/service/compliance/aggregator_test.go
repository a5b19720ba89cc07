package compliance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/domain/profile"
	"github.com/trainhub/training-backend-go/internal/domain/program"
)

func prof(id, name, dept string) profile.Profile {
	p := profile.Profile{ID: id, Name: name, Status: profile.StatusActive, Role: profile.RoleEmployee}
	if dept != "" {
		p.Department = &dept
	}
	return p
}

func deptRow(userID, programID string, hours float64, end time.Time) assignment.WithProgram {
	h := hours
	e := end
	c := program.CategoryTechnical
	return assignment.WithProgram{
		Assignment: assignment.Assignment{
			ID:        programID + "-" + userID,
			UserID:    userID,
			ProgramID: programID,
			Status:    assignment.StatusAssigned,
		},
		ProgramHours:    &h,
		ProgramEndAt:    &e,
		ProgramCategory: &c,
	}
}

func TestDepartmentCompliance_Scenario(t *testing.T) {
	// Eng: 2 employees, total 50h, target 80h -> round(62.5) = 63.
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	profiles := []profile.Profile{
		prof("u1", "Alice", "Eng"),
		prof("u2", "Bob", "Eng"),
		prof("u3", "Cara", "Sales"),
	}
	rows := []assignment.WithProgram{
		deptRow("u1", "p1", 30, end),
		deptRow("u2", "p2", 20, end),
		deptRow("u3", "p3", 40, end),
	}

	calc := NewCalculator(40, 10)
	got := calc.DepartmentCompliance(profiles, rows)

	require.Len(t, got, 2)
	// Sales: 40/40 = 100, sorts first.
	assert.Equal(t, "Sales", got[0].Department)
	assert.Equal(t, 100, got[0].CompliancePercent)
	assert.Equal(t, 1, got[0].EmployeeCount)

	assert.Equal(t, "Eng", got[1].Department)
	assert.Equal(t, 2, got[1].EmployeeCount)
	assert.Equal(t, 50.0, got[1].TotalHours)
	assert.Equal(t, 80.0, got[1].TargetHours)
	assert.Equal(t, 63, got[1].CompliancePercent)
}

func TestDepartmentCompliance_UnknownBucketAndStableTies(t *testing.T) {
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	profiles := []profile.Profile{
		prof("u1", "Alice", ""), // no department
		prof("u2", "Bob", "Ops"),
	}
	rows := []assignment.WithProgram{
		deptRow("u1", "p1", 40, end),
		deptRow("u2", "p2", 40, end),
		deptRow("u9", "p3", 40, end), // no profile at all
	}

	calc := NewCalculator(40, 10)
	got := calc.DepartmentCompliance(profiles, rows)

	require.Len(t, got, 2)
	// Both buckets sit at 100; the stable sort keeps encounter order, and
	// the profile-less user folds into Unknown alongside Alice.
	assert.Equal(t, "Unknown", got[0].Department)
	assert.Equal(t, 2, got[0].EmployeeCount)
	assert.Equal(t, 80.0, got[0].TotalHours)
	assert.Equal(t, "Ops", got[1].Department)
}

func TestDepartmentCompliance_EmptyInput(t *testing.T) {
	calc := NewCalculator(40, 10)
	got := calc.DepartmentCompliance(nil, nil)
	assert.Empty(t, got)
}

func TestMonthlyTrend_AlwaysTwelveBuckets(t *testing.T) {
	got := MonthlyTrend(nil)
	require.Len(t, got, 12)
	assert.Equal(t, "Jan", got[0].Month)
	assert.Equal(t, "Dec", got[11].Month)
	for _, entry := range got {
		assert.Zero(t, entry.TotalHours)
		assert.Zero(t, entry.ProgramCount)
	}
}

func TestMonthlyTrend_BucketsByEndDateWithDistinctPrograms(t *testing.T) {
	march := time.Date(2024, 3, 20, 0, 0, 0, 0, time.UTC)
	rows := []assignment.WithProgram{
		deptRow("u1", "p1", 8, march),
		deptRow("u2", "p1", 8, march), // same program, second attendee
		deptRow("u1", "p2", 4, march),
		deptRow("u1", "p3", 2, time.Date(2024, 11, 5, 0, 0, 0, 0, time.UTC)),
	}

	got := MonthlyTrend(rows)
	require.Len(t, got, 12)

	assert.Equal(t, 20.0, got[2].TotalHours) // March
	assert.Equal(t, 2, got[2].ProgramCount)  // p1 counted once
	assert.Equal(t, 2.0, got[10].TotalHours) // November
	assert.Equal(t, 1, got[10].ProgramCount)
}

func TestMonthlyTrend_SkipsRowsWithoutProgram(t *testing.T) {
	dangling := assignment.WithProgram{
		Assignment: assignment.Assignment{ID: "a1", UserID: "u1", ProgramID: "p1", Status: assignment.StatusAttended},
	}
	got := MonthlyTrend([]assignment.WithProgram{dangling})
	for _, entry := range got {
		assert.Zero(t, entry.TotalHours)
		assert.Zero(t, entry.ProgramCount)
	}
}

func TestLeaderboard_OrderingRanksAndCap(t *testing.T) {
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	var profiles []profile.Profile
	var rows []assignment.WithProgram
	// u01..u12 with hours 1..12.
	ids := []string{"u01", "u02", "u03", "u04", "u05", "u06", "u07", "u08", "u09", "u10", "u11", "u12"}
	for i, id := range ids {
		profiles = append(profiles, prof(id, "User "+id, "Eng"))
		rows = append(rows, deptRow(id, "p-"+id, float64(i+1), end))
	}

	calc := NewCalculator(40, 10)
	got := calc.Leaderboard(profiles, rows, "u01")

	require.Len(t, got.Entries, 10)
	for i, entry := range got.Entries {
		assert.Equal(t, i+1, entry.Rank)
		if i > 0 {
			assert.GreaterOrEqual(t, got.Entries[i-1].HoursCompleted, entry.HoursCompleted)
		}
	}
	assert.Equal(t, "u12", got.Entries[0].UserID)
	assert.Equal(t, 12.0, got.Entries[0].HoursCompleted)
	assert.Equal(t, 30, got.Entries[0].CompliancePercent)

	// u01 (1 hour) sits at rank 12, outside the top 10.
	require.NotNil(t, got.CurrentUserEntry)
	assert.Equal(t, "u01", got.CurrentUserEntry.UserID)
	assert.Equal(t, 12, got.CurrentUserEntry.Rank)
	assert.Equal(t, 1.0, got.CurrentUserEntry.HoursCompleted)
}

func TestLeaderboard_IncludesProfilesWithoutAssignments(t *testing.T) {
	profiles := []profile.Profile{
		prof("u1", "Alice", "Eng"),
		prof("u2", "Bob", "Eng"),
	}
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := []assignment.WithProgram{deptRow("u2", "p1", 10, end)}

	calc := NewCalculator(40, 10)
	got := calc.Leaderboard(profiles, rows, "")

	require.Len(t, got.Entries, 2)
	assert.Equal(t, "u2", got.Entries[0].UserID)
	assert.Equal(t, "u1", got.Entries[1].UserID)
	assert.Zero(t, got.Entries[1].HoursCompleted)
	assert.Nil(t, got.CurrentUserEntry)
}

func TestLeaderboard_StableTiesKeepProfileOrder(t *testing.T) {
	profiles := []profile.Profile{
		prof("u1", "Alice", "Eng"),
		prof("u2", "Bob", "Eng"),
		prof("u3", "Cara", "Eng"),
	}
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	rows := []assignment.WithProgram{
		deptRow("u1", "p1", 5, end),
		deptRow("u2", "p2", 5, end),
		deptRow("u3", "p3", 5, end),
	}

	calc := NewCalculator(40, 10)
	got := calc.Leaderboard(profiles, rows, "")

	require.Len(t, got.Entries, 3)
	assert.Equal(t, []string{"u1", "u2", "u3"}, []string{
		got.Entries[0].UserID, got.Entries[1].UserID, got.Entries[2].UserID,
	})
}

func TestLeaderboard_CurrentUserInTopHasNoSeparateEntry(t *testing.T) {
	profiles := []profile.Profile{prof("u1", "Alice", "Eng")}
	calc := NewCalculator(40, 10)
	got := calc.Leaderboard(profiles, nil, "u1")
	require.Len(t, got.Entries, 1)
	assert.Nil(t, got.CurrentUserEntry)
}

func TestAggregators_Idempotent(t *testing.T) {
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	profiles := []profile.Profile{prof("u1", "Alice", "Eng"), prof("u2", "Bob", "Ops")}
	rows := []assignment.WithProgram{
		deptRow("u1", "p1", 5, end),
		deptRow("u2", "p2", 7, end),
	}

	calc := NewCalculator(40, 10)
	assert.Equal(t, calc.DepartmentCompliance(profiles, rows), calc.DepartmentCompliance(profiles, rows))
	assert.Equal(t, MonthlyTrend(rows), MonthlyTrend(rows))
	assert.Equal(t, calc.Leaderboard(profiles, rows, "u1"), calc.Leaderboard(profiles, rows, "u1"))
}
