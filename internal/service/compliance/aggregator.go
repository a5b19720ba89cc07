package compliance

import (
	"math"
	"sort"
	"time"

	"github.com/trainhub/training-backend-go/internal/domain/assignment"
	"github.com/trainhub/training-backend-go/internal/domain/dashboard"
	"github.com/trainhub/training-backend-go/internal/domain/profile"
)

// DepartmentCompliance groups rows by the owning profile's department and
// measures total hours (all statuses) against employeeCount x target.
// Departments appear in row encounter order; missing profiles or empty
// departments land in "Unknown". Output is sorted descending by
// compliance, stable so ties keep encounter order.
func (c *Calculator) DepartmentCompliance(profiles []profile.Profile, rows []assignment.WithProgram) []dashboard.DepartmentCompliance {
	deptOf := make(map[string]string, len(profiles))
	for _, p := range profiles {
		deptOf[p.ID] = p.DepartmentOrUnknown()
	}

	type bucket struct {
		hours float64
		users map[string]struct{}
	}
	buckets := make(map[string]*bucket)
	var order []string

	for _, row := range rows {
		dept, ok := deptOf[row.UserID]
		if !ok {
			dept = "Unknown"
		}
		b := buckets[dept]
		if b == nil {
			b = &bucket{users: make(map[string]struct{})}
			buckets[dept] = b
			order = append(order, dept)
		}
		b.hours += row.Hours()
		b.users[row.UserID] = struct{}{}
	}

	out := make([]dashboard.DepartmentCompliance, 0, len(order))
	for _, dept := range order {
		b := buckets[dept]
		target := float64(len(b.users)) * c.targetHours
		percent := 0
		if target > 0 {
			percent = int(math.Round(b.hours / target * 100))
			if percent > 100 {
				percent = 100
			}
		}
		out = append(out, dashboard.DepartmentCompliance{
			Department:        dept,
			EmployeeCount:     len(b.users),
			TotalHours:        b.hours,
			TargetHours:       target,
			CompliancePercent: percent,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompliancePercent > out[j].CompliancePercent
	})
	return out
}

// MonthlyTrend buckets rows into the twelve calendar months by the
// program's end date. All twelve buckets are always present, zero-valued
// when empty; each accumulates total hours (all statuses) and a distinct
// program count.
func MonthlyTrend(rows []assignment.WithProgram) []dashboard.MonthlyTrendEntry {
	hours := make([]float64, 12)
	programs := make([]map[string]struct{}, 12)
	for i := range programs {
		programs[i] = make(map[string]struct{})
	}

	for _, row := range rows {
		if row.ProgramEndAt == nil {
			continue
		}
		m := int(row.ProgramEndAt.Month()) - 1
		hours[m] += row.Hours()
		programs[m][row.ProgramID] = struct{}{}
	}

	out := make([]dashboard.MonthlyTrendEntry, 12)
	for i := 0; i < 12; i++ {
		out[i] = dashboard.MonthlyTrendEntry{
			Month:        time.Month(i + 1).String()[:3],
			TotalHours:   hours[i],
			ProgramCount: len(programs[i]),
		}
	}
	return out
}

// Leaderboard ranks every profile by total hours (all statuses) over the
// supplied rows, descending, stable so equal hours keep profile order.
// The returned slice is capped at the configured size with 1-based ranks;
// when the invoking user falls outside it, CurrentUserEntry carries their
// entry resolved from the full sorted list.
func (c *Calculator) Leaderboard(profiles []profile.Profile, rows []assignment.WithProgram, currentUserID string) dashboard.LeaderboardResponse {
	hoursBy := make(map[string]float64, len(profiles))
	for _, row := range rows {
		hoursBy[row.UserID] += row.Hours()
	}

	full := make([]dashboard.LeaderboardEntry, 0, len(profiles))
	for _, p := range profiles {
		hours := hoursBy[p.ID]
		full = append(full, dashboard.LeaderboardEntry{
			UserID:            p.ID,
			Name:              p.Name,
			Department:        p.DepartmentOrUnknown(),
			HoursCompleted:    hours,
			CompliancePercent: c.Compliance(hours),
		})
	}

	sort.SliceStable(full, func(i, j int) bool {
		return full[i].HoursCompleted > full[j].HoursCompleted
	})
	for i := range full {
		full[i].Rank = i + 1
	}

	top := full
	if len(top) > c.leaderboardSize {
		top = top[:c.leaderboardSize]
	}
	resp := dashboard.LeaderboardResponse{Entries: top}

	if currentUserID != "" {
		inTop := false
		for _, e := range top {
			if e.UserID == currentUserID {
				inTop = true
				break
			}
		}
		if !inTop {
			for _, e := range full {
				if e.UserID == currentUserID {
					entry := e
					resp.CurrentUserEntry = &entry
					break
				}
			}
		}
	}
	return resp
}
