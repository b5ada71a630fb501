package report

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"utilboard/utils"
)

// The source sheets are Hebrew-first; the Hebrew collator also orders
// Latin text sensibly.
var collator = collate.New(language.Hebrew)

func compareCollated(a, b string) int { return collator.CompareString(a, b) }

// FilterEmployees returns the summaries belonging to the team. Pure
// view: the input is never mutated, so switching teams is a cheap
// recomputation over already-aggregated data.
func FilterEmployees(employees []EmployeeSummary, team Team) []EmployeeSummary {
	if team.ID == TeamAllID {
		return append([]EmployeeSummary(nil), employees...)
	}
	return utils.Filter(employees, func(e EmployeeSummary) bool { return team.IsMember(e.ID) })
}

// FilterHours returns the hours records belonging to the team.
func FilterHours(records []HoursRecord, team Team) []HoursRecord {
	if team.ID == TeamAllID {
		return append([]HoursRecord(nil), records...)
	}
	return utils.Filter(records, func(r HoursRecord) bool { return team.IsMember(r.EmployeeID) })
}

func matches(query string, fields ...string) bool {
	q := strings.ToLower(trim(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), q) {
			return true
		}
	}
	return false
}

// SearchEmployees matches the query against employee name and id.
func SearchEmployees(employees []EmployeeSummary, query string) []EmployeeSummary {
	return utils.Filter(employees, func(e EmployeeSummary) bool {
		return matches(query, e.Name, e.ID)
	})
}

// SearchRequirements matches the query against requirement id and name.
func SearchRequirements(requirements []RequirementRecord, query string) []RequirementRecord {
	return utils.Filter(requirements, func(r RequirementRecord) bool {
		return matches(query, r.ID, r.Name)
	})
}

// SearchHours matches the query against employee name/id and task text.
func SearchHours(records []HoursRecord, query string) []HoursRecord {
	return utils.Filter(records, func(r HoursRecord) bool {
		return matches(query, r.EmployeeName, r.EmployeeID, r.Task)
	})
}

// SearchTasks matches the query against the task name and the names of
// the employees who booked hours on it.
func SearchTasks(tasks []TaskSummary, query string) []TaskSummary {
	return utils.Filter(tasks, func(t TaskSummary) bool {
		fields := make([]string, 0, len(t.Employees)+1)
		fields = append(fields, t.Name)
		for _, e := range t.Employees {
			fields = append(fields, e.Name)
		}
		return matches(query, fields...)
	})
}

// StatusFilterAll passes every requirement; StatusFilterOverbudget is a
// synthetic bucket testing utilization against the overrun threshold.
const (
	StatusFilterAll        = "all"
	StatusFilterOverbudget = "overbudget"
)

// FilterRequirementsByStatus narrows requirements by status. Any value
// other than the two synthetic filters is an exact, case-insensitive
// match against the record status.
func FilterRequirementsByStatus(requirements []RequirementRecord, status string, overrunThreshold float64) []RequirementRecord {
	switch strings.ToLower(trim(status)) {
	case "", StatusFilterAll:
		return append([]RequirementRecord(nil), requirements...)
	case StatusFilterOverbudget:
		return utils.Filter(requirements, func(r RequirementRecord) bool {
			return r.UtilizationPercent > overrunThreshold
		})
	default:
		want := strings.ToLower(trim(status))
		return utils.Filter(requirements, func(r RequirementRecord) bool {
			return strings.ToLower(r.Status) == want
		})
	}
}

// sortBy stable-sorts a copy of xs using cmp; descending flips the
// comparison, keeping equal-key order deterministic either way.
func sortBy[T any](xs []T, descending bool, cmp func(a, b T) int) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	sort.SliceStable(out, func(i, j int) bool {
		c := cmp(out[i], out[j])
		if descending {
			return c > 0
		}
		return c < 0
	})
	return out
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SortEmployees orders summaries by the named field. Numeric fields
// compare numerically, everything else through the collator. Unknown
// fields fall back to the name.
func SortEmployees(employees []EmployeeSummary, field string, descending bool) []EmployeeSummary {
	return sortBy(employees, descending, func(a, b EmployeeSummary) int {
		switch field {
		case "id":
			return compareCollated(a.ID, b.ID)
		case "type":
			return compareCollated(a.Type, b.Type)
		case "totalHours":
			return compareFloats(a.TotalHours, b.TotalHours)
		case "investmentHours":
			return compareFloats(a.InvestmentHours, b.InvestmentHours)
		case "expenseHours":
			return compareFloats(a.ExpenseHours, b.ExpenseHours)
		case "absenceHours":
			return compareFloats(a.AbsenceHours, b.AbsenceHours)
		case "investmentPercent":
			return compareFloats(a.InvestmentPercent, b.InvestmentPercent)
		case "expensePercent":
			return compareFloats(a.ExpensePercent, b.ExpensePercent)
		case "requirementCount":
			return compareFloats(float64(a.RequirementCount), float64(b.RequirementCount))
		case "dayCount":
			return compareFloats(float64(a.DayCount), float64(b.DayCount))
		case "taskCount":
			return compareFloats(float64(a.TaskCount), float64(b.TaskCount))
		default:
			return compareCollated(a.Name, b.Name)
		}
	})
}

// SortRequirements orders requirement records by the named field.
func SortRequirements(requirements []RequirementRecord, field string, descending bool) []RequirementRecord {
	return sortBy(requirements, descending, func(a, b RequirementRecord) int {
		switch field {
		case "id":
			return compareCollated(a.ID, b.ID)
		case "status":
			return compareCollated(a.Status, b.Status)
		case "requester":
			return compareCollated(a.Requester, b.Requester)
		case "budget":
			return compareFloats(a.Budget, b.Budget)
		case "actual":
			return compareFloats(a.Actual, b.Actual)
		case "utilizationPercent":
			return compareFloats(a.UtilizationPercent, b.UtilizationPercent)
		case "actualHours":
			return compareFloats(a.ActualHours, b.ActualHours)
		case "actualCost":
			return compareFloats(a.ActualCost, b.ActualCost)
		default:
			return compareCollated(a.Name, b.Name)
		}
	})
}

// SortHours orders hours records by the named field.
func SortHours(records []HoursRecord, field string, descending bool) []HoursRecord {
	return sortBy(records, descending, func(a, b HoursRecord) int {
		switch field {
		case "employeeId":
			return compareCollated(a.EmployeeID, b.EmployeeID)
		case "date":
			return compareCollated(a.Date, b.Date)
		case "task":
			return compareCollated(a.Task, b.Task)
		case "classification":
			return compareCollated(a.Classification, b.Classification)
		case "hours":
			return compareFloats(a.Hours, b.Hours)
		default:
			return compareCollated(a.EmployeeName, b.EmployeeName)
		}
	})
}
