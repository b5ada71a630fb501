package report

import (
	"sort"

	"utilboard/utils"
)

// AggregateTasks folds hours records into one summary per exact task
// string, sorted by descending total hours. Rows with an empty task are
// skipped. A task's work type is the most recently seen non-OTHER
// classification: later records override earlier ones.
func AggregateTasks(records []HoursRecord) []TaskSummary {
	withTask := utils.Filter(records, func(r HoursRecord) bool { return r.Task != "" })
	groups := utils.GroupBy(withTask, func(r HoursRecord) string { return r.Task })

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	summaries := make([]TaskSummary, 0, len(groups))
	for _, name := range names {
		group := groups[name]
		byEmployee := make(map[string]*TaskEmployee)
		var order []string
		total := 0.0
		workType := WorkTypeOther

		for _, rec := range group {
			total += rec.Hours
			if rec.WorkType != WorkTypeOther {
				workType = rec.WorkType
			}
			key := rec.EmployeeID
			if key == "" {
				key = rec.EmployeeName
			}
			emp, ok := byEmployee[key]
			if !ok {
				emp = &TaskEmployee{ID: rec.EmployeeID, Name: rec.EmployeeName}
				byEmployee[key] = emp
				order = append(order, key)
			}
			emp.Hours += rec.Hours
		}

		employees := make([]TaskEmployee, 0, len(order))
		for _, key := range order {
			employees = append(employees, *byEmployee[key])
		}
		sort.SliceStable(employees, func(i, j int) bool { return employees[i].Hours > employees[j].Hours })

		summaries = append(summaries, TaskSummary{
			Name:          name,
			EmployeeCount: len(employees),
			TotalHours:    total,
			WorkType:      workType,
			Employees:     employees,
		})
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].TotalHours != summaries[j].TotalHours {
			return summaries[i].TotalHours > summaries[j].TotalHours
		}
		return summaries[i].Name < summaries[j].Name
	})
	return summaries
}

// TaskMatrix ranks tasks by descending distinct-employee count and caps
// the result for compact overview rendering.
func TaskMatrix(tasks []TaskSummary, limit int) []TaskSummary {
	if limit <= 0 {
		limit = DefaultMatrixCap
	}
	ranked := make([]TaskSummary, len(tasks))
	copy(ranked, tasks)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].EmployeeCount != ranked[j].EmployeeCount {
			return ranked[i].EmployeeCount > ranked[j].EmployeeCount
		}
		return ranked[i].TotalHours > ranked[j].TotalHours
	})
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
