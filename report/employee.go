package report

import "sort"

// employeeAccum is the in-fold accumulator. It never escapes
// AggregateEmployees, so partially-folded state is not observable.
type employeeAccum struct {
	name         string
	id           string
	rawType      string
	total        float64
	investment   float64
	expense      float64
	absence      float64
	requirements map[string]struct{}
	days         map[string]struct{}
	tasks        map[string]struct{}
}

// AggregateEmployees folds hours records into one summary per employee,
// keyed by employee id when present, else by name. Percentages and
// distinct counts are computed once, after the fold completes.
func AggregateEmployees(records []HoursRecord, types TypeSynonyms) []EmployeeSummary {
	accums := make(map[string]*employeeAccum)

	for _, rec := range records {
		key := rec.EmployeeID
		if key == "" {
			key = rec.EmployeeName
		}
		acc, ok := accums[key]
		if !ok {
			acc = &employeeAccum{
				name:         rec.EmployeeName,
				id:           rec.EmployeeID,
				rawType:      rec.EmployeeType,
				requirements: make(map[string]struct{}),
				days:         make(map[string]struct{}),
				tasks:        make(map[string]struct{}),
			}
			accums[key] = acc
		}
		acc.total += rec.Hours
		switch rec.WorkType {
		case WorkTypeInvestment:
			acc.investment += rec.Hours
		case WorkTypeExpense:
			acc.expense += rec.Hours
		case WorkTypeAbsence:
			acc.absence += rec.Hours
		}
		if rec.RequirementID != "" {
			acc.requirements[rec.RequirementID] = struct{}{}
		}
		if rec.Date != "" {
			acc.days[rec.Date] = struct{}{}
		}
		if rec.Task != "" {
			acc.tasks[rec.Task] = struct{}{}
		}
	}

	summaries := make([]EmployeeSummary, 0, len(accums))
	for key, acc := range accums {
		s := EmployeeSummary{
			Key:              key,
			Name:             acc.name,
			ID:               acc.id,
			Type:             types.NormalizeEmployeeType(acc.rawType),
			TotalHours:       acc.total,
			InvestmentHours:  acc.investment,
			ExpenseHours:     acc.expense,
			AbsenceHours:     acc.absence,
			RequirementCount: len(acc.requirements),
			DayCount:         len(acc.days),
			TaskCount:        len(acc.tasks),
		}
		if acc.total > 0 {
			s.InvestmentPercent = acc.investment / acc.total * 100
			s.ExpensePercent = acc.expense / acc.total * 100
		}
		summaries = append(summaries, s)
	}
	sort.Slice(summaries, func(i, j int) bool { return summaries[i].Key < summaries[j].Key })
	return summaries
}
