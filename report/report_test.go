package report

func testConfig() Config {
	return Config{
		Fields: FieldTable{
			EmployeeName:   []string{"שם עובד", "employee name"},
			EmployeeID:     []string{"מספר עובד", "employee id"},
			EmployeeType:   []string{"סוג עובד", "employee type"},
			Date:           []string{"תאריך", "date"},
			Hours:          []string{"שעות", "hours"},
			Task:           []string{"משימה", "task"},
			Subtask:        []string{"תת משימה", "subtask"},
			Classification: []string{"סיווג", "classification"},
			ReqID:          []string{"מספר דרישה", "requirement id"},
			ReqName:        []string{"שם דרישה", "requirement name"},
			ReqBudget:      []string{"תקציב", "budget"},
			ReqActual:      []string{"ביצוע", "actual"},
			ReqRequester:   []string{"דורש", "requester"},
			ReqStatus:      []string{"סטטוס", "status"},
		},
		Keywords: Keywords{
			Investment: []string{"השקעה", "investment"},
			Expense:    []string{"שוטף", "expense"},
			Absence:    []string{"חופשה", "היעדרות", "absence"},
		},
		Types: TypeSynonyms{
			Qualifiers: []string{"עובד", "employee"},
			Mataf:      []string{"מטף", "mataf"},
			Project:    []string{"פרויקט", "project"},
		},
		MonthlyRate:      33600, // 33600 / (20 * 8) = 210 per hour
		WorkingDays:      20,
		DailyHours:       8,
		WarningThreshold: 90,
		OverrunThreshold: 100,
		MatrixCap:        20,
	}
}

func hoursRow(name, id, classification string, hours any, task string) Row {
	return Row{
		"שם עובד":   name,
		"מספר עובד": id,
		"סיווג":     classification,
		"שעות":      hours,
		"משימה":     task,
	}
}
