package report

// Row is one raw sheet row as delivered by the loading collaborator:
// header text mapped to the cell value. Values are usually strings but
// numeric cells may arrive pre-parsed, so the coercers accept both.
type Row map[string]any

// WorkType is the business classification of a reported hour.
type WorkType string

const (
	WorkTypeInvestment WorkType = "investment"
	WorkTypeExpense    WorkType = "expense"
	WorkTypeAbsence    WorkType = "absence"
	WorkTypeOther      WorkType = "other"
)

// Employee funding-model types. An unrecognized non-empty source value
// passes through as-is rather than collapsing to undefined.
const (
	EmployeeTypeMataf     = "mataf"
	EmployeeTypeProject   = "project"
	EmployeeTypeUndefined = "undefined"
)

// Requirement status buckets derived from utilization when the source
// sheet carries no status column.
const (
	StatusNormal  = "normal"
	StatusWarning = "warning"
	StatusOverrun = "overrun"
)

// HoursRecord is one normalized time-report entry. Immutable after
// normalization; aggregators only read it.
type HoursRecord struct {
	EmployeeName   string   `json:"employeeName"`
	EmployeeID     string   `json:"employeeId"`
	EmployeeType   string   `json:"employeeType"`
	Date           string   `json:"date"`
	Hours          float64  `json:"hours"`
	Task           string   `json:"task"`
	Subtask        string   `json:"subtask"`
	Classification string   `json:"classification"`
	WorkType       WorkType `json:"workType"`
	RequirementID  string   `json:"requirementId"`
	Raw            Row      `json:"-"`
}

// RequirementRecord is one normalized budget line. ActualHours and
// ActualCost are filled by the requirement linker once both datasets
// are known.
type RequirementRecord struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Budget             float64 `json:"budget"`
	Actual             float64 `json:"actual"`
	UtilizationPercent float64 `json:"utilizationPercent"`
	Status             string  `json:"status"`
	Requester          string  `json:"requester"`
	ActualHours        float64 `json:"actualHours"`
	ActualCost         float64 `json:"actualCost"`
	Raw                Row     `json:"-"`
}

// EmployeeSummary accumulates one employee's reported hours. Key is the
// employee id when present, else the name: entries without a stable id
// collapse onto the name.
type EmployeeSummary struct {
	Key               string  `json:"key"`
	Name              string  `json:"name"`
	ID                string  `json:"id"`
	Type              string  `json:"type"`
	TotalHours        float64 `json:"totalHours"`
	InvestmentHours   float64 `json:"investmentHours"`
	ExpenseHours      float64 `json:"expenseHours"`
	AbsenceHours      float64 `json:"absenceHours"`
	InvestmentPercent float64 `json:"investmentPercent"`
	ExpensePercent    float64 `json:"expensePercent"`
	RequirementCount  int     `json:"requirementCount"`
	DayCount          int     `json:"dayCount"`
	TaskCount         int     `json:"taskCount"`
}

// TaskEmployee is one employee's share of a task.
type TaskEmployee struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Hours float64 `json:"hours"`
}

// TaskSummary aggregates all hours booked against one task string.
// WorkType carries the most recently seen non-OTHER classification.
type TaskSummary struct {
	Name          string         `json:"name"`
	EmployeeCount int            `json:"employeeCount"`
	TotalHours    float64        `json:"totalHours"`
	WorkType      WorkType       `json:"workType"`
	Employees     []TaskEmployee `json:"employees"`
}

// TeamAllID is the sentinel team id meaning "no filtering".
const TeamAllID = "all"

// Team scopes derived views to a set of employee ids.
type Team struct {
	ID        string   `json:"id" yaml:"id"`
	Name      string   `json:"name" yaml:"name"`
	Manager   string   `json:"manager" yaml:"manager"`
	Employees []string `json:"employees" yaml:"employees"`
}

// IsMember reports whether the employee belongs to the team. The "all"
// sentinel admits everyone.
func (t Team) IsMember(employeeID string) bool {
	if t.ID == TeamAllID {
		return true
	}
	want := trim(employeeID)
	for _, id := range t.Employees {
		if trim(id) == want {
			return true
		}
	}
	return false
}
