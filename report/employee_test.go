package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateEmployees(t *testing.T) {
	cfg := testConfig()
	records := []HoursRecord{
		{EmployeeName: "דנה", EmployeeID: "1001", EmployeeType: "עובד מטף", Hours: 5, WorkType: WorkTypeInvestment, RequirementID: "123456", Date: "01/01/2024", Task: "123456 - Build"},
		{EmployeeName: "דנה", EmployeeID: "1001", EmployeeType: "עובד מטף", Hours: 3, WorkType: WorkTypeExpense, Date: "02/01/2024", Task: "Support"},
		{EmployeeName: "דנה", EmployeeID: "1001", EmployeeType: "עובד מטף", Hours: 2, WorkType: WorkTypeOther, Date: "02/01/2024", Task: "Misc"},
		{EmployeeName: "אבי", EmployeeID: "1005", EmployeeType: "עובד פרויקט", Hours: 4, WorkType: WorkTypeAbsence, Date: "01/01/2024"},
	}

	summaries := AggregateEmployees(records, cfg.Types)
	require.Len(t, summaries, 2)

	dana := summaries[0]
	assert.Equal(t, "1001", dana.Key)
	assert.Equal(t, EmployeeTypeMataf, dana.Type)
	assert.Equal(t, 10.0, dana.TotalHours)
	assert.Equal(t, 5.0, dana.InvestmentHours)
	assert.Equal(t, 3.0, dana.ExpenseHours)
	assert.Equal(t, 0.0, dana.AbsenceHours)
	// OTHER hours count toward the total only
	assert.LessOrEqual(t, dana.InvestmentHours+dana.ExpenseHours+dana.AbsenceHours, dana.TotalHours)
	assert.Equal(t, 50.0, dana.InvestmentPercent)
	assert.Equal(t, 30.0, dana.ExpensePercent)
	assert.Equal(t, 1, dana.RequirementCount)
	assert.Equal(t, 2, dana.DayCount)
	assert.Equal(t, 3, dana.TaskCount)

	avi := summaries[1]
	assert.Equal(t, EmployeeTypeProject, avi.Type)
	assert.Equal(t, 4.0, avi.AbsenceHours)
	assert.Equal(t, 0.0, avi.InvestmentPercent)
}

func TestAggregateEmployeesKeysByIDElseName(t *testing.T) {
	cfg := testConfig()
	records := []HoursRecord{
		{EmployeeName: "ללא מספר", Hours: 1, WorkType: WorkTypeOther},
		{EmployeeName: "ללא מספר", Hours: 2, WorkType: WorkTypeOther},
		{EmployeeName: "עם מספר", EmployeeID: "2001", Hours: 3, WorkType: WorkTypeOther},
	}

	summaries := AggregateEmployees(records, cfg.Types)
	require.Len(t, summaries, 2)

	byKey := make(map[string]EmployeeSummary)
	for _, s := range summaries {
		byKey[s.Key] = s
	}
	// records without a stable id collapse onto the name
	assert.Equal(t, 3.0, byKey["ללא מספר"].TotalHours)
	assert.Equal(t, 3.0, byKey["2001"].TotalHours)
}

func TestAggregateEmployeesSingleInvestmentRecord(t *testing.T) {
	cfg := testConfig()
	rows := []Row{hoursRow("דנה", "1001", "השקעה", 5.0, "123456 - Build")}

	records, _ := NormalizeHours(RowsInput(rows), cfg)
	require.Len(t, records, 1)
	assert.Equal(t, WorkTypeInvestment, records[0].WorkType)
	assert.Equal(t, "123456", records[0].RequirementID)

	summaries := AggregateEmployees(records, cfg.Types)
	require.Len(t, summaries, 1)
	assert.Equal(t, "1001", summaries[0].Key)
	assert.Equal(t, 5.0, summaries[0].TotalHours)
	assert.Equal(t, 5.0, summaries[0].InvestmentHours)
	assert.Equal(t, 100.0, summaries[0].InvestmentPercent)
}

func TestAggregateEmployeesEmpty(t *testing.T) {
	summaries := AggregateEmployees(nil, testConfig().Types)
	assert.Empty(t, summaries)
}

func TestAggregateEmployeesPercentBounds(t *testing.T) {
	cfg := testConfig()
	records := []HoursRecord{
		{EmployeeName: "א", EmployeeID: "1", Hours: 7, WorkType: WorkTypeInvestment},
		{EmployeeName: "א", EmployeeID: "1", Hours: 2, WorkType: WorkTypeOther},
	}
	summaries := AggregateEmployees(records, cfg.Types)
	for _, s := range summaries {
		assert.GreaterOrEqual(t, s.InvestmentPercent, 0.0)
		assert.LessOrEqual(t, s.InvestmentPercent, 100.0)
		assert.GreaterOrEqual(t, s.ExpensePercent, 0.0)
		assert.LessOrEqual(t, s.ExpensePercent, 100.0)
	}
}
