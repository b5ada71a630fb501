package report

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregateTasks(t *testing.T) {
	records := []HoursRecord{
		{EmployeeName: "דנה", EmployeeID: "1001", Task: "Build", Hours: 5, WorkType: WorkTypeInvestment},
		{EmployeeName: "אבי", EmployeeID: "1005", Task: "Build", Hours: 7, WorkType: WorkTypeOther},
		{EmployeeName: "דנה", EmployeeID: "1001", Task: "Support", Hours: 2, WorkType: WorkTypeExpense},
		{EmployeeName: "דנה", EmployeeID: "1001", Task: "", Hours: 9, WorkType: WorkTypeOther}, // skipped: empty task
	}

	tasks := AggregateTasks(records)
	require.Len(t, tasks, 2)

	// sorted by descending total hours
	build := tasks[0]
	assert.Equal(t, "Build", build.Name)
	assert.Equal(t, 12.0, build.TotalHours)
	assert.Equal(t, 2, build.EmployeeCount)
	// OTHER never overrides a real classification
	assert.Equal(t, WorkTypeInvestment, build.WorkType)

	// per-employee breakdown sorted by descending hours
	require.Len(t, build.Employees, 2)
	assert.Equal(t, "אבי", build.Employees[0].Name)
	assert.Equal(t, 7.0, build.Employees[0].Hours)
	assert.Equal(t, 5.0, build.Employees[1].Hours)

	assert.Equal(t, "Support", tasks[1].Name)
}

func TestAggregateTasksLastNonOtherWins(t *testing.T) {
	records := []HoursRecord{
		{EmployeeName: "א", Task: "T", Hours: 1, WorkType: WorkTypeInvestment},
		{EmployeeName: "א", Task: "T", Hours: 1, WorkType: WorkTypeExpense},
		{EmployeeName: "א", Task: "T", Hours: 1, WorkType: WorkTypeOther},
	}
	tasks := AggregateTasks(records)
	require.Len(t, tasks, 1)
	// later records override earlier ones; trailing OTHER does not
	assert.Equal(t, WorkTypeExpense, tasks[0].WorkType)
}

func TestTaskMatrixCap(t *testing.T) {
	var records []HoursRecord
	counts := map[string]int{"five": 5, "three": 3, "one": 1}
	for task, n := range counts {
		for i := 0; i < n; i++ {
			records = append(records, HoursRecord{
				EmployeeName: fmt.Sprintf("emp-%s-%d", task, i),
				EmployeeID:   fmt.Sprintf("%s-%d", task, i),
				Task:         task,
				Hours:        1,
				WorkType:     WorkTypeOther,
			})
		}
	}

	tasks := AggregateTasks(records)
	require.Len(t, tasks, 3)

	matrix := TaskMatrix(tasks, 2)
	require.Len(t, matrix, 2)
	assert.Equal(t, "five", matrix[0].Name)
	assert.Equal(t, 5, matrix[0].EmployeeCount)
	assert.Equal(t, "three", matrix[1].Name)

	// the full list is untouched by capping
	assert.Len(t, tasks, 3)
}

func TestTaskMatrixDefaultCap(t *testing.T) {
	var records []HoursRecord
	for i := 0; i < 30; i++ {
		records = append(records, HoursRecord{
			EmployeeName: "א",
			Task:         fmt.Sprintf("task-%02d", i),
			Hours:        1,
			WorkType:     WorkTypeOther,
		})
	}
	tasks := AggregateTasks(records)
	assert.Len(t, TaskMatrix(tasks, 0), DefaultMatrixCap)
}
