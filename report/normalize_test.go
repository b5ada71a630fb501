package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRequirementID(t *testing.T) {
	tests := []struct {
		task     string
		expected string
	}{
		{"123456 - Build ingestion", "123456"},
		{"1234-short", "1234"},
		{"  123456 - leading spaces", "123456"},
		{"12345678 - too many digits", ""},
		{"123 - too few digits", ""},
		{"no id here", ""},
		{"123456 without hyphen", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.task, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractRequirementID(tt.task))
		})
	}
}

func TestNormalizeHours(t *testing.T) {
	cfg := testConfig()

	rows := []Row{
		hoursRow("דנה", "1001", "השקעה", 5.0, "123456 - Build"),
		hoursRow("", "1002", "שוטף", 3.0, "no name"),     // dropped: empty name
		hoursRow("יוסי", "1003", "שוטף", 0.0, "zero"),    // dropped: non-positive
		hoursRow("יוסי", "1003", "שוטף", -2.0, "neg"),    // dropped: non-positive
		hoursRow("רות", "1004", "חופשה", "junk", "task"), // dropped: uncoercible hours
		hoursRow("אבי", "1005", "ידני", "2.5", "plain task"),
	}

	records, stats := NormalizeHours(RowsInput(rows), cfg)
	require.Len(t, records, 2)
	assert.Equal(t, 6, stats.RowsIn)
	assert.Equal(t, 2, stats.Kept)
	assert.Equal(t, 1, stats.DroppedNoName)
	assert.Equal(t, 3, stats.DroppedNoHours)

	first := records[0]
	assert.Equal(t, "דנה", first.EmployeeName)
	assert.Equal(t, "1001", first.EmployeeID)
	assert.Equal(t, 5.0, first.Hours)
	assert.Equal(t, WorkTypeInvestment, first.WorkType)
	assert.Equal(t, "123456", first.RequirementID)

	second := records[1]
	assert.Equal(t, 2.5, second.Hours)
	assert.Equal(t, WorkTypeOther, second.WorkType)
	assert.Equal(t, "", second.RequirementID)
}

func TestNormalizeHoursExcludesConfiguredIDs(t *testing.T) {
	cfg := testConfig()
	cfg.ExcludedIDs = []string{"1001"}

	rows := []Row{
		hoursRow("דנה", "1001", "השקעה", 5.0, "t"),
		hoursRow("אבי", "1005", "השקעה", 2.0, "t"),
	}

	records, stats := NormalizeHours(RowsInput(rows), cfg)
	require.Len(t, records, 1)
	assert.Equal(t, "1005", records[0].EmployeeID)
	assert.Equal(t, 1, stats.DroppedExcluded)
}

func TestNormalizeHoursWithExceptions(t *testing.T) {
	cfg := testConfig()

	main := []Row{hoursRow("דנה", "1001", "השקעה", 5.0, "t1")}
	exceptions := []Row{hoursRow("אבי", "1005", "שוטף", 1.0, "t2")}

	records, stats := NormalizeHours(RowsWithExceptions(main, exceptions), cfg)
	require.Len(t, records, 2)
	assert.Equal(t, 2, stats.RowsIn)
	// exception rows are normalized after the main block
	assert.Equal(t, "1001", records[0].EmployeeID)
	assert.Equal(t, "1005", records[1].EmployeeID)
}

func TestNormalizeRequirements(t *testing.T) {
	cfg := testConfig()

	rows := []Row{
		{"מספר דרישה": "123456", "שם דרישה": "Build", "תקציב": "10000", "ביצוע": "4000", "דורש": "רונית"},
		{"מספר דרישה": "", "שם דרישה": ""}, // dropped: no identity
		{"מספר דרישה": "222222", "שם דרישה": "Warn", "תקציב": "1000", "ביצוע": "950"},
		{"מספר דרישה": "333333", "שם דרישה": "Over", "תקציב": "1000", "ביצוע": "1500"},
		{"מספר דרישה": "444444", "שם דרישה": "Pinned", "תקציב": "100", "ביצוע": "200", "סטטוס": "בטיפול"},
		{"מספר דרישה": "555555", "שם דרישה": "NoBudget", "תקציב": "", "ביצוע": "50"},
	}

	records, stats := NormalizeRequirements(rows, cfg)
	require.Len(t, records, 5)
	assert.Equal(t, 1, stats.DroppedNoIdentity)

	normal := records[0]
	assert.Equal(t, "123456", normal.ID)
	assert.Equal(t, 40.0, normal.UtilizationPercent)
	assert.Equal(t, StatusNormal, normal.Status)
	assert.Equal(t, "רונית", normal.Requester)

	assert.Equal(t, StatusWarning, records[1].Status)
	assert.Equal(t, StatusOverrun, records[2].Status)

	// source-provided status wins over the derived bucket
	assert.Equal(t, "בטיפול", records[3].Status)

	// zero budget means zero utilization, not a division blowup
	assert.Equal(t, 0.0, records[4].UtilizationPercent)
	assert.Equal(t, StatusNormal, records[4].Status)
}

func TestDeriveStatus(t *testing.T) {
	assert.Equal(t, StatusNormal, DeriveStatus(40, 90, 100))
	assert.Equal(t, StatusNormal, DeriveStatus(90, 90, 100))
	assert.Equal(t, StatusWarning, DeriveStatus(95, 90, 100))
	assert.Equal(t, StatusWarning, DeriveStatus(100, 90, 100))
	assert.Equal(t, StatusOverrun, DeriveStatus(101, 90, 100))
}
