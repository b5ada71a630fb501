package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	keywords := testConfig().Keywords

	tests := []struct {
		label    string
		expected WorkType
	}{
		{"השקעה", WorkTypeInvestment},
		{"פרויקט השקעה חדש", WorkTypeInvestment},
		{"שוטף", WorkTypeExpense},
		{"חופשה שנתית", WorkTypeAbsence},
		{"INVESTMENT", WorkTypeInvestment},
		{"ישיבות צוות", WorkTypeOther},
		{"", WorkTypeOther},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.expected, keywords.Classify(tt.label))
		})
	}
}

func TestClassifyPrecedence(t *testing.T) {
	// A label matching both an investment and an absence keyword must
	// resolve to investment: categories are checked in order.
	keywords := testConfig().Keywords
	assert.Equal(t, WorkTypeInvestment, keywords.Classify("investment during absence"))
	assert.Equal(t, WorkTypeInvestment, keywords.Classify("השקעה בזמן חופשה"))
}

func TestNormalizeEmployeeType(t *testing.T) {
	types := testConfig().Types

	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"mataf synonym", "מטף", EmployeeTypeMataf},
		{"qualifier stripped before matching", "עובד מטף", EmployeeTypeMataf},
		{"project synonym", "עובד פרויקט", EmployeeTypeProject},
		{"english", "employee project", EmployeeTypeProject},
		{"unmatched non-empty passes through", "עובד קבלן", "קבלן"},
		{"empty", "", EmployeeTypeUndefined},
		{"qualifier only", "עובד", EmployeeTypeUndefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, types.NormalizeEmployeeType(tt.raw))
		})
	}
}
