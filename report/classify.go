package report

import (
	"errors"
	"strings"
)

var errEmptyKeywords = errors.New("work-type keywords: every category needs at least one keyword")

// Keywords holds the per-category keyword lists used to classify the
// free-text work classification column. Categories are checked in order
// (investment, expense, absence) because the keyword sets may overlap
// loosely; investment wins ties.
type Keywords struct {
	Investment []string `yaml:"investment"`
	Expense    []string `yaml:"expense"`
	Absence    []string `yaml:"absence"`
}

// Validate requires every category to carry at least one keyword.
func (k Keywords) Validate() error {
	if len(k.Investment) == 0 || len(k.Expense) == 0 || len(k.Absence) == 0 {
		return errEmptyKeywords
	}
	return nil
}

// Classify maps a free-text label onto a work type by case-insensitive
// substring containment. No match means OTHER.
func (k Keywords) Classify(label string) WorkType {
	l := strings.ToLower(trim(label))
	if l == "" {
		return WorkTypeOther
	}
	if containsAny(l, k.Investment) {
		return WorkTypeInvestment
	}
	if containsAny(l, k.Expense) {
		return WorkTypeExpense
	}
	if containsAny(l, k.Absence) {
		return WorkTypeAbsence
	}
	return WorkTypeOther
}

func containsAny(label string, keywords []string) bool {
	for _, kw := range keywords {
		kw = strings.ToLower(trim(kw))
		if kw != "" && strings.Contains(label, kw) {
			return true
		}
	}
	return false
}

// TypeSynonyms configures employee-type normalization: qualifier words
// stripped off the front of the raw text (e.g. "עובד") and the synonym
// lists recognized for the two funding models.
type TypeSynonyms struct {
	Qualifiers []string `yaml:"qualifiers"`
	Mataf      []string `yaml:"mataf"`
	Project    []string `yaml:"project"`
}

// NormalizeEmployeeType reduces a raw employee-type string to one of the
// recognized types. Unmatched non-empty text passes through cleaned, so
// unknown source categories stay visible instead of vanishing into
// "undefined".
func (s TypeSynonyms) NormalizeEmployeeType(raw string) string {
	cleaned := trim(raw)
	first, rest, _ := strings.Cut(cleaned, " ")
	for _, q := range s.Qualifiers {
		if strings.EqualFold(first, trim(q)) {
			cleaned = trim(rest)
			break
		}
	}
	if cleaned == "" {
		return EmployeeTypeUndefined
	}
	lowered := strings.ToLower(cleaned)
	if containsAny(lowered, s.Mataf) {
		return EmployeeTypeMataf
	}
	if containsAny(lowered, s.Project) {
		return EmployeeTypeProject
	}
	return cleaned
}
