package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// FieldTable declares, per canonical field, the ordered list of header
// names it may appear under in the source sheets. Order encodes priority
// among synonyms. The table is validated once at configuration load, not
// during row processing.
type FieldTable struct {
	EmployeeName   []string `yaml:"employeeName"`
	EmployeeID     []string `yaml:"employeeId"`
	EmployeeType   []string `yaml:"employeeType"`
	Date           []string `yaml:"date"`
	Hours          []string `yaml:"hours"`
	Task           []string `yaml:"task"`
	Subtask        []string `yaml:"subtask"`
	Classification []string `yaml:"classification"`
	ReqID          []string `yaml:"requirementId"`
	ReqName        []string `yaml:"requirementName"`
	ReqBudget      []string `yaml:"requirementBudget"`
	ReqActual      []string `yaml:"requirementActual"`
	ReqRequester   []string `yaml:"requirementRequester"`
	ReqStatus      []string `yaml:"requirementStatus"`
}

// Validate checks that every canonical field has at least one candidate.
func (t FieldTable) Validate() error {
	fields := map[string][]string{
		"employeeName":         t.EmployeeName,
		"employeeId":           t.EmployeeID,
		"employeeType":         t.EmployeeType,
		"date":                 t.Date,
		"hours":                t.Hours,
		"task":                 t.Task,
		"subtask":              t.Subtask,
		"classification":       t.Classification,
		"requirementId":        t.ReqID,
		"requirementName":      t.ReqName,
		"requirementBudget":    t.ReqBudget,
		"requirementActual":    t.ReqActual,
		"requirementRequester": t.ReqRequester,
		"requirementStatus":    t.ReqStatus,
	}
	for name, candidates := range fields {
		if len(candidates) == 0 {
			return fmt.Errorf("column table: field %q has no candidate headers", name)
		}
	}
	return nil
}

func trim(s string) string { return strings.TrimSpace(s) }

// ResolveColumn finds the value for a canonical field in a raw row.
// Pass 1 matches candidates exactly after trimming both sides; pass 2
// matches a row header containing the lower-cased candidate. The first
// matching candidate wins, so candidate order encodes priority.
func ResolveColumn(row Row, candidates []string) (any, bool) {
	// Sorted header order keeps repeated runs byte-identical, including
	// when two raw headers trim to the same string.
	headers := make([]string, 0, len(row))
	for header := range row {
		headers = append(headers, header)
	}
	sort.Strings(headers)

	trimmed := make(map[string]any, len(row))
	for _, header := range headers {
		key := trim(header)
		if _, ok := trimmed[key]; !ok {
			trimmed[key] = row[header]
		}
	}
	for _, cand := range candidates {
		if v, ok := trimmed[trim(cand)]; ok {
			return v, true
		}
	}
	for _, cand := range candidates {
		needle := strings.ToLower(trim(cand))
		if needle == "" {
			continue
		}
		for _, header := range headers {
			if strings.Contains(strings.ToLower(header), needle) {
				return row[header], true
			}
		}
	}
	return nil, false
}

// ResolveString resolves a canonical field and renders it as a trimmed
// string. Absent fields resolve to "".
func ResolveString(row Row, candidates []string) string {
	v, ok := ResolveColumn(row, candidates)
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return trim(s)
	}
	return trim(fmt.Sprintf("%v", v))
}

// CoerceNumber parses numeric cell values that may carry locale noise
// (currency signs, thousands separators). The boolean distinguishes
// "absent/unparseable" from a real zero.
func CoerceNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	var b strings.Builder
	for _, r := range fmt.Sprintf("%v", v) {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	n, err := strconv.ParseFloat(b.String(), 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// DateLayout is the canonical rendering of normalized dates, day first
// to match the source sheets' locale.
const DateLayout = "02/01/2006"

// Spreadsheet serial dates count days from 1900 with an offset of 25569
// days to the Unix epoch.
const (
	serialEpochOffset = 25569
	secondsPerDay     = 86400
)

var dateParseLayouts = []string{
	"2006-01-02",
	"02/01/2006",
	"2/1/2006",
	"01/02/06",
	"2006/01/02",
	"02-01-2006",
	"02.01.2006",
	"02-Jan-2006",
	"2006-01-02T15:04:05Z",
	"2006-01-02 15:04:05",
}

// CoerceDate normalizes a cell value to DateLayout. Numeric values are
// spreadsheet serial dates; strings are parsed against known layouts and
// reformatted. Unparseable values pass through verbatim.
func CoerceDate(v any) string {
	switch d := v.(type) {
	case nil:
		return ""
	case float64:
		return serialToDate(d)
	case float32:
		return serialToDate(float64(d))
	case int:
		return serialToDate(float64(d))
	case int64:
		return serialToDate(float64(d))
	}
	s := trim(fmt.Sprintf("%v", v))
	if s == "" {
		return ""
	}
	for _, layout := range dateParseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(DateLayout)
		}
	}
	return s
}

func serialToDate(serial float64) string {
	sec := int64((serial - serialEpochOffset) * secondsPerDay)
	return time.Unix(sec, 0).UTC().Format(DateLayout)
}
