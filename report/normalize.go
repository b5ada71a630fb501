package report

import (
	"fmt"
	"regexp"
)

// Config is the externally-owned configuration surface of the engine.
// It is treated as constants for the lifetime of a session.
type Config struct {
	Fields           FieldTable
	Keywords         Keywords
	Types            TypeSynonyms
	ExcludedIDs      []string
	MonthlyRate      float64
	WorkingDays      float64
	DailyHours       float64
	WarningThreshold float64
	OverrunThreshold float64
	MatrixCap        int
}

// DefaultMatrixCap bounds the task matrix when no cap is configured.
const DefaultMatrixCap = 20

// Validate checks the parts of the configuration the engine depends on.
func (c Config) Validate() error {
	if err := c.Fields.Validate(); err != nil {
		return err
	}
	if err := c.Keywords.Validate(); err != nil {
		return err
	}
	if c.MonthlyRate <= 0 || c.WorkingDays <= 0 || c.DailyHours <= 0 {
		return fmt.Errorf("rate constants must be positive (monthlyRate=%v workingDays=%v dailyHours=%v)",
			c.MonthlyRate, c.WorkingDays, c.DailyHours)
	}
	if c.OverrunThreshold < c.WarningThreshold {
		return fmt.Errorf("overrun threshold %v below warning threshold %v", c.OverrunThreshold, c.WarningThreshold)
	}
	return nil
}

// HourlyRate converts the monthly rate constants to a cost per hour.
func (c Config) HourlyRate() float64 {
	return c.MonthlyRate / (c.WorkingDays * c.DailyHours)
}

func (c Config) matrixCap() int {
	if c.MatrixCap > 0 {
		return c.MatrixCap
	}
	return DefaultMatrixCap
}

func (c Config) excluded() map[string]struct{} {
	set := make(map[string]struct{}, len(c.ExcludedIDs))
	for _, id := range c.ExcludedIDs {
		if id = trim(id); id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}

// HoursInput is the tagged result of loading a time-report sheet. Some
// source revisions append an exceptions block after the main rows; the
// tag makes that explicit instead of probing row shapes.
type HoursInput struct {
	hasExceptions bool
	rows          []Row
	exceptions    []Row
}

// RowsInput wraps a plain hours sheet.
func RowsInput(rows []Row) HoursInput {
	return HoursInput{rows: rows}
}

// RowsWithExceptions wraps an hours sheet that carries a trailing
// exceptions block; exception rows are normalized after the main rows.
func RowsWithExceptions(rows, exceptions []Row) HoursInput {
	return HoursInput{hasExceptions: true, rows: rows, exceptions: exceptions}
}

func (in HoursInput) all() []Row {
	if !in.hasExceptions {
		return in.rows
	}
	combined := make([]Row, 0, len(in.rows)+len(in.exceptions))
	combined = append(combined, in.rows...)
	combined = append(combined, in.exceptions...)
	return combined
}

// A requirement id is 4-6 digits at the front of the task text,
// followed by a hyphen, e.g. "123456 - Build ingestion".
var requirementIDPattern = regexp.MustCompile(`^\s*(\d{4,6})\s*-`)

// ExtractRequirementID pulls the embedded requirement id out of a task
// string; empty when the task carries none.
func ExtractRequirementID(task string) string {
	m := requirementIDPattern.FindStringSubmatch(task)
	if m == nil {
		return ""
	}
	return m[1]
}

// HoursStats counts what happened to the raw rows during normalization.
type HoursStats struct {
	RowsIn          int `json:"rowsIn"`
	Kept            int `json:"kept"`
	DroppedNoName   int `json:"droppedNoName"`
	DroppedNoHours  int `json:"droppedNoHours"`
	DroppedExcluded int `json:"droppedExcluded"`
}

// NormalizeHours turns raw time-report rows into HoursRecords. Rows with
// an empty employee name or non-positive hours are dropped, as are rows
// whose employee id is in the configured exclusion set. Bad rows never
// abort the batch.
func NormalizeHours(input HoursInput, cfg Config) ([]HoursRecord, HoursStats) {
	rows := input.all()
	excluded := cfg.excluded()
	records := make([]HoursRecord, 0, len(rows))
	stats := HoursStats{RowsIn: len(rows)}

	for _, row := range rows {
		name := ResolveString(row, cfg.Fields.EmployeeName)
		if name == "" {
			stats.DroppedNoName++
			continue
		}
		hoursValue, _ := ResolveColumn(row, cfg.Fields.Hours)
		hours, ok := CoerceNumber(hoursValue)
		if !ok || hours <= 0 {
			stats.DroppedNoHours++
			continue
		}
		id := ResolveString(row, cfg.Fields.EmployeeID)
		if _, drop := excluded[id]; drop {
			stats.DroppedExcluded++
			continue
		}

		dateValue, _ := ResolveColumn(row, cfg.Fields.Date)
		task := ResolveString(row, cfg.Fields.Task)
		classification := ResolveString(row, cfg.Fields.Classification)

		records = append(records, HoursRecord{
			EmployeeName:   name,
			EmployeeID:     id,
			EmployeeType:   ResolveString(row, cfg.Fields.EmployeeType),
			Date:           CoerceDate(dateValue),
			Hours:          hours,
			Task:           task,
			Subtask:        ResolveString(row, cfg.Fields.Subtask),
			Classification: classification,
			WorkType:       cfg.Keywords.Classify(classification),
			RequirementID:  ExtractRequirementID(task),
			Raw:            row,
		})
	}
	stats.Kept = len(records)
	return records, stats
}

// RequirementStats counts requirement-row normalization outcomes.
type RequirementStats struct {
	RowsIn            int `json:"rowsIn"`
	Kept              int `json:"kept"`
	DroppedNoIdentity int `json:"droppedNoIdentity"`
}

// NormalizeRequirements turns raw budget rows into RequirementRecords.
// Rows lacking both an id and a name are dropped. Unparseable budget or
// actual values count as zero. Status comes from the source sheet when
// present, else is derived from the utilization thresholds.
func NormalizeRequirements(rows []Row, cfg Config) ([]RequirementRecord, RequirementStats) {
	records := make([]RequirementRecord, 0, len(rows))
	stats := RequirementStats{RowsIn: len(rows)}

	for _, row := range rows {
		id := ResolveString(row, cfg.Fields.ReqID)
		name := ResolveString(row, cfg.Fields.ReqName)
		if id == "" && name == "" {
			stats.DroppedNoIdentity++
			continue
		}
		budgetValue, _ := ResolveColumn(row, cfg.Fields.ReqBudget)
		budget, _ := CoerceNumber(budgetValue)
		actualValue, _ := ResolveColumn(row, cfg.Fields.ReqActual)
		actual, _ := CoerceNumber(actualValue)

		utilization := 0.0
		if budget != 0 {
			utilization = actual / budget * 100
		}
		status := ResolveString(row, cfg.Fields.ReqStatus)
		if status == "" {
			status = DeriveStatus(utilization, cfg.WarningThreshold, cfg.OverrunThreshold)
		}

		records = append(records, RequirementRecord{
			ID:                 id,
			Name:               name,
			Budget:             budget,
			Actual:             actual,
			UtilizationPercent: utilization,
			Status:             status,
			Requester:          ResolveString(row, cfg.Fields.ReqRequester),
			Raw:                row,
		})
	}
	stats.Kept = len(records)
	return records, stats
}

// DeriveStatus buckets a utilization percentage against the configured
// thresholds.
func DeriveStatus(utilization, warning, overrun float64) string {
	switch {
	case utilization > overrun:
		return StatusOverrun
	case utilization > warning:
		return StatusWarning
	default:
		return StatusNormal
	}
}
