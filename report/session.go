package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"utilboard/utils"
)

var (
	// ErrNotLoaded marks programming misuse: reading derived views
	// before the corresponding dataset was ever loaded.
	ErrNotLoaded = errors.New("report: dataset not loaded")

	// ErrNoRecords reports that no rows survived normalization. The
	// dataset is still considered loaded (as empty); consumers render
	// an empty state.
	ErrNoRecords = errors.New("report: no rows survived normalization")

	// ErrNotFound wraps lookups of unknown keys in the derived views.
	ErrNotFound = errors.New("not found")
)

// Session is the explicit context object holding the current normalized
// record sets and the views derived from them. All processing is
// single-threaded: the enclosing application serializes loads and reads.
// Each load wholly replaces the affected derived structures.
type Session struct {
	cfg   Config
	teams []Team

	version string

	hoursLoaded bool
	hours       []HoursRecord
	employees   []EmployeeSummary
	tasks       []TaskSummary
	matrix      []TaskSummary

	requirementsLoaded bool
	requirements       []RequirementRecord
}

// NewSession validates the configuration and prepares an empty session.
func NewSession(cfg Config, teams []Team) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session config: %w", err)
	}
	return &Session{cfg: cfg, teams: teams}, nil
}

// Version identifies the current dataset generation; it changes on
// every successful load so consumers can invalidate caches.
func (s *Session) Version() string { return s.version }

// Config exposes the constants the session was built with.
func (s *Session) Config() Config { return s.cfg }

// LoadHours normalizes and folds a new time-report dataset, replacing
// any previous one. Returns ErrNoRecords when nothing survived.
func (s *Session) LoadHours(input HoursInput) (HoursStats, error) {
	records, stats := NormalizeHours(input, s.cfg)

	s.hours = records
	s.employees = AggregateEmployees(records, s.cfg.Types)
	s.tasks = AggregateTasks(records)
	s.matrix = TaskMatrix(s.tasks, s.cfg.matrixCap())
	s.hoursLoaded = true
	s.relink()
	s.version = uuid.NewString()

	if len(records) == 0 {
		return stats, ErrNoRecords
	}
	return stats, nil
}

// LoadRequirements normalizes a new budget dataset, replacing any
// previous one. Returns ErrNoRecords when nothing survived.
func (s *Session) LoadRequirements(rows []Row) (RequirementStats, error) {
	records, stats := NormalizeRequirements(rows, s.cfg)

	s.requirements = records
	s.requirementsLoaded = true
	s.relink()
	s.version = uuid.NewString()

	if len(records) == 0 {
		return stats, ErrNoRecords
	}
	return stats, nil
}

// relink recomputes the requirement/hours join. Load order between the
// two datasets must not matter, so it runs after either one changes.
func (s *Session) relink() {
	if !s.requirementsLoaded {
		return
	}
	s.requirements = LinkRequirements(s.requirements, s.hours, s.cfg.HourlyRate())
}

// Hours returns the normalized hours records.
func (s *Session) Hours() ([]HoursRecord, error) {
	if !s.hoursLoaded {
		return nil, ErrNotLoaded
	}
	return s.hours, nil
}

// Employees returns every employee summary.
func (s *Session) Employees() ([]EmployeeSummary, error) {
	if !s.hoursLoaded {
		return nil, ErrNotLoaded
	}
	return s.employees, nil
}

// Employee looks up one summary by its key (id, else name).
func (s *Session) Employee(key string) (EmployeeSummary, error) {
	if !s.hoursLoaded {
		return EmployeeSummary{}, ErrNotLoaded
	}
	for _, e := range s.employees {
		if e.Key == key {
			return e, nil
		}
	}
	return EmployeeSummary{}, fmt.Errorf("employee %q: %w", key, ErrNotFound)
}

// EmployeesByType narrows summaries to one normalized employee type.
func (s *Session) EmployeesByType(employeeType string) ([]EmployeeSummary, error) {
	employees, err := s.Employees()
	if err != nil {
		return nil, err
	}
	return utils.Filter(employees, func(e EmployeeSummary) bool {
		return strings.EqualFold(e.Type, employeeType)
	}), nil
}

// LowInvestment returns employees whose investment share is below the
// given percentage.
func (s *Session) LowInvestment(maxPercent float64) ([]EmployeeSummary, error) {
	employees, err := s.Employees()
	if err != nil {
		return nil, err
	}
	return utils.Filter(employees, func(e EmployeeSummary) bool {
		return e.InvestmentPercent < maxPercent
	}), nil
}

// Requirements returns the linked requirement records.
func (s *Session) Requirements() ([]RequirementRecord, error) {
	if !s.requirementsLoaded {
		return nil, ErrNotLoaded
	}
	return s.requirements, nil
}

// Requirement looks up one record by id.
func (s *Session) Requirement(id string) (RequirementRecord, error) {
	if !s.requirementsLoaded {
		return RequirementRecord{}, ErrNotLoaded
	}
	for _, r := range s.requirements {
		if r.ID == id {
			return r, nil
		}
	}
	return RequirementRecord{}, fmt.Errorf("requirement %q: %w", id, ErrNotFound)
}

// RequirementStatusCounts tallies the current requirements per status.
func (s *Session) RequirementStatusCounts() (map[string]int, error) {
	if !s.requirementsLoaded {
		return nil, ErrNotLoaded
	}
	return StatusCounts(s.requirements), nil
}

// Tasks returns the full grouped task list.
func (s *Session) Tasks() ([]TaskSummary, error) {
	if !s.hoursLoaded {
		return nil, ErrNotLoaded
	}
	return s.tasks, nil
}

// Task looks up one task summary by exact name.
func (s *Session) Task(name string) (TaskSummary, error) {
	if !s.hoursLoaded {
		return TaskSummary{}, ErrNotLoaded
	}
	for _, t := range s.tasks {
		if t.Name == name {
			return t, nil
		}
	}
	return TaskSummary{}, fmt.Errorf("task %q: %w", name, ErrNotFound)
}

// Matrix returns the size-capped task overview.
func (s *Session) Matrix() ([]TaskSummary, error) {
	if !s.hoursLoaded {
		return nil, ErrNotLoaded
	}
	return s.matrix, nil
}

// Teams returns the configured teams with the "all" sentinel first.
func (s *Session) Teams() []Team {
	teams := make([]Team, 0, len(s.teams)+1)
	teams = append(teams, Team{ID: TeamAllID, Name: "All teams"})
	teams = append(teams, s.teams...)
	return teams
}

// Team resolves a team id, falling back to the "all" sentinel for empty
// or unknown ids so an unscoped query passes everything through.
func (s *Session) Team(id string) Team {
	for _, t := range s.teams {
		if t.ID == id {
			return t
		}
	}
	return Team{ID: TeamAllID, Name: "All teams"}
}
