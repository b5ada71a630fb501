package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"utilboard/report"
)

// AppConfig is the full service configuration: the engine's constant
// surface (column candidates, keyword lists, rates, thresholds) plus
// service-level settings.
type AppConfig struct {
	Listen  string `yaml:"listen"`
	LogDir  string `yaml:"logDir"`
	Verbose bool   `yaml:"verbose"`

	Columns       report.FieldTable   `yaml:"columns"`
	WorkTypes     report.Keywords     `yaml:"workTypes"`
	EmployeeTypes report.TypeSynonyms `yaml:"employeeTypes"`
	Excluded      []string            `yaml:"excludedEmployees"`
	Rates         Rates               `yaml:"rates"`
	Thresholds    Thresholds          `yaml:"thresholds"`
	MatrixCap     int                 `yaml:"matrixCap"`
	Teams         []report.Team       `yaml:"teams"`

	Slack SlackConfig `yaml:"slack"`
	S3    S3Config    `yaml:"s3"`
}

// Rates are the constants driving the hours-to-cost conversion.
type Rates struct {
	MonthlyRate         float64 `yaml:"monthlyRate"`
	WorkingDaysPerMonth float64 `yaml:"workingDaysPerMonth"`
	DailyHours          float64 `yaml:"dailyHours"`
}

// Thresholds are utilization percentages for the warning and overrun
// status buckets.
type Thresholds struct {
	Warning float64 `yaml:"warning"`
	Overrun float64 `yaml:"overrun"`
}

type SlackConfig struct {
	Token   string `yaml:"token"`
	Channel string `yaml:"channel"`
}

type S3Config struct {
	Bucket string `yaml:"bucket"`
}

// Load reads the YAML configuration, layering a .env file and
// environment variables over it for the service settings. The engine
// tables are validated here, once, so row processing never has to.
func Load(path string) (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on environment variables")
	}

	if path == "" {
		path = os.Getenv("UTILBOARD_CONFIG")
	}
	if path == "" {
		path = "config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg := &AppConfig{
		Listen: ":8080",
		Thresholds: Thresholds{
			Warning: 90,
			Overrun: 100,
		},
		MatrixCap: report.DefaultMatrixCap,
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config %s: %w", path, err)
	}

	if v := os.Getenv("UTILBOARD_LISTEN"); v != "" {
		cfg.Listen = v
	}
	if v := os.Getenv("SLACK_TOKEN"); v != "" {
		cfg.Slack.Token = v
	}
	if v := os.Getenv("SLACK_CHANNEL"); v != "" {
		cfg.Slack.Channel = v
	}
	if v := os.Getenv("UTILBOARD_S3_BUCKET"); v != "" {
		cfg.S3.Bucket = v
	}

	engine := cfg.Engine()
	if err := engine.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if err := validateTeams(cfg.Teams); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Engine projects the app configuration onto the engine's constant
// surface.
func (c *AppConfig) Engine() report.Config {
	return report.Config{
		Fields:           c.Columns,
		Keywords:         c.WorkTypes,
		Types:            c.EmployeeTypes,
		ExcludedIDs:      c.Excluded,
		MonthlyRate:      c.Rates.MonthlyRate,
		WorkingDays:      c.Rates.WorkingDaysPerMonth,
		DailyHours:       c.Rates.DailyHours,
		WarningThreshold: c.Thresholds.Warning,
		OverrunThreshold: c.Thresholds.Overrun,
		MatrixCap:        c.MatrixCap,
	}
}

func validateTeams(teams []report.Team) error {
	seen := make(map[string]struct{}, len(teams))
	for _, t := range teams {
		if t.ID == "" {
			return fmt.Errorf("team %q has no id", t.Name)
		}
		if t.ID == report.TeamAllID {
			return fmt.Errorf("team id %q is reserved", report.TeamAllID)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("duplicate team id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
