// Command convert runs the full pipeline once over a pair of exported
// workbooks and writes the derived views as one JSON document, for use
// in scripts and spreadsheet-free reporting.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"

	"utilboard/internal/config"
	"utilboard/internal/logging"
	"utilboard/internal/source"
	"utilboard/report"
)

// readRows loads a workbook from a local path or, for s3://bucket/key
// values, straight from the bucket.
func readRows(ctx context.Context, path string) ([]report.Row, error) {
	rest, ok := strings.CutPrefix(path, "s3://")
	if !ok {
		return source.ReadWorkbookFile(path)
	}
	bucket, key, found := strings.Cut(rest, "/")
	if !found || bucket == "" || key == "" {
		return nil, fmt.Errorf("invalid s3 location %q, want s3://bucket/key", path)
	}
	return source.FetchWorkbook(ctx, bucket, key)
}

type output struct {
	Version      string                     `json:"version"`
	Employees    []report.EmployeeSummary   `json:"employees"`
	Tasks        []report.TaskSummary       `json:"tasks"`
	TaskMatrix   []report.TaskSummary       `json:"taskMatrix"`
	Requirements []report.RequirementRecord `json:"requirements"`
	StatusCounts map[string]int             `json:"statusCounts"`
}

func main() {
	configPath := flag.String("config", "", "path to config.yaml")
	hoursPath := flag.String("hours", "", "path or s3://bucket/key of the time-report workbook (required)")
	requirementsPath := flag.String("requirements", "", "path or s3://bucket/key of the budget workbook")
	outPath := flag.String("out", "", "output file (default stdout)")
	listS3 := flag.Bool("list-s3", false, "list workbook keys in the configured s3 bucket and exit")
	verbose := flag.Bool("verbose", false, "enable debug logging")
	flag.Parse()

	logging.Init(*verbose, "")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if *listS3 {
		if cfg.S3.Bucket == "" {
			log.Fatal().Msg("no s3 bucket configured")
		}
		keys, err := source.ListWorkbooks(context.Background(), cfg.S3.Bucket)
		if err != nil {
			log.Fatal().Err(err).Str("bucket", cfg.S3.Bucket).Msg("failed to list workbooks")
		}
		for _, key := range keys {
			fmt.Println(key)
		}
		return
	}

	if *hoursPath == "" {
		log.Fatal().Msg("-hours is required")
	}

	session, err := report.NewSession(cfg.Engine(), cfg.Teams)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create session")
	}

	rows, err := readRows(context.Background(), *hoursPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *hoursPath).Msg("failed to read hours workbook")
	}
	stats, err := session.LoadHours(report.RowsInput(rows))
	if err != nil && err != report.ErrNoRecords {
		log.Fatal().Err(err).Msg("failed to load hours")
	}
	log.Info().Int("rowsIn", stats.RowsIn).Int("kept", stats.Kept).Msg("hours loaded")

	out := output{Version: session.Version()}
	out.Employees, _ = session.Employees()
	out.Tasks, _ = session.Tasks()
	out.TaskMatrix, _ = session.Matrix()

	if *requirementsPath != "" {
		reqRows, err := readRows(context.Background(), *requirementsPath)
		if err != nil {
			log.Fatal().Err(err).Str("path", *requirementsPath).Msg("failed to read requirements workbook")
		}
		reqStats, err := session.LoadRequirements(reqRows)
		if err != nil && err != report.ErrNoRecords {
			log.Fatal().Err(err).Msg("failed to load requirements")
		}
		log.Info().Int("rowsIn", reqStats.RowsIn).Int("kept", reqStats.Kept).Msg("requirements loaded")

		out.Version = session.Version()
		out.Requirements, _ = session.Requirements()
		out.StatusCounts, _ = session.RequirementStatusCounts()
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to marshal output")
	}
	data = append(data, '\n')

	if *outPath == "" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*outPath, data, 0644); err != nil {
		log.Fatal().Err(err).Str("path", *outPath).Msg("failed to write output")
	}
}
