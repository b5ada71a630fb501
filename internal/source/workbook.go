package source

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"utilboard/report"
)

// ReadWorkbook parses an xlsx stream into raw rows for the engine. The
// first non-empty row of the first non-empty sheet is the header row;
// every later row becomes a header→cell map. Blank rows are skipped and
// cells beyond the header width are ignored, never aborting the batch.
func ReadWorkbook(r io.Reader) ([]report.Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	for _, sheet := range f.GetSheetList() {
		rows, err := f.GetRows(sheet)
		if err != nil {
			log.Warn().Err(err).Str("sheet", sheet).Msg("failed to read sheet, skipping")
			continue
		}
		parsed := parseRows(rows)
		if parsed != nil {
			return parsed, nil
		}
	}
	return nil, fmt.Errorf("workbook has no data rows")
}

// ReadWorkbookFile parses an xlsx file on disk.
func ReadWorkbookFile(path string) ([]report.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadWorkbook(f)
}

func parseRows(rows [][]string) []report.Row {
	headerIdx := -1
	var headers []string
	for i, row := range rows {
		if !blank(row) {
			headerIdx = i
			headers = row
			break
		}
	}
	if headerIdx < 0 {
		return nil
	}

	out := make([]report.Row, 0, len(rows)-headerIdx-1)
	for _, row := range rows[headerIdx+1:] {
		if blank(row) {
			continue
		}
		record := make(report.Row, len(headers))
		for c, header := range headers {
			if header == "" {
				continue
			}
			if c < len(row) {
				record[header] = row[c]
			} else {
				record[header] = ""
			}
		}
		out = append(out, record)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

func blank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
