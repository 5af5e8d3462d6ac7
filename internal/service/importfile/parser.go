package importfile

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/waspernest/pe-bms-node/internal/domain/attendance"
)

// Parse turns an uploaded file into normalized import rows, dispatching
// on the file extension. Supported: .xlsx/.xls sheets, tab-separated
// .csv/.txt exports, and raw device .dat punch dumps.
func Parse(filename string, data []byte) ([]attendance.ImportRow, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xls":
		return ParseExcel(data)
	case ".csv", ".txt":
		return ParseTabSeparated(data)
	case ".dat":
		return ParseDat(data)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
}

// ParseExcel reads the first sheet. The header row names the columns;
// matching is case-insensitive and tolerates the device export's
// uppercase style (ZK_ID, LOG_DATE, TIME_IN, TIME_OUT).
func ParseExcel(data []byte) ([]attendance.ImportRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to open spreadsheet: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("spreadsheet has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q is empty", sheets[0])
	}

	return rowsFromTable(rows)
}

// ParseTabSeparated reads a tab-separated export with a header row.
func ParseTabSeparated(data []byte) ([]attendance.ImportRow, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	table, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse tab-separated file: %w", err)
	}
	if len(table) == 0 {
		return nil, fmt.Errorf("file is empty")
	}

	return rowsFromTable(table)
}

func rowsFromTable(table [][]string) ([]attendance.ImportRow, error) {
	cols := columnIndex(table[0])
	if cols.id < 0 || cols.date < 0 || cols.timeIn < 0 {
		return nil, fmt.Errorf("missing required columns (need zk_id, log_date, time_in)")
	}

	var rows []attendance.ImportRow
	for _, raw := range table[1:] {
		row := attendance.ImportRow{
			BiometricID: cell(raw, cols.id),
			LogDate:     normalizeDate(cell(raw, cols.date)),
			TimeIn:      cell(raw, cols.timeIn),
		}
		if out := cell(raw, cols.timeOut); out != "" {
			row.TimeOut = &out
		}
		if row.BiometricID == "" && row.TimeIn == "" {
			continue // blank line
		}
		rows = append(rows, row)
	}
	return rows, nil
}

type columns struct {
	id, date, timeIn, timeOut int
}

func columnIndex(header []string) columns {
	cols := columns{id: -1, date: -1, timeIn: -1, timeOut: -1}
	for i, name := range header {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "zk_id", "biometric_id", "user_id":
			cols.id = i
		case "log_date", "date":
			cols.date = i
		case "time_in":
			cols.timeIn = i
		case "time_out":
			cols.timeOut = i
		}
	}
	return cols
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// normalizeDate accepts the date forms spreadsheets emit and returns
// YYYY-MM-DD, passing anything unrecognized through for row-level
// validation to reject.
func normalizeDate(s string) string {
	for _, layout := range []string{"2006-01-02", "01/02/2006", "1/2/2006", "2006/01/02", "01-02-2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// ParseDat reads a raw punch dump: one punch per line, tab-separated
// user id and timestamp. Punches are grouped per user-day, the earliest
// becoming time in and the latest time out.
func ParseDat(data []byte) ([]attendance.ImportRow, error) {
	lines := strings.Split(string(data), "\n")

	type punch struct {
		id   string
		date string
		time string
	}

	var punches []punch
	for _, line := range lines {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "\t")
		if len(parts) < 2 {
			continue
		}
		id := strings.TrimSpace(parts[0])
		ts, err := parseTimestamp(strings.TrimSpace(parts[1]))
		if err != nil {
			continue // device noise, drop the line
		}
		punches = append(punches, punch{
			id:   id,
			date: ts.Format("2006-01-02"),
			time: ts.Format("15:04:05"),
		})
	}

	if len(punches) == 0 {
		return nil, fmt.Errorf("no parseable punches in file")
	}

	sort.Slice(punches, func(i, j int) bool {
		if punches[i].id != punches[j].id {
			return punches[i].id < punches[j].id
		}
		if punches[i].date != punches[j].date {
			return punches[i].date < punches[j].date
		}
		return punches[i].time < punches[j].time
	})

	var rows []attendance.ImportRow
	index := make(map[string]int)
	for _, p := range punches {
		key := p.id + "_" + p.date
		if i, ok := index[key]; ok {
			// Later punch on the same day becomes (or extends) time out.
			t := p.time
			rows[i].TimeOut = &t
			continue
		}
		index[key] = len(rows)
		rows = append(rows, attendance.ImportRow{
			BiometricID: p.id,
			LogDate:     p.date,
			TimeIn:      p.time,
		})
	}

	return rows, nil
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range []string{
		"2006-01-02 15:04:05",
		"2006-01-02T15:04:05",
		"2006/01/02 15:04:05",
		"2006-01-02 15:04",
	} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}
