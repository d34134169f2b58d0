package trace

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Columns is the CSV header row, one column per EventRecord field in declaration order.
var Columns = []string{"start", "finish", "detected", "detect_time", "delay"}

// FileName derives the trace file name from the three distribution families
// and their mean intervals, e.g. "exponential_10_dirac_2.5_exponential_5.csv".
func FileName(sampleDist string, interval float64, eventDist string, events float64, lengthDist string, length float64) string {
	parts := []string{
		strings.ToLower(sampleDist), formatFloat(interval),
		strings.ToLower(eventDist), formatFloat(events),
		strings.ToLower(lengthDist), formatFloat(length),
	}
	return strings.Join(parts, "_") + ".csv"
}

// ExportCSV writes records to path, overwriting any existing file.
func ExportCSV(path string, records []EventRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating trace file: %w", err)
	}
	if err := WriteCSV(file, records); err != nil {
		_ = file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing trace file: %w", err)
	}
	return nil
}

// WriteCSV writes the header row followed by one row per record, in order.
// Floats use the shortest representation that round-trips exactly.
func WriteCSV(w io.Writer, records []EventRecord) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Columns); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for i, r := range records {
		delay := ""
		if r.Delay != nil {
			delay = formatFloat(*r.Delay)
		}
		row := []string{
			formatFloat(r.Start),
			formatFloat(r.Finish),
			strconv.FormatBool(r.Detected),
			formatFloat(r.DetectTime),
			delay,
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", i, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flushing CSV: %w", err)
	}
	return nil
}

// LoadCSV reads a trace file written by ExportCSV.
func LoadCSV(path string) ([]EventRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening trace file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return ReadCSV(file)
}

// ReadCSV parses a header row matching Columns and the data rows that follow.
func ReadCSV(r io.Reader) ([]EventRecord, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(Columns)

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	for i, col := range Columns {
		if header[i] != col {
			return nil, fmt.Errorf("CSV header column %d is %q, expected %q", i, header[i], col)
		}
	}

	var records []EventRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row: %w", err)
		}
		rec, err := parseRecord(row)
		if err != nil {
			return nil, fmt.Errorf("CSV line %d: %w", line, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func parseRecord(row []string) (EventRecord, error) {
	var rec EventRecord
	var err error
	if rec.Start, err = strconv.ParseFloat(row[0], 64); err != nil {
		return rec, fmt.Errorf("parsing start: %w", err)
	}
	if rec.Finish, err = strconv.ParseFloat(row[1], 64); err != nil {
		return rec, fmt.Errorf("parsing finish: %w", err)
	}
	if rec.Detected, err = strconv.ParseBool(row[2]); err != nil {
		return rec, fmt.Errorf("parsing detected: %w", err)
	}
	if rec.DetectTime, err = strconv.ParseFloat(row[3], 64); err != nil {
		return rec, fmt.Errorf("parsing detect_time: %w", err)
	}
	if row[4] != "" {
		delay, err := strconv.ParseFloat(row[4], 64)
		if err != nil {
			return rec, fmt.Errorf("parsing delay: %w", err)
		}
		rec.Delay = &delay
	}
	return rec, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
