// Package csvtext parses comma-separated text with RFC 4180 quoting:
// a quoted field may embed separators and line breaks, and a doubled
// quote inside a quoted field is a literal quote.
//
// Parsing never fails as a whole. Rows whose field count does not match
// the header are skipped with a diagnostic and parsing continues.
package csvtext

import (
	"encoding/csv"
	"errors"
	"io"
	"log"
	"strings"
)

// Parse splits raw text into a trimmed header row and data rows.
// The first row is the header; empty lines are ignored; rows whose
// field count differs from the header's are skipped.
func Parse(text string) (header []string, rows [][]string) {
	r := csv.NewReader(strings.NewReader(text))
	r.FieldsPerRecord = -1

	first := true
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				log.Printf("csvtext: skipping malformed row %d: %v", perr.Line, err)
				continue
			}
			log.Printf("csvtext: read aborted: %v", err)
			break
		}

		trimAll(record)
		if first {
			header = record
			first = false
			continue
		}
		if len(record) != len(header) {
			log.Printf("csvtext: skipping row with %d fields, header has %d", len(record), len(header))
			continue
		}
		rows = append(rows, record)
	}
	return header, rows
}

// ParseRecords returns one header-keyed map per well-formed data row,
// in source order.
func ParseRecords(text string) []map[string]string {
	header, rows := Parse(text)
	records := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		rec := make(map[string]string, len(header))
		for i, key := range header {
			rec[key] = row[i]
		}
		records = append(records, rec)
	}
	return records
}

func trimAll(fields []string) {
	for i, f := range fields {
		fields[i] = strings.TrimSpace(f)
	}
}
