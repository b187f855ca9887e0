// Package export serializes the ledger into downloadable reports.
package export

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jrequejo/horex/internal/model"
)

// ErrNoEntries is returned when an export is requested on an empty
// ledger. An empty ledger never produces a header-only file.
var ErrNoEntries = errors.New("no overtime entries to export")

// filePrefix and the current date name every generated report.
const filePrefix = "informe_horas_extras_"

// DefaultColumns is the report column order.
var DefaultColumns = []string{
	model.ColRegisteredBy,
	model.ColEmployeeID,
	model.ColFullName,
	model.ColCode,
	model.ColPosition,
	model.ColEntryDate,
	model.ColEntryTime,
	model.ColExitDate,
	model.ColExitTime,
	model.ColNote,
}

// DefaultHeaders are the display labels matching DefaultColumns.
var DefaultHeaders = []string{
	"QUIEN REGISTRA LA NOVEDAD",
	"DNI/CE",
	"APELLIDOS Y NOMBRES",
	"CODIGO",
	"PUESTO",
	"FECHA INGRESO",
	"INGRESO",
	"FECHA SALIDA",
	"SALIDA",
	"OBSERVACION DE LA NOVEDAD",
}

// Placeholder stands in for empty values on non-CSV renderings.
const Placeholder = "-"

// Filename returns the report file name for the given format extension,
// e.g. "informe_horas_extras_2026-08-30.csv".
func Filename(ext string, now time.Time) string {
	return filePrefix + now.Format("2006-01-02") + "." + ext
}

// headerRow falls back to the raw column keys when the supplied header
// list does not match the column list length.
func headerRow(columns, headers []string) []string {
	if len(headers) != len(columns) {
		return columns
	}
	return headers
}

// CSV renders one header row plus one row per entry, in insertion
// order. Values containing the separator, a quote or a line break are
// quoted with inner quotes doubled. Empty values render as empty.
func CSV(entries []model.OvertimeEntry, columns, headers []string) (string, error) {
	if len(entries) == 0 {
		return "", ErrNoEntries
	}

	var b strings.Builder
	writeRow := func(fields []string) {
		for i, f := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(csvEscape(f))
		}
		b.WriteByte('\n')
	}

	writeRow(headerRow(columns, headers))
	for _, e := range entries {
		row := make([]string, len(columns))
		for i, key := range columns {
			row[i] = e.Field(key)
		}
		writeRow(row)
	}
	return b.String(), nil
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// display substitutes the placeholder for empty values on tabular
// (non-CSV) renderings.
func display(v string) string {
	if v == "" {
		return Placeholder
	}
	return v
}

func cellValue(e model.OvertimeEntry, key string) string {
	return display(e.Field(key))
}

// Bytes renders entries in the given format: "csv", "xlsx" or "pdf".
func Bytes(entries []model.OvertimeEntry, format string) ([]byte, error) {
	switch format {
	case "csv":
		text, err := CSV(entries, DefaultColumns, DefaultHeaders)
		if err != nil {
			return nil, err
		}
		return []byte(text), nil
	case "xlsx":
		return XLSX(entries, DefaultColumns, DefaultHeaders)
	case "pdf":
		return PDF(entries, DefaultColumns, DefaultHeaders)
	}
	return nil, fmt.Errorf("unknown export format %q", format)
}
