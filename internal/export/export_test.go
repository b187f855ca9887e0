package export

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jrequejo/horex/internal/model"
)

func sample() []model.OvertimeEntry {
	return []model.OvertimeEntry{
		{
			RegisteredBy: "COORDINADOR TURNO DIA",
			EmployeeID:   "45612378",
			FullName:     `DIAZ SMITH, "JR" MARIO`,
			Code:         "1001",
			Position:     "OPERARIO",
			EntryDate:    "2026-08-30",
			EntryTime:    "18:00",
			ExitDate:     "2026-08-30",
			ExitTime:     "21:30",
			Note:         "",
		},
	}
}

func TestCsvEscape(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"plain", "plain"},
		{"with space", "with space"},
		{"with,comma", `"with,comma"`},
		{`with"quote`, `"with""quote"`},
		{"with\nnewline", "\"with\nnewline\""},
		{"", ""},
	}
	for _, tt := range tests {
		got := csvEscape(tt.input)
		if got != tt.want {
			t.Errorf("csvEscape(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestCSVOutput(t *testing.T) {
	text, err := CSV(sample(), DefaultColumns, DefaultHeaders)
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}

	lines := strings.SplitN(text, "\n", 2)
	if lines[0] != strings.Join(DefaultHeaders, ",") {
		t.Errorf("header row = %q", lines[0])
	}
	if !strings.Contains(text, `"DIAZ SMITH, ""JR"" MARIO"`) {
		t.Errorf("quoted name not escaped: %q", text)
	}
	// The empty note renders as empty in the pure-text export.
	if !strings.HasSuffix(strings.TrimRight(text, "\n"), ",") {
		t.Errorf("empty note should render as empty field: %q", text)
	}
}

func TestCSVHeaderFallback(t *testing.T) {
	text, err := CSV(sample(), DefaultColumns, []string{"mismatched"})
	if err != nil {
		t.Fatalf("CSV: %v", err)
	}
	if !strings.HasPrefix(text, strings.Join(DefaultColumns, ",")) {
		t.Errorf("expected raw keys as header fallback, got %q", strings.SplitN(text, "\n", 2)[0])
	}
}

func TestEmptyLedgerRejected(t *testing.T) {
	for _, format := range []string{"csv", "xlsx", "pdf"} {
		if _, err := Bytes(nil, format); !errors.Is(err, ErrNoEntries) {
			t.Errorf("Bytes(nil, %q) error = %v, want ErrNoEntries", format, err)
		}
	}
}

func TestUnknownFormat(t *testing.T) {
	if _, err := Bytes(sample(), "docx"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestXLSXRoundTrip(t *testing.T) {
	data, err := XLSX(sample(), DefaultColumns, DefaultHeaders)
	if err != nil {
		t.Fatalf("XLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1 entry", len(rows))
	}
	if rows[0][0] != DefaultHeaders[0] {
		t.Errorf("header cell = %q, want %q", rows[0][0], DefaultHeaders[0])
	}
	if rows[1][1] != "45612378" {
		t.Errorf("identifier cell = %q, want %q", rows[1][1], "45612378")
	}
	// The empty note renders as the placeholder on tabular surfaces.
	if got := rows[1][len(DefaultColumns)-1]; got != Placeholder {
		t.Errorf("note cell = %q, want %q", got, Placeholder)
	}
}

func TestPDFBytes(t *testing.T) {
	data, err := PDF(sample(), DefaultColumns, DefaultHeaders)
	if err != nil {
		t.Fatalf("PDF: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Errorf("output does not look like a PDF (starts %q)", data[:4])
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	if got := Filename("csv", now); got != "informe_horas_extras_2026-08-30.csv" {
		t.Errorf("Filename = %q", got)
	}
	if got := Filename("xlsx", now); got != "informe_horas_extras_2026-08-30.xlsx" {
		t.Errorf("Filename = %q", got)
	}
}
