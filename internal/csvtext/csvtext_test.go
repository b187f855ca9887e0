package csvtext_test

import (
	"testing"

	"github.com/jrequejo/horex/internal/csvtext"
)

func TestParseWellFormed(t *testing.T) {
	text := "A, B ,C\n1,2,3\n4,5,6\n"
	header, rows := csvtext.Parse(text)

	want := []string{"A", "B", "C"}
	if len(header) != 3 {
		t.Fatalf("header length = %d, want 3", len(header))
	}
	for i, h := range header {
		if h != want[i] {
			t.Errorf("header[%d] = %q, want %q", i, h, want[i])
		}
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
	if rows[1][2] != "6" {
		t.Errorf("rows[1][2] = %q, want %q", rows[1][2], "6")
	}
}

func TestParseSkipsMalformedRows(t *testing.T) {
	text := "A,B,C\n1,2,3\nonly,two\n7,8,9\n"
	_, rows := csvtext.Parse(text)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2 (malformed row skipped)", len(rows))
	}
	if rows[1][0] != "7" {
		t.Errorf("rows[1][0] = %q, want %q", rows[1][0], "7")
	}
}

func TestParseQuotedFields(t *testing.T) {
	text := "NAME,NOTE\n\"Smith, \"\"Jr\"\"\",plain\n"
	_, rows := csvtext.Parse(text)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if got, want := rows[0][0], `Smith, "Jr"`; got != want {
		t.Errorf("quoted field = %q, want %q", got, want)
	}
}

func TestParseQuotedLineBreak(t *testing.T) {
	text := "A,B\n\"line\nbreak\",x\n"
	_, rows := csvtext.Parse(text)
	if len(rows) != 1 {
		t.Fatalf("rows = %d, want 1", len(rows))
	}
	if got, want := rows[0][0], "line\nbreak"; got != want {
		t.Errorf("field = %q, want %q", got, want)
	}
}

func TestParseIgnoresEmptyLines(t *testing.T) {
	text := "A,B\n\n1,2\n\n\n3,4\n"
	_, rows := csvtext.Parse(text)
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want 2", len(rows))
	}
}

func TestParseRecords(t *testing.T) {
	text := " NAME ,CODE\nJuan Perez, 1001 \n"
	records := csvtext.ParseRecords(text)
	if len(records) != 1 {
		t.Fatalf("records = %d, want 1", len(records))
	}
	if got := records[0]["NAME"]; got != "Juan Perez" {
		t.Errorf("NAME = %q, want %q", got, "Juan Perez")
	}
	if got := records[0]["CODE"]; got != "1001" {
		t.Errorf("CODE = %q, want %q", got, "1001")
	}
}

func TestParseEmptyInput(t *testing.T) {
	header, rows := csvtext.Parse("")
	if header != nil || rows != nil {
		t.Errorf("Parse(\"\") = (%v, %v), want (nil, nil)", header, rows)
	}
}
