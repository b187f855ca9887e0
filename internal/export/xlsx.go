package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jrequejo/horex/internal/model"
)

const sheetName = "Horas Extras"

// XLSX renders the ledger as a single-sheet workbook: one header row
// plus one row per entry in insertion order. Empty values render as
// the placeholder.
func XLSX(entries []model.OvertimeEntry, columns, headers []string) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("renaming sheet: %w", err)
	}

	setRow := func(row int, values []string) error {
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := setRow(1, headerRow(columns, headers)); err != nil {
		return nil, fmt.Errorf("writing header row: %w", err)
	}
	for i, e := range entries {
		values := make([]string, len(columns))
		for j, key := range columns {
			values[j] = cellValue(e, key)
		}
		if err := setRow(i+2, values); err != nil {
			return nil, fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("encoding workbook: %w", err)
	}
	return buf.Bytes(), nil
}
