package export

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"

	"github.com/jrequejo/horex/internal/model"
)

// PDF renders the ledger as a landscape report table. Empty values
// render as the placeholder.
func PDF(entries []model.OvertimeEntry, columns, headers []string) ([]byte, error) {
	if len(entries) == 0 {
		return nil, ErrNoEntries
	}

	m := pdf.NewMaroto(consts.Landscape, consts.A4)
	m.SetPageMargins(10, 10, 10)

	m.RegisterHeader(func() {
		m.Row(10, func() {
			m.Col(12, func() {
				m.Text("Informe de Horas Extras", props.Text{
					Top:   3,
					Style: consts.Bold,
					Align: consts.Center,
					Size:  14,
				})
			})
		})
		m.Row(8, func() {
			m.Col(12, func() {
				m.Text(time.Now().Format("2006-01-02"), props.Text{
					Top:   2,
					Align: consts.Center,
					Size:  10,
				})
			})
		})
	})

	contents := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := make([]string, len(columns))
		for i, key := range columns {
			row[i] = cellValue(e, key)
		}
		contents = append(contents, row)
	}

	m.TableList(headerRow(columns, headers), contents, props.TableList{
		HeaderProp: props.TableListContent{
			Size:      8,
			GridSizes: tableGridSizes(len(columns)),
		},
		ContentProp: props.TableListContent{
			Size:      8,
			GridSizes: tableGridSizes(len(columns)),
		},
		Align:                consts.Left,
		AlternatedBackground: nil,
		HeaderContentSpace:   1,
		Line:                 false,
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("encoding pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// tableGridSizes spreads n columns over maroto's 12-unit grid.
func tableGridSizes(n int) []uint {
	if n == 0 {
		return nil
	}
	sizes := make([]uint, n)
	base := uint(12 / n)
	if base == 0 {
		base = 1
	}
	for i := range sizes {
		sizes[i] = base
	}
	// Hand the leftover units to the widest text column, the full name.
	if rem := 12 - int(base)*n; rem > 0 {
		if n > 2 {
			sizes[2] += uint(rem)
		} else {
			sizes[0] += uint(rem)
		}
	}
	return sizes
}
