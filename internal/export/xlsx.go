package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/waprofiles/waprofiles/internal/entity"
)

// encodeXLSX builds a single-sheet workbook: union field order as the
// header row, one row per record below it.
func encodeXLSX(records []entity.Record, fields []string) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Profiles"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	_ = f.DeleteSheet("Sheet1")

	for i, h := range fields {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, rec := range records {
		for i, name := range fields {
			var v any = ""
			if val, ok := rec.Get(name); ok {
				v = val
			}
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 22) // number
	_ = f.SetColWidth(sheet, "C", "C", 60) // profile picture URL
	_ = f.SetColWidth(sheet, "D", "D", 44) // about
	_ = f.SetColWidth(sheet, "E", "E", 24) // timestamp

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}
	return buf.Bytes(), nil
}
