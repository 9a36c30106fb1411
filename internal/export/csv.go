package export

import (
	"bytes"
	"encoding/csv"
	"fmt"

	"github.com/waprofiles/waprofiles/internal/entity"
)

// encodeCSV writes one header row from the union field order and one row
// per record. Fields a record lacks render as empty cells.
func encodeCSV(records []entity.Record, fields []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(fields); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}
	row := make([]string, len(fields))
	for _, rec := range records {
		for i, name := range fields {
			row[i] = ""
			if v, ok := rec.Get(name); ok {
				row[i] = coerceString(v)
			}
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
