package leveldata

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseCSV reads a level grid, one row per line. Cells that are not
// non-negative integers become CodeSkip.
func ParseCSV(r io.Reader) (*Grid, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read level csv: %w", err)
	}

	rows := make([][]int, 0, len(records))
	for _, rec := range records {
		row := make([]int, len(rec))
		for i, field := range rec {
			code, err := strconv.Atoi(strings.TrimSpace(field))
			if err != nil || code < 0 {
				code = CodeSkip
			}
			row[i] = code
		}
		rows = append(rows, row)
	}

	g, err := NewGrid(rows)
	if err != nil {
		return nil, fmt.Errorf("parse level csv: %w", err)
	}
	return g, nil
}
