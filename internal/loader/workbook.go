package loader

import (
	"fmt"
	"strings"

	"github.com/ppiankov/gostcite/internal/model"
	"github.com/xuri/excelize/v2"
)

// loadWorkbook reads one sheet per record kind. Row 1 of each sheet holds
// field names; every following non-blank row is one record.
func (l *Loader) loadWorkbook(path string) ([]model.Record, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	present := make(map[string]bool)
	for _, name := range f.GetSheetList() {
		present[name] = true
	}

	var records []model.Record
	for _, kind := range model.Kinds {
		sheet := l.cfg.SheetFor(kind)
		if !present[sheet] {
			continue
		}

		rows, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
		}

		recs, err := l.decodeRows(kind, rows)
		if err != nil {
			return nil, fmt.Errorf("%s: sheet %q: %w", path, sheet, err)
		}
		records = append(records, recs...)
	}

	return records, nil
}

func (l *Loader) decodeRows(kind model.Kind, rows [][]string) ([]model.Record, error) {
	if len(rows) == 0 {
		return nil, nil
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var records []model.Record
	for i, row := range rows[1:] {
		if blank(row) {
			continue
		}

		fields := make(map[string]any, len(header))
		for col, name := range header {
			if name == "" || col >= len(row) {
				continue
			}
			fields[name] = row[col]
		}

		rec, err := l.decode(kind, fields)
		if err != nil {
			// +2: one for the header, one for 1-based numbering
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
