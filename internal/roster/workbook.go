package roster

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ksylvia16/weekly-messaging/internal/schedule"
)

// LoadWorkbook reads an xlsx workbook holding one sheet per section and
// returns the combined rows for track (empty track loads every sheet).
// Sheet names follow the same "DA Section 1A" convention as CSV file names.
func LoadWorkbook(path, track string, fallbackYear int) ([]schedule.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	var rows []schedule.Row
	for _, sheet := range f.GetSheetList() {
		if !matchesTrack(sheet, track) {
			continue
		}

		records, err := f.GetRows(sheet)
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
		}
		if len(records) < 2 {
			continue
		}

		cols := mapHeader(records[0])
		section := SectionCode(sheet)
		sheetTrack := InferTrack(sheet)
		offset := len(rows)
		for i, record := range records[1:] {
			rows = append(rows, buildRow(record, cols, section, sheetTrack, fallbackYear, offset+i))
		}
	}
	return rows, nil
}
