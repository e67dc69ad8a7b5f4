package roster

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, path string) {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheets := map[string][][]interface{}{
		"DA Section 1A": {
			{"date", "LL_num", "livelab_title", "videos_watch_by"},
			{"Monday, 09/01", "1", "Intro", "Video A"},
			{"Wednesday, 09/03", "2", "Deep Dive", ""},
		},
		"RT Section 2B": {
			{"date", "LL_num", "livelab_title", "videos_watch_by"},
			{"Friday, 09/05", "1", "Kickoff", ""},
		},
	}

	first := true
	for name, rows := range sheets {
		if first {
			f.SetSheetName(f.GetSheetName(0), name)
			first = false
		} else {
			if _, err := f.NewSheet(name); err != nil {
				t.Fatalf("new sheet: %v", err)
			}
		}
		for i, row := range rows {
			cellRef, err := excelize.CoordinatesToCellName(1, i+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetSheetRow(name, cellRef, &row); err != nil {
				t.Fatalf("set row: %v", err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
}

func TestLoadWorkbook(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedules.xlsx")
	writeWorkbook(t, path)

	rows, err := LoadWorkbook(path, "", 2025)
	if err != nil {
		t.Fatalf("LoadWorkbook failed: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows across sheets, got %d", len(rows))
	}

	bySection := make(map[string]int)
	for _, row := range rows {
		bySection[row.Section]++
	}
	if bySection["1A"] != 2 || bySection["2B"] != 1 {
		t.Errorf("unexpected section spread: %v", bySection)
	}
}

func TestLoadWorkbookTrackFilter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedules.xlsx")
	writeWorkbook(t, path)

	rows, err := LoadWorkbook(path, "DA", 2025)
	if err != nil {
		t.Fatalf("LoadWorkbook failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 DA rows, got %d", len(rows))
	}

	first := rows[0]
	if first.Track != "DA" || first.Title != "Intro" {
		t.Errorf("unexpected first row: %+v", first)
	}
	if first.Date == nil || !first.Date.Equal(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date: %v", first.Date)
	}
}

func TestLoadWorkbookMissing(t *testing.T) {
	if _, err := LoadWorkbook(filepath.Join(t.TempDir(), "nope.xlsx"), "", 2025); err == nil {
		t.Error("expected error for missing workbook")
	}
}
