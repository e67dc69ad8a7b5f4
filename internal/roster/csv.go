package roster

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ksylvia16/weekly-messaging/internal/schedule"
)

// LoadDir reads every CSV roster in dir whose name matches track (empty
// track loads them all) and returns the combined rows. The file base name
// is the full section name: "DA Section 1A.csv" yields track "DA" and
// section code "1A", unless the file carries its own track or section
// columns. InputIndex runs across the whole combined result so date
// tie-breaks respect load order.
func LoadDir(dir, track string, fallbackYear int) ([]schedule.Row, error) {
	names, err := SectionNames(dir)
	if err != nil {
		return nil, err
	}

	var rows []schedule.Row
	for _, name := range names {
		if !matchesTrack(name, track) {
			continue
		}
		fileRows, err := loadCSV(filepath.Join(dir, name+".csv"), name, fallbackYear, len(rows))
		if err != nil {
			return nil, err
		}
		rows = append(rows, fileRows...)
	}
	return rows, nil
}

func loadCSV(path, sectionName string, fallbackYear, indexOffset int) ([]schedule.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open roster: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read roster %s: %w", filepath.Base(path), err)
	}
	if len(records) < 2 {
		return nil, nil
	}

	cols := mapHeader(records[0])
	section := SectionCode(sectionName)
	track := InferTrack(sectionName)

	rows := make([]schedule.Row, 0, len(records)-1)
	for i, record := range records[1:] {
		rows = append(rows, buildRow(record, cols, section, track, fallbackYear, indexOffset+i))
	}
	return rows, nil
}

// SectionNames lists the section names in dir, one per CSV file, sorted.
func SectionNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list rosters: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), ".csv") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	sort.Strings(names)
	return names, nil
}

// DiscoverTracks lists the distinct track codes across the rosters in dir.
func DiscoverTracks(dir string) ([]string, error) {
	names, err := SectionNames(dir)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var tracks []string
	for _, name := range names {
		t := InferTrack(name)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		tracks = append(tracks, t)
	}
	sort.Strings(tracks)
	return tracks, nil
}
