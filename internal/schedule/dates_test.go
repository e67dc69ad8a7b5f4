package schedule

import (
	"fmt"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

func TestParseLooseDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want time.Time
		ok   bool
	}{
		{"weekday prefix", "Monday, 09/01", date(2025, time.September, 1), true},
		{"trailing annotation", "Monday, 09/01 SKIPPED FOR HOLIDAY!", date(2025, time.September, 1), true},
		{"no padding", "Wed, 9/3", date(2025, time.September, 3), true},
		{"no comma", "09/01", time.Time{}, false},
		{"empty", "", time.Time{}, false},
		{"nothing after comma", "Monday, ", time.Time{}, false},
		{"not a date token", "Monday, TBD", time.Time{}, false},
		{"invalid month", "Friday, 13/01", time.Time{}, false},
		{"invalid day", "Friday, 09/31", time.Time{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLooseDate(tt.raw, 2025)
			if ok != tt.ok {
				t.Fatalf("ParseLooseDate(%q) ok = %v, want %v", tt.raw, ok, tt.ok)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("ParseLooseDate(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestFormatOrdinalSuffixes(t *testing.T) {
	// Exhaustive over all days of a 31-day month.
	suffixFor := func(day int) string {
		if day >= 11 && day <= 13 {
			return "th"
		}
		switch day % 10 {
		case 1:
			return "st"
		case 2:
			return "nd"
		case 3:
			return "rd"
		}
		return "th"
	}

	for day := 1; day <= 31; day++ {
		d := date(2025, time.July, day)
		got := FormatOrdinal(&d)
		want := fmt.Sprintf("%s, July %d%s", d.Weekday(), day, suffixFor(day))
		if got != want {
			t.Errorf("day %d: got %q, want %q", day, got, want)
		}
	}
}

func TestFormatOrdinalNil(t *testing.T) {
	if got := FormatOrdinal(nil); got != "Unknown Date" {
		t.Errorf("FormatOrdinal(nil) = %q, want %q", got, "Unknown Date")
	}
}

func TestMostRecentFriday(t *testing.T) {
	friday := date(2025, time.September, 5)

	tests := []struct {
		name string
		in   time.Time
		want time.Time
	}{
		{"already friday", friday, friday},
		{"saturday steps back one", date(2025, time.September, 6), friday},
		{"monday steps back three", date(2025, time.September, 8), friday},
		{"thursday steps back six", date(2025, time.September, 11), friday},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MostRecentFriday(tt.in); !got.Equal(tt.want) {
				t.Errorf("MostRecentFriday(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestFridaysBetween(t *testing.T) {
	start := date(2025, time.September, 1) // Monday
	end := date(2025, time.September, 20)  // Saturday

	fridays := FridaysBetween(start, end)
	want := []time.Time{
		date(2025, time.September, 5),
		date(2025, time.September, 12),
		date(2025, time.September, 19),
	}

	if len(fridays) != len(want) {
		t.Fatalf("expected %d Fridays, got %d", len(want), len(fridays))
	}
	for i := range want {
		if !fridays[i].Equal(want[i]) {
			t.Errorf("friday %d: got %v, want %v", i, fridays[i], want[i])
		}
	}

	// Inclusive bounds: a range that starts and ends on the same Friday.
	single := FridaysBetween(date(2025, time.September, 5), date(2025, time.September, 5))
	if len(single) != 1 {
		t.Errorf("expected 1 Friday for same-day range, got %d", len(single))
	}

	// Empty range: no Friday inside.
	none := FridaysBetween(date(2025, time.September, 6), date(2025, time.September, 11))
	if len(none) != 0 {
		t.Errorf("expected no Fridays, got %d", len(none))
	}
}

func TestSortedByDate(t *testing.T) {
	rows := []Row{
		{Title: "third", Date: datePtr(2025, time.September, 5), InputIndex: 0},
		{Title: "undated", Date: nil, InputIndex: 1},
		{Title: "first", Date: datePtr(2025, time.September, 1), InputIndex: 2},
		{Title: "second a", Date: datePtr(2025, time.September, 3), InputIndex: 3},
		{Title: "second b", Date: datePtr(2025, time.September, 3), InputIndex: 4},
	}

	sorted := SortedByDate(rows)
	wantOrder := []string{"first", "second a", "second b", "third", "undated"}
	for i, title := range wantOrder {
		if sorted[i].Title != title {
			t.Errorf("position %d: got %q, want %q", i, sorted[i].Title, title)
		}
	}

	// Input must not be mutated.
	if rows[0].Title != "third" {
		t.Error("SortedByDate mutated its input")
	}
}
