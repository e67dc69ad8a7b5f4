package cli

import (
	"testing"
	"time"
)

func TestStartOfWeek(t *testing.T) {
	tests := []struct {
		day  time.Time
		want time.Time
	}{
		{time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(2025, time.September, 3, 0, 0, 0, 0, time.UTC), time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)},
		{time.Date(2025, time.September, 7, 0, 0, 0, 0, time.UTC), time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		if got := startOfWeek(tt.day); !got.Equal(tt.want) {
			t.Errorf("startOfWeek(%v) = %v, want %v", tt.day, got, tt.want)
		}
	}
}

func TestParseDateFlag(t *testing.T) {
	if err := weeklyCmd.Flags().Set("monday", "2025-09-01"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	defer func() { _ = weeklyCmd.Flags().Set("monday", "") }()

	d, err := parseDateFlag(weeklyCmd, "monday")
	if err != nil {
		t.Fatalf("parseDateFlag failed: %v", err)
	}
	if !d.Equal(time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected date %v", d)
	}
}

func TestParseDateFlagRejectsOtherLayouts(t *testing.T) {
	if err := weeklyCmd.Flags().Set("monday", "09-01-2025"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	defer func() { _ = weeklyCmd.Flags().Set("monday", "") }()

	if _, err := parseDateFlag(weeklyCmd, "monday"); err == nil {
		t.Error("expected error for MM-DD-YYYY input")
	}
}
