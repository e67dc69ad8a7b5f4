package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()

	if cfg.Version != "1" {
		t.Errorf("Expected version '1', got '%s'", cfg.Version)
	}

	if cfg.Data.Dir != "data" {
		t.Errorf("Expected data dir 'data', got '%s'", cfg.Data.Dir)
	}

	if cfg.Digest.PlaceholderBullets != 2 {
		t.Errorf("Expected 2 placeholder bullets, got %d", cfg.Digest.PlaceholderBullets)
	}

	if cfg.Guide.MaxParts != 2 {
		t.Errorf("Expected 2 guide parts, got %d", cfg.Guide.MaxParts)
	}

	if len(cfg.Holiday.TitleSentinels) == 0 || cfg.Holiday.TitleSentinels[0] != "holiday" {
		t.Errorf("Expected default holiday sentinel, got %v", cfg.Holiday.TitleSentinels)
	}
}

func TestWriteDefault(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "config.yaml")
	if err := WriteDefault(path); err != nil {
		t.Fatalf("WriteDefault failed: %v", err)
	}

	// Verify file was created
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("Config file not created: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read config: %v", err)
	}

	if !strings.Contains(string(content), "max_parts: 2") {
		t.Error("Expected 'max_parts: 2' in default config")
	}
}

func TestLoadFileOverridesDefaults(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "config.yaml")
	content := `version: "1"
term:
  label: Fall 2025
  fallback_year: 2025
digest:
  placeholder_bullets: 3
instructors:
  "DA Section 1A.csv": "@Katie"
due_days:
  "1A": [Friday, Monday]
overrides:
  - section: DA Section 1A
    milestone: Capstone
    due: 2025-09-30
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	cfg := DefaultConfig()
	if err := loadFile(path, cfg); err != nil {
		t.Fatalf("loadFile failed: %v", err)
	}

	if cfg.Term.Label != "Fall 2025" {
		t.Errorf("Expected term label 'Fall 2025', got '%s'", cfg.Term.Label)
	}

	if cfg.Digest.PlaceholderBullets != 3 {
		t.Errorf("Expected 3 placeholder bullets, got %d", cfg.Digest.PlaceholderBullets)
	}

	// Untouched defaults survive the merge
	if cfg.Guide.MaxParts != 2 {
		t.Errorf("Expected default max_parts 2, got %d", cfg.Guide.MaxParts)
	}

	if cfg.Instructors["DA Section 1A.csv"] != "@Katie" {
		t.Errorf("Expected instructor '@Katie', got '%s'", cfg.Instructors["DA Section 1A.csv"])
	}

	if days := cfg.DueDays["1A"]; len(days) != 2 || days[0] != "Friday" {
		t.Errorf("Expected due days [Friday Monday], got %v", days)
	}

	if len(cfg.Overrides) != 1 || cfg.Overrides[0].Milestone != "Capstone" {
		t.Errorf("Expected one Capstone override, got %v", cfg.Overrides)
	}
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	err := loadFile(filepath.Join(t.TempDir(), "nope.yaml"), cfg)
	if !os.IsNotExist(err) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestScheduleOverrides(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Overrides = []OverrideConfig{
		{Section: "DA Section 1A", Milestone: "Capstone", Due: "2025-09-30"},
	}

	overrides, err := cfg.ScheduleOverrides()
	if err != nil {
		t.Fatalf("ScheduleOverrides failed: %v", err)
	}

	if len(overrides) != 1 {
		t.Fatalf("Expected 1 override, got %d", len(overrides))
	}

	want := time.Date(2025, time.September, 30, 0, 0, 0, 0, time.UTC)
	if !overrides[0].Due.Equal(want) {
		t.Errorf("Expected due %v, got %v", want, overrides[0].Due)
	}
}

func TestScheduleOverridesBadDate(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Overrides = []OverrideConfig{
		{Section: "DA Section 1A", Milestone: "Capstone", Due: "9/30/2025"},
	}

	if _, err := cfg.ScheduleOverrides(); err == nil {
		t.Error("Expected error for malformed due date")
	}
}

func TestHolidayMarkersFallback(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Holiday = HolidayConfig{}

	m := cfg.HolidayMarkers()
	if len(m.TitleSentinels) == 0 {
		t.Error("Expected fallback holiday markers when config lists are empty")
	}
}

func TestFallbackYear(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Term.FallbackYear = 2025
	if got := cfg.FallbackYear(); got != 2025 {
		t.Errorf("Expected 2025, got %d", got)
	}

	cfg.Term.FallbackYear = 0
	if got := cfg.FallbackYear(); got != time.Now().Year() {
		t.Errorf("Expected current year, got %d", got)
	}
}
