package engine

import (
	"strings"
	"testing"
	"time"

	"github.com/ksylvia16/weekly-messaging/internal/config"
	"github.com/ksylvia16/weekly-messaging/internal/schedule"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func stubEngine(cfg *config.Config, rows []schedule.Row) *Engine {
	e := New(cfg, nil)
	e.loadRows = func(track string) ([]schedule.Row, error) {
		return rows, nil
	}
	return e
}

func TestWeeklyUsesConfiguredInstructors(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Instructors = map[string]string{"DA Section 1A.csv": "@Katie"}

	rows := []schedule.Row{
		{Section: "1A", Track: "DA", SessionLabel: "1", Title: "Intro", Date: datePtr(2025, time.September, 1), InputIndex: 0},
	}

	msg, err := stubEngine(cfg, rows).Weekly("DA", time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Weekly failed: %v", err)
	}
	// The full-name config key resolves for rows carrying the bare code.
	if !strings.Contains(msg, "@Katie") {
		t.Errorf("expected configured instructor in digest:\n%s", msg)
	}
}

func TestWeeklyInstructorCodeCollisionDeterministic(t *testing.T) {
	// Two full-name keys share the section code 1A; the sorted-first key
	// ("DA Section 1A.csv") claims the code, every run.
	cfg := config.DefaultConfig()
	cfg.Instructors = map[string]string{
		"RT Section 1A.csv": "@Tara",
		"DA Section 1A.csv": "@Katie",
	}

	rows := []schedule.Row{
		{Section: "1A", Track: "DA", SessionLabel: "1", Title: "Intro", Date: datePtr(2025, time.September, 1), InputIndex: 0},
	}
	eng := stubEngine(cfg, rows)

	monday := time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC)
	want, err := eng.Weekly("DA", monday)
	if err != nil {
		t.Fatalf("Weekly failed: %v", err)
	}
	if !strings.Contains(want, "@Katie") || strings.Contains(want, "@Tara") {
		t.Fatalf("expected sorted-first key to claim the code:\n%s", want)
	}
	for i := 0; i < 10; i++ {
		got, err := eng.Weekly("DA", monday)
		if err != nil {
			t.Fatalf("Weekly failed: %v", err)
		}
		if got != want {
			t.Fatalf("digest changed between runs:\n%s\nvs\n%s", got, want)
		}
	}
}

func TestWeeklyBareCodeKeyWins(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Instructors = map[string]string{
		"1A":                "@Direct",
		"DA Section 1A.csv": "@Derived",
	}

	rows := []schedule.Row{
		{Section: "1A", Track: "DA", SessionLabel: "1", Title: "Intro", Date: datePtr(2025, time.September, 1), InputIndex: 0},
	}

	msg, err := stubEngine(cfg, rows).Weekly("DA", time.Date(2025, time.September, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("Weekly failed: %v", err)
	}
	if !strings.Contains(msg, "@Direct") {
		t.Errorf("expected bare-code key to win:\n%s", msg)
	}
}

func TestFridayAppliesConfigPolicies(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.DueDays = map[string][]string{"1A": {"Friday"}}
	cfg.Overrides = []config.OverrideConfig{
		{Section: "DA Section 1A", Milestone: "Project 1", Due: "2025-09-19"},
	}

	rows := []schedule.Row{
		{Section: "1A", Track: "DA", SessionLabel: "1", Title: "Intro", Date: datePtr(2025, time.September, 1), InputIndex: 0},
		{Section: "1A", Track: "DA", SessionLabel: "2", Title: "Deep Dive", Date: datePtr(2025, time.September, 10), MilestoneTitle: "Project 1", InputIndex: 1},
	}

	res, err := stubEngine(cfg, rows).Friday("DA", time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC), "")
	if err != nil {
		t.Fatalf("Friday failed: %v", err)
	}
	if len(res.Blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(res.Blocks))
	}
	if !strings.Contains(res.Blocks[0].Text, "Friday, September 19th") {
		t.Errorf("expected override due date in recap:\n%s", res.Blocks[0].Text)
	}
}

func TestFridayBadOverrideDate(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Overrides = []config.OverrideConfig{
		{Section: "DA Section 1A", Milestone: "Project 1", Due: "not-a-date"},
	}

	if _, err := stubEngine(cfg, nil).Friday("DA", time.Now(), ""); err == nil {
		t.Error("expected error for malformed override date")
	}
}

func TestWatchGuidesSectionScope(t *testing.T) {
	cfg := config.DefaultConfig()
	rows := []schedule.Row{
		{Section: "1A", Track: "DA", SessionLabel: "1", Title: "Intro", Date: datePtr(2025, time.September, 1), VideoAssignment: "Video A", InputIndex: 0},
		{Section: "2B", Track: "DA", SessionLabel: "1", Title: "Other", Date: datePtr(2025, time.September, 1), VideoAssignment: "Video Z", InputIndex: 1},
	}

	guides, err := stubEngine(cfg, rows).WatchGuides("DA", "1A")
	if err != nil {
		t.Fatalf("WatchGuides failed: %v", err)
	}
	if len(guides) != 1 {
		t.Fatalf("expected 1 guide, got %d", len(guides))
	}
	if strings.Contains(guides[0], "Video Z") {
		t.Errorf("other section leaked into guide:\n%s", guides[0])
	}
}

func TestCalendarRendersFeed(t *testing.T) {
	cfg := config.DefaultConfig()
	rows := []schedule.Row{
		{Section: "1A", Track: "DA", SessionLabel: "1", Title: "Intro", Date: datePtr(2025, time.September, 1), InputIndex: 0},
	}

	feed, err := stubEngine(cfg, rows).Calendar("DA", time.Now())
	if err != nil {
		t.Fatalf("Calendar failed: %v", err)
	}
	if !strings.Contains(feed, "BEGIN:VCALENDAR") || !strings.Contains(feed, "SUMMARY:LL 1: Intro (DA 1A)") {
		t.Errorf("unexpected feed:\n%s", feed)
	}
}
