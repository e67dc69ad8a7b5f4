package config

// Config represents the full weekly-messaging configuration
type Config struct {
	Version string `yaml:"version" mapstructure:"version"`

	// Term labeling and date handling
	Term TermConfig `yaml:"term" mapstructure:"term"`

	// Schedule data sources
	Data DataConfig `yaml:"data" mapstructure:"data"`

	// Weekly digest rendering
	Digest DigestConfig `yaml:"digest" mapstructure:"digest"`

	// Watch-by guide rendering
	Guide GuideConfig `yaml:"guide" mapstructure:"guide"`

	// Section identifier (or "<section>.csv" file name) to instructor handle
	Instructors map[string]string `yaml:"instructors" mapstructure:"instructors"`

	// Section code to allowed milestone due weekdays
	DueDays map[string][]string `yaml:"due_days" mapstructure:"due_days"`

	// Explicit milestone due-date exceptions
	Overrides []OverrideConfig `yaml:"overrides" mapstructure:"overrides"`

	// Holiday row detection
	Holiday HolidayConfig `yaml:"holiday" mapstructure:"holiday"`
}

// TermConfig configures labeling and date parsing for the running term
type TermConfig struct {
	// Label replaces the computed "Week of ..." digest label when set
	Label string `yaml:"label" mapstructure:"label"`
	// FallbackYear is assumed for schedule dates written without a year;
	// 0 means the current year
	FallbackYear int `yaml:"fallback_year" mapstructure:"fallback_year"`
}

// DataConfig points at the schedule sources on disk
type DataConfig struct {
	// Dir holds one CSV roster per section
	Dir string `yaml:"dir" mapstructure:"dir"`
	// Workbook is an optional xlsx with one sheet per section
	Workbook string `yaml:"workbook" mapstructure:"workbook"`
}

// DigestConfig configures the Monday digest
type DigestConfig struct {
	HeaderTemplate     string            `yaml:"header_template" mapstructure:"header_template"`
	PlaceholderBullets int               `yaml:"placeholder_bullets" mapstructure:"placeholder_bullets"`
	TitleAliases       map[string]string `yaml:"title_aliases" mapstructure:"title_aliases"`
}

// GuideConfig configures the watch-by guide
type GuideConfig struct {
	// MaxParts caps how many numbered phases the schedule is split into
	MaxParts int `yaml:"max_parts" mapstructure:"max_parts"`
}

// OverrideConfig is one due-date exception. Due uses the 2006-01-02 form.
type OverrideConfig struct {
	Section   string `yaml:"section" mapstructure:"section"`
	Milestone string `yaml:"milestone" mapstructure:"milestone"`
	Due       string `yaml:"due" mapstructure:"due"`
}

// HolidayConfig configures how holiday placeholder rows are recognized
type HolidayConfig struct {
	TitleSentinels []string `yaml:"title_sentinels" mapstructure:"title_sentinels"`
	NotePhrases    []string `yaml:"note_phrases" mapstructure:"note_phrases"`
}
