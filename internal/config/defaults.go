package config

import (
	"os"
)

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: "1",
		Data: DataConfig{
			Dir: "data",
		},
		Digest: DigestConfig{
			PlaceholderBullets: 2,
		},
		Guide: GuideConfig{
			MaxParts: 2,
		},
		Holiday: HolidayConfig{
			TitleSentinels: []string{"holiday"},
			NotePhrases:    []string{"no livelab"},
		},
	}
}

// WriteDefault writes the default configuration to a file
func WriteDefault(path string) error {
	content := `# Weekly Messaging Configuration
version: "1"

# Term labeling and date parsing
term:
  label: ""          # Overrides the computed "Week of ..." digest label
  fallback_year: 0   # Year assumed for dates like "Mon, 9/1" (0 = current year)

# Schedule sources
data:
  dir: data          # One CSV roster per section
  # workbook: schedules.xlsx  # Optional xlsx, one sheet per section

# Monday digest
digest:
  header_template: ""      # "{label}" is substituted; empty uses the built-in
  placeholder_bullets: 2
  # title_aliases:
  #   "Intro to SQL (part 2)": "Intro to SQL"

# Watch-by guide
guide:
  max_parts: 2

# Section to instructor handle
# instructors:
#   "DA Section 1A.csv": "@Katie"

# Allowed milestone due weekdays per section
# due_days:
#   "1A": [Friday]

# Explicit due-date exceptions (always win over computed dates)
# overrides:
#   - section: DA Section 1A
#     milestone: Capstone
#     due: 2025-09-30

# Holiday row detection
holiday:
  title_sentinels: [holiday]
  note_phrases: [no livelab]
`
	return os.WriteFile(path, []byte(content), 0644)
}
