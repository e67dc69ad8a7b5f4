// Package history keeps a record of generated announcements so a poster
// can see what already went out and regenerate past messages verbatim.
// Entries are markdown files with YAML frontmatter under
// .weekly-messaging/history.
package history

import (
	"bufio"
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Entry is one generated announcement
type Entry struct {
	ID          string    `yaml:"id"`
	GeneratedAt time.Time `yaml:"generated_at"`
	Kind        string    `yaml:"kind"` // weekly, friday, reminders, watch-guide
	Track       string    `yaml:"track,omitempty"`
	Section     string    `yaml:"section,omitempty"`
	Message     string    `yaml:"-"` // Markdown body
}

// ShortID abbreviates an entry ID for file names and listings. IDs shorter
// than eight characters pass through unchanged.
func ShortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// Save writes the entry under statePath, assigning an ID and timestamp when
// missing, and returns the file path.
func Save(statePath string, entry *Entry) (string, error) {
	historyDir := filepath.Join(statePath, "history")
	if err := os.MkdirAll(historyDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create history directory: %w", err)
	}

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.GeneratedAt.IsZero() {
		entry.GeneratedAt = time.Now()
	}

	// Filename: {date}-{kind}-{id}.md
	filename := fmt.Sprintf("%s-%s-%s.md",
		entry.GeneratedAt.Format("2006-01-02"),
		entry.Kind,
		ShortID(entry.ID))
	path := filepath.Join(historyDir, filename)

	if err := os.WriteFile(path, []byte(formatEntry(entry)), 0644); err != nil {
		return "", fmt.Errorf("failed to write history file: %w", err)
	}
	return path, nil
}

func formatEntry(entry *Entry) string {
	frontmatter := struct {
		ID          string    `yaml:"id"`
		GeneratedAt time.Time `yaml:"generated_at"`
		Kind        string    `yaml:"kind"`
		Track       string    `yaml:"track,omitempty"`
		Section     string    `yaml:"section,omitempty"`
	}{
		ID:          entry.ID,
		GeneratedAt: entry.GeneratedAt,
		Kind:        entry.Kind,
		Track:       entry.Track,
		Section:     entry.Section,
	}

	frontmatterYAML, _ := yaml.Marshal(frontmatter)

	return fmt.Sprintf("---\n%s---\n\n%s", string(frontmatterYAML), entry.Message)
}

// LoadRecent loads the most recent entries, newest first. A missing history
// directory yields no entries, not an error.
func LoadRecent(statePath string, limit int) ([]Entry, error) {
	historyDir := filepath.Join(statePath, "history")

	files, err := os.ReadDir(historyDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entries []Entry
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".md") {
			continue
		}

		e, err := parseEntryFile(filepath.Join(historyDir, f.Name()))
		if err != nil {
			continue
		}
		entries = append(entries, e)
	}

	// Sort by generation time descending
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].GeneratedAt.After(entries[j].GeneratedAt)
	})

	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

func parseEntryFile(path string) (Entry, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return Entry{}, err
	}

	reader := bufio.NewReader(bytes.NewReader(content))

	firstLine, err := reader.ReadString('\n')
	if err != nil {
		return Entry{}, err
	}
	if strings.TrimSpace(firstLine) != "---" {
		return Entry{}, fmt.Errorf("invalid history format: missing frontmatter")
	}

	var frontmatter strings.Builder
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			return Entry{}, fmt.Errorf("unterminated frontmatter: %w", err)
		}
		if strings.TrimSpace(line) == "---" {
			break
		}
		frontmatter.WriteString(line)
	}

	var entry Entry
	if err := yaml.Unmarshal([]byte(frontmatter.String()), &entry); err != nil {
		return Entry{}, fmt.Errorf("invalid frontmatter: %w", err)
	}

	var body strings.Builder
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			body.WriteString(line)
			break
		}
		body.WriteString(line)
	}
	entry.Message = strings.TrimSpace(body.String())

	return entry, nil
}
