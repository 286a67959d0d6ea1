// Package journal records notebook activity (rollovers, task toggles) as an
// append-only JSONL file inside the notebook directory.
package journal

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	fileName   = "activity.jsonl"
	fileMode   = 0o600
	maxEntries = 10000 // truncate oldest entries when the journal exceeds this size
)

// Entry represents a single activity journal entry.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Page      string    `json:"page,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// Append appends an entry to the journal file.
// If the journal exceeds maxEntries, the oldest entries are truncated.
func Append(notebookDir string, entry Entry) error {
	path := filepath.Join(notebookDir, fileName)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode) //nolint:gosec // journal path from trusted notebook dir
	if err != nil {
		return fmt.Errorf("opening journal file: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("marshaling journal entry: %w", err)
	}

	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("writing journal entry: %w", err)
	}

	// Truncate if needed (best-effort; errors are non-fatal).
	_ = truncateIfNeeded(path)

	return nil
}

// Record appends an activity entry. Errors are silently discarded because
// journaling should never fail a command.
func Record(notebookDir, action, pageName, detail string) {
	entry := Entry{
		Timestamp: time.Now(),
		Action:    action,
		Page:      pageName,
		Detail:    detail,
	}
	_ = Append(notebookDir, entry)
}

// truncateIfNeeded reads the journal file and, if it exceeds maxEntries,
// rewrites it keeping only the most recent entries.
func truncateIfNeeded(path string) error {
	f, err := os.Open(path) //nolint:gosec // trusted path
	if err != nil {
		return err
	}

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	_ = f.Close()

	if err := scanner.Err(); err != nil {
		return err
	}

	if len(lines) <= maxEntries {
		return nil
	}

	lines = lines[len(lines)-maxEntries:]

	var buf strings.Builder
	for _, line := range lines {
		buf.WriteString(line)
		buf.WriteByte('\n')
	}

	return os.WriteFile(path, []byte(buf.String()), fileMode)
}
