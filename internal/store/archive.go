package store

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
)

// ArchiveEntry describes one archived page file.
type ArchiveEntry struct {
	File        string `json:"file"`
	DisplayName string `json:"display_name"`
	Started     string `json:"started"`
	Ended       string `json:"ended"`
	Counter     int    `json:"counter,omitempty"`
}

// archiveNameRe parses "<DisplayName> <started>~<ended>[ (N)].md".
var archiveNameRe = regexp.MustCompile(`^(.+) (\S+)~(\S+?)(?: \((\d+)\))?\.md$`)

// Archive stamps the page with its end date and moves its file into the
// archive directory under a unique "<DisplayName> <started>~<ended>.md"
// name, appending " (N)" when that name is already taken. Returns the
// destination path.
func (s *Store) Archive(p *Page, ended string) (string, error) {
	if err := os.MkdirAll(s.cfg.ArchivePath(), dirMode); err != nil {
		return "", fmt.Errorf("creating archive directory: %w", err)
	}

	// Persist the end date so the archived file carries its full span.
	p.Meta.Ended = ended
	if err := s.WritePage(p); err != nil {
		return "", err
	}

	dest := ""
	for n := 1; ; n++ {
		name := ArchiveName(p.Spec.DisplayName, p.Meta.Started, ended, n)
		candidate := filepath.Join(s.cfg.ArchivePath(), name)
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			dest = candidate
			break
		}
	}

	if err := os.Rename(p.Path, dest); err != nil {
		return "", fmt.Errorf("archiving page: %w", err)
	}
	return dest, nil
}

// ArchiveName builds the archive file name for a page span. A counter n
// greater than one appends a " (N)" disambiguating suffix.
func ArchiveName(displayName, started, ended string, n int) string {
	name := fmt.Sprintf("%s %s~%s", displayName, started, ended)
	if n > 1 {
		name += fmt.Sprintf(" (%d)", n)
	}
	return name + ".md"
}

// ListArchives returns the archive entries sorted by start date, then end
// date (lexicographic: dates are opaque ISO strings), then counter. Files
// that do not match the archive naming scheme are skipped.
func (s *Store) ListArchives() ([]ArchiveEntry, error) {
	entries, err := os.ReadDir(s.cfg.ArchivePath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading archive directory: %w", err)
	}

	var archives []ArchiveEntry
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := archiveNameRe.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		counter := 0
		if m[4] != "" {
			counter, _ = strconv.Atoi(m[4])
		}
		archives = append(archives, ArchiveEntry{
			File:        entry.Name(),
			DisplayName: m[1],
			Started:     m[2],
			Ended:       m[3],
			Counter:     counter,
		})
	}

	sort.Slice(archives, func(i, j int) bool {
		a, b := archives[i], archives[j]
		if a.Started != b.Started {
			return a.Started < b.Started
		}
		if a.Ended != b.Ended {
			return a.Ended < b.Ended
		}
		return a.Counter < b.Counter
	})

	return archives, nil
}
