package store

import (
	"strings"

	"github.com/nownext/nownext/internal/checklist"
	"github.com/nownext/nownext/internal/page"
)

// PageTask is a task annotated with the page it came from.
type PageTask struct {
	Page    page.Kind       `json:"page"`
	Line    int             `json:"line"`
	State   checklist.State `json:"state"`
	Text    string          `json:"text"`
	Section []string        `json:"section,omitempty"`
}

// FilterOptions defines which tasks to include.
type FilterOptions struct {
	Pages      []page.Kind       // restrict to these pages; empty means all
	States     []checklist.State // restrict to these states; empty means all
	Incomplete bool              // drop done tasks
	Search     string            // case-insensitive substring match on task text
}

// ReadWarning describes a page that could not be read during lenient listing.
type ReadWarning struct {
	Page page.Kind
	Err  error
}

// ListTasks gathers tasks across pages, applying filters. Pages that are
// missing or malformed are skipped and reported as warnings instead of
// aborting the listing.
func (s *Store) ListTasks(opts FilterOptions) ([]PageTask, []ReadWarning, error) {
	kinds := opts.Pages
	if len(kinds) == 0 {
		kinds = page.Kinds()
	}

	var tasks []PageTask
	var warnings []ReadWarning
	for _, kind := range kinds {
		p, err := s.ReadPage(kind)
		if err != nil {
			warnings = append(warnings, ReadWarning{Page: kind, Err: err})
			continue
		}
		for _, section := range p.Sections() {
			for _, t := range section.Tasks {
				pt := PageTask{
					Page:    kind,
					Line:    t.Line,
					State:   t.State,
					Text:    t.Text,
					Section: section.Headers,
				}
				if matchesFilter(pt, opts) {
					tasks = append(tasks, pt)
				}
			}
		}
	}

	return tasks, warnings, nil
}

func matchesFilter(t PageTask, opts FilterOptions) bool {
	if opts.Incomplete && t.State == checklist.StateDone {
		return false
	}
	if len(opts.States) > 0 && !containsState(opts.States, t.State) {
		return false
	}
	if opts.Search != "" && !strings.Contains(strings.ToLower(t.Text), strings.ToLower(opts.Search)) {
		return false
	}
	return true
}

func containsState(states []checklist.State, s checklist.State) bool {
	for _, candidate := range states {
		if candidate == s {
			return true
		}
	}
	return false
}
