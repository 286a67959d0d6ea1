// Package checklist turns raw markdown page text into a structured model of
// headers and checkbox tasks, and deterministically serializes it back.
package checklist

import (
	"regexp"
	"strings"
)

// headerRe matches an ATX header at column 0: one to six '#' characters,
// whitespace, then content. Indented headers are not headers (unlike tasks,
// which may be indented).
var headerRe = regexp.MustCompile(`^#{1,6}[ \t]+\S`)

// IsHeader reports whether line is a markdown header line.
func IsHeader(line string) bool {
	return headerRe.MatchString(line)
}

// Section is a contiguous run of zero or more header lines followed by the
// tasks associated with them. A Section with no headers holds orphan tasks.
type Section struct {
	Headers []string `json:"headers,omitempty"`
	Tasks   []Task   `json:"tasks"`
}

// Parse converts a page body into its ordered sections. Lines that are
// neither headers, tasks, nor blank are skipped without breaking the section
// grouping. Sections that never receive a task are discarded.
func Parse(text string) []Section {
	var sections []Section
	var cur Section

	flush := func() {
		if len(cur.Tasks) > 0 {
			sections = append(sections, cur)
		}
		cur = Section{}
	}

	for i, line := range strings.Split(text, "\n") {
		switch {
		case IsHeader(line):
			if len(cur.Tasks) > 0 {
				flush()
			}
			cur.Headers = append(cur.Headers, line)
		default:
			t, ok := ParseTaskLine(line)
			if !ok {
				// Blank lines and prose are inert: they neither close the
				// section nor detach its headers.
				continue
			}
			t.Line = i
			cur.Tasks = append(cur.Tasks, t)
		}
	}
	flush()

	return sections
}
