package checklist

import "strings"

// SectionLines emits a section as markdown lines: each header verbatim in
// order, then each task in its rendered line form.
func SectionLines(s Section) []string {
	lines := make([]string, 0, len(s.Headers)+len(s.Tasks))
	lines = append(lines, s.Headers...)
	for _, t := range s.Tasks {
		lines = append(lines, t.Render())
	}
	return lines
}

// Body joins sections into a page body with exactly one blank line between
// consecutive sections, none before the first or after the last.
func Body(sections []Section) string {
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, strings.Join(SectionLines(s), "\n"))
	}
	return strings.Join(parts, "\n\n")
}

// Flatten concatenates all tasks from all sections in order, discarding
// headers and resetting every task's indent. Former section boundaries get
// no blank-line separator.
func Flatten(sections []Section) string {
	var lines []string
	for _, s := range sections {
		for _, t := range s.Tasks {
			t.Indent = ""
			lines = append(lines, t.Render())
		}
	}
	return strings.Join(lines, "\n")
}
