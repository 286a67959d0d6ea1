package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/nownext/nownext/internal/checklist"
	"github.com/nownext/nownext/internal/store"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("244"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// State colors: open work bright, in-progress blue, done dimmed.
	stateStyles = map[checklist.State]lipgloss.Style{
		checklist.StateTodo:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		checklist.StateInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		checklist.StateDone:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}

	pageStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	archiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("66"))
)

// DisableColor strips all styling from table output.
func DisableColor() {
	headerStyle = lipgloss.NewStyle()
	dimStyle = lipgloss.NewStyle()
	stateStyles = map[checklist.State]lipgloss.Style{}
	pageStyle = lipgloss.NewStyle()
	archiveStyle = lipgloss.NewStyle()
}

// TaskTable renders a list of page tasks as a formatted table.
func TaskTable(w io.Writer, tasks []store.PageTask) {
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks found.")
		return
	}

	const pad = 2
	pageW, lineW, stateW, textW := 6, 6, 13, 5
	for _, t := range tasks {
		pageW = max(pageW, len(t.Page)+pad)
		lineW = max(lineW, len(strconv.Itoa(t.Line))+pad)
		textW = max(textW, min(len(t.Text)+pad, 60)) //nolint:mnd // max text column width
	}

	header := fmt.Sprintf("%-*s %-*s %-*s %-*s %s",
		pageW, "PAGE", lineW, "LINE", stateW, "STATE", textW, "TEXT", "SECTION")
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(header, " ")))

	for _, t := range tasks {
		text := t.Text
		const maxText = 58
		if len(text) > maxText {
			text = text[:maxText-3] + "..."
		}
		section := strings.Join(t.Section, " ")
		if section == "" {
			section = dimStyle.Render("--")
		}
		row := fmt.Sprintf("%s %-*d %s %s %s",
			padRight(pageStyle.Render(string(t.Page)), pageW),
			lineW, t.Line,
			padRight(styledState(t.State), stateW),
			padRight(text, textW),
			section)
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// ArchiveTable renders the archive listing as a formatted table.
func ArchiveTable(w io.Writer, entries []store.ArchiveEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "No archives found.")
		return
	}

	const pad = 2
	nameW, startW := 6, 12
	for _, e := range entries {
		nameW = max(nameW, len(e.DisplayName)+pad)
	}

	header := fmt.Sprintf("%-*s %-*s %-*s %s", nameW, "PAGE", startW, "STARTED", startW, "ENDED", "FILE")
	fmt.Fprintln(w, headerStyle.Render(strings.TrimRight(header, " ")))

	for _, e := range entries {
		row := fmt.Sprintf("%-*s %-*s %-*s %s",
			nameW, e.DisplayName, startW, e.Started, startW, e.Ended,
			archiveStyle.Render(e.File))
		fmt.Fprintln(w, strings.TrimRight(row, " "))
	}
}

// PageDetail renders a page header and its raw body.
func PageDetail(w io.Writer, p *store.Page) {
	titleLine := fmt.Sprintf("%s (started %s)", p.Spec.DisplayName, p.Meta.Started)
	if p.Meta.Ended != "" {
		titleLine += fmt.Sprintf(" (ended %s)", p.Meta.Ended)
	}
	fmt.Fprintln(w, lipgloss.NewStyle().Bold(true).Render(titleLine))
	fmt.Fprintln(w, strings.Repeat("─", len(titleLine)))
	fmt.Fprintln(w, p.Body)
}

// styledState renders a state as its checkbox marker plus label.
func styledState(s checklist.State) string {
	label := "[" + string(s) + "] " + s.Label()
	if style, ok := stateStyles[s]; ok {
		return style.Render(label)
	}
	return label
}

// padRight pads a possibly-styled string to the given display width.
func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
