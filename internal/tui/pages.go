// Package tui implements a terminal UI for notebook pages.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/nownext/nownext/internal/checklist"
	"github.com/nownext/nownext/internal/journal"
	"github.com/nownext/nownext/internal/page"
	"github.com/nownext/nownext/internal/store"
)

const (
	keyEsc = "esc"

	paneGap     = 2 // columns between the two panes
	paneChrome  = 3 // title + started line + blank line above the task list
	statusLines = 2 // blank line + status bar below the pane area
)

// ReloadMsg asks the model to re-read all pages from disk.
type ReloadMsg struct{}

type errMsg struct{ err error }

// pane holds one page and its tasks in body order.
type pane struct {
	kind      page.Kind
	page      *store.Page
	tasks     []checklist.Task
	scrollOff int // first visible row index
	err       error
}

// Model is the top-level bubbletea model: one pane per page kind.
type Model struct {
	st     *store.Store
	panes  []pane
	active int
	row    int
	width  int
	height int
	err    error
}

// New creates a Model over the given store and loads all pages.
func New(st *store.Store) *Model {
	m := &Model{st: st}
	for _, kind := range page.Kinds() {
		m.panes = append(m.panes, pane{kind: kind})
	}
	m.load()
	return m
}

// WatchPaths returns the directories the TUI wants file events for.
func (m *Model) WatchPaths() []string {
	return []string{m.st.Config().PagesPath()}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case ReloadMsg:
		m.load()
		return m, nil
	case errMsg:
		m.err = msg.err
		return m, nil
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, key.NewBinding(key.WithKeys("ctrl+c"))) {
		return m, tea.Quit
	}

	switch msg.String() {
	case "q", keyEsc:
		return m, tea.Quit
	case "h", "left":
		if m.active > 0 {
			m.active--
			m.clampRow()
		}
	case "l", "right":
		if m.active < len(m.panes)-1 {
			m.active++
			m.clampRow()
		}
	case "j", "down":
		p := m.currentPane()
		if p != nil && m.row < len(p.tasks)-1 {
			m.row++
			m.ensureVisible()
		}
	case "k", "up":
		if m.row > 0 {
			m.row--
			m.ensureVisible()
		}
	case " ", "space":
		m.toggleSelected()
	case "r":
		m.load()
	}
	return m, nil
}

// toggleSelected advances the checkbox state of the selected task and
// rewrites its page.
func (m *Model) toggleSelected() {
	p := m.currentPane()
	if p == nil || p.page == nil || m.row >= len(p.tasks) {
		return
	}

	unlock, err := m.st.Lock()
	if err != nil {
		m.err = err
		return
	}
	defer func() { _ = unlock() }()

	body, task, err := checklist.ToggleLine(p.page.Body, p.tasks[m.row].Line)
	if err != nil {
		m.err = err
		return
	}
	p.page.Body = body
	if err := m.st.WritePage(p.page); err != nil {
		m.err = err
		return
	}

	journal.Record(m.st.Config().Dir(), "toggle", string(p.kind),
		fmt.Sprintf("line %d -> [%s]", task.Line, task.State))
	m.load()
}

// load re-reads every page from disk.
func (m *Model) load() {
	m.err = nil
	for i := range m.panes {
		p := &m.panes[i]
		p.page, p.err = m.st.ReadPage(p.kind)
		p.tasks = nil
		if p.err != nil {
			continue
		}
		for _, section := range p.page.Sections() {
			p.tasks = append(p.tasks, section.Tasks...)
		}
	}
	m.clampRow()
}

func (m *Model) currentPane() *pane {
	if m.active >= 0 && m.active < len(m.panes) {
		return &m.panes[m.active]
	}
	return nil
}

func (m *Model) clampRow() {
	p := m.currentPane()
	if p == nil || len(p.tasks) == 0 {
		m.row = 0
		return
	}
	if m.row >= len(p.tasks) {
		m.row = len(p.tasks) - 1
	}
	m.ensureVisible()
}

// visibleRows returns how many task rows fit in a pane.
func (m *Model) visibleRows() int {
	rows := m.height - paneChrome - statusLines
	if m.err != nil {
		rows--
	}
	if rows < 1 {
		rows = 1
	}
	return rows
}

// ensureVisible adjusts the active pane's scroll offset so the selected row
// is within the visible window.
func (m *Model) ensureVisible() {
	p := m.currentPane()
	if p == nil {
		return
	}
	visible := m.visibleRows()
	if m.row < p.scrollOff {
		p.scrollOff = m.row
	}
	if m.row >= p.scrollOff+visible {
		p.scrollOff = m.row - visible + 1
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	paneWidth := (m.width - paneGap) / len(m.panes)
	rendered := make([]string, 0, len(m.panes))
	for i := range m.panes {
		rendered = append(rendered, m.renderPane(i, paneWidth))
		if i < len(m.panes)-1 {
			rendered = append(rendered, strings.Repeat(" ", paneGap))
		}
	}

	var b strings.Builder
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}
	b.WriteString(statusBarStyle.Render("h/l: page  j/k: task  space: toggle  r: reload  q: quit"))
	return b.String()
}

func (m *Model) renderPane(idx, width int) string {
	p := &m.panes[idx]

	title := string(p.kind)
	if p.page != nil {
		title = p.page.Spec.DisplayName
	}
	titleStyle := paneTitleStyle
	if idx == m.active {
		titleStyle = activePaneTitleStyle
	}

	var b strings.Builder
	b.WriteString(titleStyle.Width(width).Render(title) + "\n")
	if p.err != nil {
		b.WriteString(errorStyle.Render(truncate(p.err.Error(), width)) + "\n")
		return b.String()
	}
	b.WriteString(dimStyle.Render("started "+p.page.Meta.Started) + "\n\n")

	if len(p.tasks) == 0 {
		b.WriteString(dimStyle.Render("no tasks") + "\n")
		return b.String()
	}

	visible := m.visibleRows()
	if p.scrollOff > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("↑ %d more", p.scrollOff)) + "\n")
	}
	end := p.scrollOff + visible
	if end > len(p.tasks) {
		end = len(p.tasks)
	}
	for row := p.scrollOff; row < end; row++ {
		b.WriteString(m.renderTask(idx, row, p.tasks[row], width) + "\n")
	}
	if end < len(p.tasks) {
		b.WriteString(dimStyle.Render(fmt.Sprintf("↓ %d more", len(p.tasks)-end)) + "\n")
	}
	return b.String()
}

func (m *Model) renderTask(paneIdx, row int, t checklist.Task, width int) string {
	cursor := "  "
	if paneIdx == m.active && row == m.row {
		cursor = "> "
	}
	line := cursor + t.Indent + "[" + string(t.State) + "] " + t.Text
	line = truncate(line, width)

	style, ok := taskStyles[t.State]
	if !ok {
		style = taskStyles[checklist.StateTodo]
	}
	if paneIdx == m.active && row == m.row {
		style = style.Bold(true)
	}
	return style.Render(line)
}

func truncate(s string, width int) string {
	if width <= 3 || len(s) <= width {
		return s
	}
	return s[:width-3] + "..."
}

// Styles.
var (
	paneTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("252")).
			Background(lipgloss.Color("236")).
			Padding(0, 1)

	activePaneTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("230")).
				Background(lipgloss.Color("62")).
				Padding(0, 1)

	taskStyles = map[checklist.State]lipgloss.Style{
		checklist.StateTodo:       lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		checklist.StateInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("33")),
		checklist.StateDone:       lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
	}

	statusBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)
