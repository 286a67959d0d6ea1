package checklist

import "regexp"

// State is the single character between the brackets of a checkbox marker.
// The three recognized values are StateTodo, StateInProgress and StateDone;
// any other character is carried through verbatim so unusual markers
// round-trip losslessly.
type State string

// Recognized checkbox states.
const (
	StateTodo       State = " "
	StateInProgress State = "/"
	StateDone       State = "x"
)

// taskLineRe captures indent, state character, and text of a checklist line.
// The state is any single character except the closing bracket; only the one
// space after "]" is consumed, the rest of the line is kept verbatim.
var taskLineRe = regexp.MustCompile(`^([ \t]*)- \[([^\]])\] ?(.*)$`)

// Task is one checklist item from a page body.
type Task struct {
	// Line is the zero-based source line number at parse time (diagnostic).
	Line int `json:"line"`
	// State is the checkbox state character.
	State State `json:"state"`
	// Text is the content after the checkbox marker, verbatim.
	Text string `json:"text"`
	// Indent is the exact leading whitespace before the list marker.
	Indent string `json:"indent,omitempty"`
}

// ParseTaskLine reports whether line is a checklist line and, if so, returns
// the parsed Task. The caller is responsible for setting Line.
func ParseTaskLine(line string) (Task, bool) {
	m := taskLineRe.FindStringSubmatch(line)
	if m == nil {
		return Task{}, false
	}
	return Task{Indent: m[1], State: State(m[2]), Text: m[3]}, true
}

// Render serializes the task back to its markdown line form.
func (t Task) Render() string {
	return t.Indent + "- [" + string(t.State) + "] " + t.Text
}

// Done reports whether the task state is the completed state.
func (t Task) Done() bool {
	return t.State == StateDone
}

// Next returns the state that follows s in the cycle
// todo → in-progress → done → todo. Unrecognized states reset to todo.
func (s State) Next() State {
	switch s {
	case StateTodo:
		return StateInProgress
	case StateInProgress:
		return StateDone
	case StateDone:
		return StateTodo
	default:
		return StateTodo
	}
}

// Label returns a human-readable name for the state.
func (s State) Label() string {
	switch s {
	case StateTodo:
		return "todo"
	case StateInProgress:
		return "in-progress"
	case StateDone:
		return "done"
	default:
		return string(s)
	}
}
