package checklist

import (
	"errors"
	"strings"
)

// Toggle errors, mapped to structured CLI errors at the command boundary.
var (
	ErrLineOutOfRange = errors.New("line is out of range")
	ErrNotTask        = errors.New("line is not a task")
)

// ToggleLine advances the checkbox state of the task at the given zero-based
// line and returns the edited body plus the task in its new state. Only the
// one line changes; the rest of the body is preserved byte for byte.
func ToggleLine(body string, line int) (string, Task, error) {
	lines := strings.Split(body, "\n")
	if line < 0 || line >= len(lines) {
		return "", Task{}, ErrLineOutOfRange
	}

	t, ok := ParseTaskLine(lines[line])
	if !ok {
		return "", Task{}, ErrNotTask
	}

	t.Line = line
	t.State = t.State.Next()
	lines[line] = t.Render()
	return strings.Join(lines, "\n"), t, nil
}
