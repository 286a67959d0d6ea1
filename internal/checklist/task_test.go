package checklist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseTaskLine(t *testing.T) {
	t.Run("basic task", func(t *testing.T) {
		task, ok := ParseTaskLine("- [ ] buy milk")
		require.True(t, ok)
		require.Equal(t, StateTodo, task.State)
		require.Equal(t, "buy milk", task.Text)
		require.Equal(t, "", task.Indent)
	})

	t.Run("indented task keeps exact indent", func(t *testing.T) {
		task, ok := ParseTaskLine("  \t- [/] nested")
		require.True(t, ok)
		require.Equal(t, "  \t", task.Indent)
		require.Equal(t, StateInProgress, task.State)
		require.Equal(t, "nested", task.Text)
	})

	t.Run("unrecognized state passes through", func(t *testing.T) {
		task, ok := ParseTaskLine("- [?] maybe")
		require.True(t, ok)
		require.Equal(t, State("?"), task.State)
		require.Equal(t, "- [?] maybe", task.Render())
	})

	t.Run("only one leading space of text is consumed", func(t *testing.T) {
		task, ok := ParseTaskLine("- [x]  double spaced")
		require.True(t, ok)
		require.Equal(t, " double spaced", task.Text)
	})

	t.Run("non-task lines", func(t *testing.T) {
		for _, line := range []string{
			"",
			"plain prose",
			"- not a checkbox",
			"* [ ] wrong marker",
			"## Header",
			"- [] empty brackets",
		} {
			_, ok := ParseTaskLine(line)
			require.False(t, ok, "line %q should not parse as a task", line)
		}
	})
}

func TestTaskRenderRoundTrip(t *testing.T) {
	lines := []string{
		"- [ ] plain",
		"    - [x] indented done",
		"\t- [/] tab indented",
		"- [-] custom state",
	}
	for _, line := range lines {
		task, ok := ParseTaskLine(line)
		require.True(t, ok)
		require.Equal(t, line, task.Render())
	}
}

func TestStateCycle(t *testing.T) {
	t.Run("advances through the cycle", func(t *testing.T) {
		require.Equal(t, StateInProgress, StateTodo.Next())
		require.Equal(t, StateDone, StateInProgress.Next())
		require.Equal(t, StateTodo, StateDone.Next())
	})

	t.Run("three advances close the cycle", func(t *testing.T) {
		for _, start := range []State{StateTodo, StateInProgress, StateDone} {
			require.Equal(t, start, start.Next().Next().Next())
		}
	})

	t.Run("unknown state resets to todo", func(t *testing.T) {
		require.Equal(t, StateTodo, State("?").Next())
	})
}

func TestStateLabel(t *testing.T) {
	require.Equal(t, "todo", StateTodo.Label())
	require.Equal(t, "in-progress", StateInProgress.Label())
	require.Equal(t, "done", StateDone.Label())
	require.Equal(t, "*", State("*").Label())
}
