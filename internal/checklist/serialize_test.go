package checklist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSectionLines(t *testing.T) {
	s := Section{
		Headers: []string{"## Plans", "### Today"},
		Tasks: []Task{
			{State: StateTodo, Text: "first"},
			{State: StateDone, Text: "second", Indent: "  "},
		},
	}
	require.Equal(t, []string{
		"## Plans",
		"### Today",
		"- [ ] first",
		"  - [x] second",
	}, SectionLines(s))
}

func TestBody(t *testing.T) {
	t.Run("single blank line between sections", func(t *testing.T) {
		sections := []Section{
			{Headers: []string{"## A"}, Tasks: []Task{{State: StateTodo, Text: "a"}}},
			{Headers: []string{"## B"}, Tasks: []Task{{State: StateTodo, Text: "b"}}},
		}
		body := Body(sections)
		require.Equal(t, "## A\n- [ ] a\n\n## B\n- [ ] b", body)
		require.False(t, strings.HasPrefix(body, "\n"))
		require.False(t, strings.HasSuffix(body, "\n"))
	})

	t.Run("empty input yields empty body", func(t *testing.T) {
		require.Equal(t, "", Body(nil))
	})
}

func TestFlatten(t *testing.T) {
	t.Run("drops headers and indentation", func(t *testing.T) {
		sections := []Section{
			{Headers: []string{"## A"}, Tasks: []Task{{State: StateTodo, Text: "a", Indent: "    "}}},
			{Headers: []string{"## B"}, Tasks: []Task{{State: StateInProgress, Text: "b", Indent: "\t"}}},
		}
		flat := Flatten(sections)
		require.Equal(t, "- [ ] a\n- [/] b", flat)
		require.NotContains(t, flat, "#")
		for _, line := range strings.Split(flat, "\n") {
			require.True(t, strings.HasPrefix(line, "- "))
		}
	})

	t.Run("does not mutate source tasks", func(t *testing.T) {
		sections := []Section{{Tasks: []Task{{State: StateTodo, Text: "a", Indent: "  "}}}}
		Flatten(sections)
		require.Equal(t, "  ", sections[0].Tasks[0].Indent)
	})
}
