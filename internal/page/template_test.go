package page

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nownext/nownext/internal/checklist"
)

func TestTemplate(t *testing.T) {
	now, _ := Lookup("now")
	next, _ := Lookup("next")

	t.Run("frontmatter layout", func(t *testing.T) {
		doc := Template(now, "2026-08-29", nil)
		require.True(t, strings.HasPrefix(doc, "---\nstarted: 2026-08-29\n---\n\n"))
		require.True(t, strings.HasSuffix(doc, "\n"))
		require.False(t, strings.HasSuffix(doc, "\n\n"))
	})

	t.Run("empty rollover gets placeholder with all three states", func(t *testing.T) {
		doc := Template(now, "2026-08-29", nil)
		require.Contains(t, doc, "- [ ]")
		require.Contains(t, doc, "- [/]")
		require.Contains(t, doc, "- [x]")
	})

	t.Run("now keeps structure", func(t *testing.T) {
		rolled := checklist.Parse("## Plans\n- [ ] a\n  - [/] b\n\n## More\n- [ ] c")
		doc := Template(now, "2026-08-29", rolled)
		require.Contains(t, doc, "## Plans")
		require.Contains(t, doc, "  - [/] b")
		require.Contains(t, doc, "\n- [ ] c\n")
	})

	t.Run("next flattens", func(t *testing.T) {
		rolled := checklist.Parse("## Plans\n- [ ] a\n  - [/] b")
		doc := Template(next, "2026-08-29", rolled)
		_, body, err := Split(doc)
		require.NoError(t, err)
		require.Equal(t, "- [ ] a\n- [/] b\n", body)
	})

	t.Run("template output reparses to the rolled sections", func(t *testing.T) {
		rolled := checklist.Parse("## Plans\n- [ ] keep")
		doc := Template(now, "2026-08-29", rolled)
		_, body, err := Split(doc)
		require.NoError(t, err)
		require.Equal(t, rolled[0].Headers, checklist.Parse(body)[0].Headers)
	})
}
