package page

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	t.Run("started and ended", func(t *testing.T) {
		meta, body, err := Split("---\nstarted: 2026-08-01\nended: 2026-08-29\n---\n\n- [ ] a\n")
		require.NoError(t, err)
		require.Equal(t, "2026-08-01", meta.Started)
		require.Equal(t, "2026-08-29", meta.Ended)
		require.Equal(t, "- [ ] a\n", body)
	})

	t.Run("no frontmatter is an error", func(t *testing.T) {
		_, _, err := Split("- [ ] a\n")
		require.Error(t, err)
	})

	t.Run("unclosed frontmatter is an error", func(t *testing.T) {
		_, _, err := Split("---\nstarted: 2026-08-01\n")
		require.Error(t, err)
	})

	t.Run("closing fence at EOF", func(t *testing.T) {
		meta, body, err := Split("---\nstarted: 2026-08-01\n---")
		require.NoError(t, err)
		require.Equal(t, "2026-08-01", meta.Started)
		require.Empty(t, body)
	})
}

func TestJoinSplitRoundTrip(t *testing.T) {
	meta := Meta{Started: "2026-08-01", Ended: "2026-08-29"}
	doc := Join(meta, "## H\n- [ ] a")

	got, body, err := Split(doc)
	require.NoError(t, err)
	require.Equal(t, meta, got)
	require.Equal(t, "## H\n- [ ] a\n", body)
}
