package rollover

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nownext/nownext/internal/config"
	"github.com/nownext/nownext/internal/page"
	"github.com/nownext/nownext/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	cfg, err := config.Init(filepath.Join(t.TempDir(), "notebook"), "test")
	require.NoError(t, err)
	return store.New(cfg)
}

func writePage(t *testing.T, st *store.Store, kind page.Kind, started, body string) {
	t.Helper()
	spec, ok := st.Config().PageSpec(kind)
	require.True(t, ok)
	require.NoError(t, st.WriteFresh(spec, page.Join(page.Meta{Started: started}, body)))
}

func TestRoll(t *testing.T) {
	t.Run("carries unfinished tasks and archives the rest", func(t *testing.T) {
		st := newTestStore(t)
		writePage(t, st, page.KindNow, "2026-08-01",
			"## Plans\n- [ ] open\n- [x] finished\n- [/] underway")

		result, err := Roll(st, page.KindNow, "2026-08-29")
		require.NoError(t, err)
		require.Equal(t, "now", result.Page)
		require.Equal(t, "2026-08-01", result.Started)
		require.Equal(t, "2026-08-29", result.Ended)
		require.Equal(t, 2, result.Rolled)
		require.Equal(t, 1, result.Dropped)
		require.Equal(t, "Now 2026-08-01~2026-08-29.md", filepath.Base(result.Archive))

		fresh, err := st.ReadPage(page.KindNow)
		require.NoError(t, err)
		require.Equal(t, "2026-08-29", fresh.Meta.Started)
		require.Empty(t, fresh.Meta.Ended)
		require.Equal(t, "## Plans\n- [ ] open\n- [/] underway\n", fresh.Body)

		archived, err := os.ReadFile(result.Archive)
		require.NoError(t, err)
		require.Contains(t, string(archived), "- [x] finished")
		require.Contains(t, string(archived), "ended: 2026-08-29")
	})

	t.Run("next page rollover flattens", func(t *testing.T) {
		st := newTestStore(t)
		writePage(t, st, page.KindNext, "2026-08-01",
			"## Staged\n- [ ] a\n  - [ ] b\n- [x] c")

		result, err := Roll(st, page.KindNext, "2026-08-29")
		require.NoError(t, err)
		require.Equal(t, 2, result.Rolled)

		fresh, err := st.ReadPage(page.KindNext)
		require.NoError(t, err)
		require.Equal(t, "- [ ] a\n- [ ] b\n", fresh.Body)
	})

	t.Run("everything done yields the placeholder body", func(t *testing.T) {
		st := newTestStore(t)
		writePage(t, st, page.KindNow, "2026-08-01", "- [x] all done")

		result, err := Roll(st, page.KindNow, "2026-08-29")
		require.NoError(t, err)
		require.Equal(t, 0, result.Rolled)
		require.Equal(t, 1, result.Dropped)

		fresh, err := st.ReadPage(page.KindNow)
		require.NoError(t, err)
		require.Contains(t, fresh.Body, "- [ ]")
		require.Contains(t, fresh.Body, "- [/]")
		require.Contains(t, fresh.Body, "- [x]")
	})

	t.Run("missing page is an error", func(t *testing.T) {
		st := newTestStore(t)
		_, err := Roll(st, page.KindNow, "2026-08-29")
		require.Error(t, err)
	})

	t.Run("rollover is idempotent on an already-rolled page", func(t *testing.T) {
		st := newTestStore(t)
		writePage(t, st, page.KindNow, "2026-08-01", "## P\n- [ ] open")

		first, err := Roll(st, page.KindNow, "2026-08-29")
		require.NoError(t, err)
		second, err := Roll(st, page.KindNow, "2026-08-29")
		require.NoError(t, err)

		// The second archive covers the fresh page's shorter span, so its
		// name differs and the carried tasks are unchanged.
		require.NotEqual(t, filepath.Base(first.Archive), filepath.Base(second.Archive))
		require.Equal(t, first.Rolled, second.Rolled)

		fresh, err := st.ReadPage(page.KindNow)
		require.NoError(t, err)
		require.Equal(t, "## P\n- [ ] open\n", fresh.Body)
	})

	t.Run("records journal activity", func(t *testing.T) {
		st := newTestStore(t)
		writePage(t, st, page.KindNow, "2026-08-01", "- [ ] a")
		_, err := Roll(st, page.KindNow, "2026-08-29")
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(st.Config().Dir(), "activity.jsonl"))
		require.NoError(t, err)
		require.Contains(t, string(data), `"action":"rollover"`)
	})
}

func TestPlan(t *testing.T) {
	st := newTestStore(t)
	writePage(t, st, page.KindNow, "2026-08-01", "- [ ] keep\n- [x] drop")

	rolled, p, err := Plan(st, page.KindNow)
	require.NoError(t, err)
	require.Equal(t, "2026-08-01", p.Meta.Started)
	require.Len(t, rolled, 1)
	require.Len(t, rolled[0].Tasks, 1)
	require.Equal(t, "keep", rolled[0].Tasks[0].Text)

	// Planning does not touch the page file.
	again, err := st.ReadPage(page.KindNow)
	require.NoError(t, err)
	require.Equal(t, "- [ ] keep\n- [x] drop\n", again.Body)
}
