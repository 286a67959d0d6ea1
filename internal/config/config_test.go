package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nownext/nownext/internal/page"
)

func TestInitAndLoad(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "notebook")

	cfg, err := Init(dir, "demo")
	require.NoError(t, err)
	require.DirExists(t, cfg.PagesPath())
	require.DirExists(t, cfg.ArchivePath())
	require.FileExists(t, cfg.ConfigPath())

	loaded, err := Load(dir)
	require.NoError(t, err)
	require.Equal(t, "demo", loaded.Notebook.Name)
	require.Equal(t, CurrentVersion, loaded.Version)
	require.Equal(t, cfg.PagesPath(), loaded.PagesPath())
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope"))
	require.ErrorIs(t, err, ErrNotFound)
}

func TestValidate(t *testing.T) {
	valid := func() *Config { return NewDefault("demo") }

	t.Run("default config is valid", func(t *testing.T) {
		require.NoError(t, valid().Validate())
	})

	t.Run("rejects unsupported version", func(t *testing.T) {
		cfg := valid()
		cfg.Version = 99
		require.ErrorIs(t, cfg.Validate(), ErrInvalid)
	})

	t.Run("rejects missing name", func(t *testing.T) {
		cfg := valid()
		cfg.Notebook.Name = ""
		require.ErrorIs(t, cfg.Validate(), ErrInvalid)
	})

	t.Run("rejects shared pages and archive dir", func(t *testing.T) {
		cfg := valid()
		cfg.ArchiveDir = cfg.PagesDir
		require.ErrorIs(t, cfg.Validate(), ErrInvalid)
	})

	t.Run("rejects unknown page override", func(t *testing.T) {
		cfg := valid()
		cfg.Pages = []PageConfig{{Kind: "later"}}
		require.ErrorIs(t, cfg.Validate(), ErrInvalid)
	})

	t.Run("rejects duplicate page override", func(t *testing.T) {
		cfg := valid()
		cfg.Pages = []PageConfig{{Kind: "now"}, {Kind: "now"}}
		require.ErrorIs(t, cfg.Validate(), ErrInvalid)
	})

	t.Run("rejects pages sharing a file", func(t *testing.T) {
		cfg := valid()
		cfg.Pages = []PageConfig{{Kind: "next", File: "Now.md"}}
		require.ErrorIs(t, cfg.Validate(), ErrInvalid)
	})

	t.Run("rejects excessive preview lines", func(t *testing.T) {
		cfg := valid()
		cfg.TUI.PreviewLines = MaxPreviewLines + 1
		require.ErrorIs(t, cfg.Validate(), ErrInvalid)
	})
}

func TestPageSpecOverride(t *testing.T) {
	cfg := NewDefault("demo")
	cfg.Pages = []PageConfig{{Kind: "now", File: "Current.md", DisplayName: "Current"}}

	spec, ok := cfg.PageSpec(page.KindNow)
	require.True(t, ok)
	require.Equal(t, "Current.md", spec.File)
	require.Equal(t, "Current", spec.DisplayName)
	require.False(t, spec.Flatten)

	// Other kinds keep their registry defaults.
	next, ok := cfg.PageSpec(page.KindNext)
	require.True(t, ok)
	require.Equal(t, "Next.md", next.File)
}

func TestFindDir(t *testing.T) {
	root := t.TempDir()
	_, err := Init(filepath.Join(root, DefaultDir), "demo")
	require.NoError(t, err)

	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	found, err := FindDir(nested)
	require.NoError(t, err)
	require.Equal(t, filepath.Join(root, DefaultDir), found)

	t.Run("from inside the notebook directory", func(t *testing.T) {
		found, err := FindDir(filepath.Join(root, DefaultDir))
		require.NoError(t, err)
		require.Equal(t, filepath.Join(root, DefaultDir), found)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := FindDir(t.TempDir())
		require.Error(t, err)
	})
}
