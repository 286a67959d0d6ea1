// Package config handles notebook configuration.
package config

const (
	// DefaultDir is the default notebook directory name.
	DefaultDir = "notebook"
	// DefaultPagesDir is the default pages subdirectory name.
	DefaultPagesDir = "pages"
	// DefaultArchiveDir is the default archive subdirectory name.
	DefaultArchiveDir = "archive"
	// DefaultPreviewLines is the default number of page preview lines in TUI panes.
	DefaultPreviewLines = 12
	// MaxPreviewLines caps tui.preview_lines.
	MaxPreviewLines = 40

	// ConfigFileName is the name of the config file within the notebook directory.
	ConfigFileName = "config.yml"

	// CurrentVersion is the current config schema version.
	CurrentVersion = 1
)
