package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.yaml.in/yaml/v3"

	"github.com/nownext/nownext/internal/clierr"
	"github.com/nownext/nownext/internal/page"
)

const fileMode = 0o600

// Sentinel errors.
var (
	ErrNotFound = errors.New("no notebook found (run 'nownext init' to create one)")
	ErrInvalid  = errors.New("invalid config")
)

// Config represents the notebook configuration.
type Config struct {
	Version    int            `yaml:"version"`
	Notebook   NotebookConfig `yaml:"notebook"`
	PagesDir   string         `yaml:"pages_dir"`
	ArchiveDir string         `yaml:"archive_dir"`
	Pages      []PageConfig   `yaml:"pages,omitempty"`
	TUI        TUIConfig      `yaml:"tui,omitempty"`

	// dir is the absolute path to the notebook directory (not serialized).
	dir string `yaml:"-"`
}

// NotebookConfig holds notebook metadata.
type NotebookConfig struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// PageConfig overrides the built-in registry for one page kind: the file it
// lives in and the display name used for archive entries.
type PageConfig struct {
	Kind        string `yaml:"kind"`
	File        string `yaml:"file,omitempty"`
	DisplayName string `yaml:"display_name,omitempty"`
}

// TUIConfig holds TUI-specific display settings.
type TUIConfig struct {
	PreviewLines int `yaml:"preview_lines,omitempty"`
}

// Dir returns the absolute path to the notebook directory.
func (c *Config) Dir() string {
	return c.dir
}

// PagesPath returns the absolute path to the pages directory.
func (c *Config) PagesPath() string {
	return filepath.Join(c.dir, c.PagesDir)
}

// ArchivePath returns the absolute path to the archive directory.
func (c *Config) ArchivePath() string {
	return filepath.Join(c.dir, c.ArchiveDir)
}

// ConfigPath returns the absolute path to the config file.
func (c *Config) ConfigPath() string {
	return filepath.Join(c.dir, ConfigFileName)
}

// SetDir sets the notebook directory path on the config.
func (c *Config) SetDir(dir string) {
	c.dir = dir
}

// NewDefault creates a Config with default values.
func NewDefault(name string) *Config {
	return &Config{
		Version:    CurrentVersion,
		Notebook:   NotebookConfig{Name: name},
		PagesDir:   DefaultPagesDir,
		ArchiveDir: DefaultArchiveDir,
		TUI:        TUIConfig{PreviewLines: DefaultPreviewLines},
	}
}

// PageSpec resolves the effective Spec for a page kind: the built-in
// registry entry with any per-notebook override applied.
func (c *Config) PageSpec(kind page.Kind) (page.Spec, bool) {
	spec, ok := page.Lookup(string(kind))
	if !ok {
		return page.Spec{}, false
	}
	for _, p := range c.Pages {
		if !matchesKind(p.Kind, kind) {
			continue
		}
		if p.File != "" {
			spec.File = p.File
		}
		if p.DisplayName != "" {
			spec.DisplayName = p.DisplayName
		}
	}
	return spec, true
}

// PageSpecs returns the effective specs for all page kinds in display order.
func (c *Config) PageSpecs() []page.Spec {
	kinds := page.Kinds()
	specs := make([]page.Spec, 0, len(kinds))
	for _, k := range kinds {
		spec, _ := c.PageSpec(k)
		specs = append(specs, spec)
	}
	return specs
}

// PreviewLines returns the configured number of body preview lines for TUI
// panes. Returns DefaultPreviewLines if the value is unset (zero).
func (c *Config) PreviewLines() int {
	if c.TUI.PreviewLines == 0 {
		return DefaultPreviewLines
	}
	return c.TUI.PreviewLines
}

func matchesKind(name string, kind page.Kind) bool {
	spec, ok := page.Lookup(name)
	return ok && spec.Kind == kind
}

// Validate checks the config for errors.
func (c *Config) Validate() error {
	if c.Version != CurrentVersion {
		return fmt.Errorf("%w: unsupported version %d (expected %d)", ErrInvalid, c.Version, CurrentVersion)
	}
	if c.Notebook.Name == "" {
		return fmt.Errorf("%w: notebook.name is required", ErrInvalid)
	}
	if c.PagesDir == "" {
		return fmt.Errorf("%w: pages_dir is required", ErrInvalid)
	}
	if c.ArchiveDir == "" {
		return fmt.Errorf("%w: archive_dir is required", ErrInvalid)
	}
	if c.PagesDir == c.ArchiveDir {
		return fmt.Errorf("%w: pages_dir and archive_dir must differ", ErrInvalid)
	}
	if err := c.validatePages(); err != nil {
		return err
	}
	if c.TUI.PreviewLines < 0 || c.TUI.PreviewLines > MaxPreviewLines {
		return fmt.Errorf("%w: tui.preview_lines must be between 0 and %d", ErrInvalid, MaxPreviewLines)
	}
	return nil
}

func (c *Config) validatePages() error {
	seen := make(map[page.Kind]bool, len(c.Pages))
	for _, p := range c.Pages {
		spec, ok := page.Lookup(p.Kind)
		if !ok {
			return fmt.Errorf("%w: pages references unknown kind %q", ErrInvalid, p.Kind)
		}
		if seen[spec.Kind] {
			return fmt.Errorf("%w: duplicate page override for kind %q", ErrInvalid, p.Kind)
		}
		seen[spec.Kind] = true
	}
	files := make(map[string]page.Kind, len(page.Kinds()))
	for _, spec := range c.PageSpecs() {
		if other, dup := files[spec.File]; dup {
			return fmt.Errorf("%w: pages %q and %q share file %q", ErrInvalid, other, spec.Kind, spec.File)
		}
		files[spec.File] = spec.Kind
	}
	return nil
}

// Init creates a new notebook in the given directory with default settings.
// It creates the notebook directory, pages and archive subdirectories, and
// the config file.
func Init(dir, name string) (*Config, error) {
	const dirMode = 0o750

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg := NewDefault(name)
	cfg.SetDir(absDir)

	if err := os.MkdirAll(cfg.PagesPath(), dirMode); err != nil {
		return nil, fmt.Errorf("creating pages directory: %w", err)
	}
	if err := os.MkdirAll(cfg.ArchivePath(), dirMode); err != nil {
		return nil, fmt.Errorf("creating archive directory: %w", err)
	}

	if err := cfg.Save(); err != nil {
		return nil, fmt.Errorf("writing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to its config file.
func (c *Config) Save() error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(c.ConfigPath(), data, fileMode)
}

// Load reads and validates a config from the given notebook directory.
func Load(dir string) (*Config, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	path := filepath.Join(absDir, ConfigFileName)
	data, err := os.ReadFile(path) //nolint:gosec // config path from trusted source
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	cfg.dir = absDir

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// FindDir walks upward from startDir looking for a notebook directory
// containing config.yml. Returns the absolute path to the notebook directory.
func FindDir(startDir string) (string, error) {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	dir := absStart
	for {
		candidate := filepath.Join(dir, DefaultDir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return filepath.Join(dir, DefaultDir), nil
		}

		// Also check if we're inside the notebook directory itself.
		candidate = filepath.Join(dir, ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", clierr.New(clierr.NotebookNotFound,
				"no notebook found (run 'nownext init' to create one)")
		}
		dir = parent
	}
}
