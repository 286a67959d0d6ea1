// Package store gives the rest of the tool its only access to page files:
// reading and writing page documents, seeding fresh pages, and moving
// finished pages into the archive.
package store

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/nownext/nownext/internal/checklist"
	"github.com/nownext/nownext/internal/clierr"
	"github.com/nownext/nownext/internal/config"
	"github.com/nownext/nownext/internal/filelock"
	"github.com/nownext/nownext/internal/page"
)

const (
	pageFileMode = 0o600
	dirMode      = 0o750

	lockFileName = ".lock"
)

// Page is one notebook page loaded from disk: its resolved spec, frontmatter
// metadata, raw body text, and the path it was read from.
type Page struct {
	Spec page.Spec `json:"spec"`
	Meta page.Meta `json:"meta"`
	Body string    `json:"body"`
	Path string    `json:"path"`
}

// Sections parses the page body into its checklist sections.
func (p *Page) Sections() []checklist.Section {
	return checklist.Parse(p.Body)
}

// Store reads and writes the pages of one notebook.
type Store struct {
	cfg *config.Config
}

// New creates a Store over the given notebook config.
func New(cfg *config.Config) *Store {
	return &Store{cfg: cfg}
}

// Config returns the notebook config backing this store.
func (s *Store) Config() *config.Config {
	return s.cfg
}

// PagePath returns the absolute path of the page file for a spec.
func (s *Store) PagePath(spec page.Spec) string {
	return filepath.Join(s.cfg.PagesPath(), spec.File)
}

// ReadPage loads a page by kind, splitting its frontmatter from the body.
func (s *Store) ReadPage(kind page.Kind) (*Page, error) {
	spec, ok := s.cfg.PageSpec(kind)
	if !ok {
		return nil, clierr.Newf(clierr.InvalidPage, "invalid page %q", kind).
			WithDetails(map[string]any{"page": string(kind), "allowed": page.KindNames()})
	}

	path := s.PagePath(spec)
	data, err := os.ReadFile(path) //nolint:gosec // page path from trusted notebook dir
	if err != nil {
		if os.IsNotExist(err) {
			return nil, clierr.Newf(clierr.PageNotFound, "page %q not found (expected %s)", kind, path).
				WithDetails(map[string]any{"page": string(kind), "path": path})
		}
		return nil, fmt.Errorf("reading page file: %w", err)
	}

	meta, body, err := page.Split(string(data))
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	return &Page{Spec: spec, Meta: meta, Body: body, Path: path}, nil
}

// WritePage serializes a page back to its file with YAML frontmatter.
func (s *Store) WritePage(p *Page) error {
	doc := page.Join(p.Meta, p.Body)
	if err := os.WriteFile(p.Path, []byte(doc), pageFileMode); err != nil {
		return fmt.Errorf("writing page file: %w", err)
	}
	return nil
}

// WriteFresh replaces the page file for spec with a complete document.
func (s *Store) WriteFresh(spec page.Spec, doc string) error {
	if err := os.MkdirAll(s.cfg.PagesPath(), dirMode); err != nil {
		return fmt.Errorf("creating pages directory: %w", err)
	}
	if err := os.WriteFile(s.PagePath(spec), []byte(doc), pageFileMode); err != nil {
		return fmt.Errorf("writing page file: %w", err)
	}
	return nil
}

// SeedPage creates the page for spec with its template content if the file
// does not exist yet. Reports whether a file was created.
func (s *Store) SeedPage(spec page.Spec, started string) (bool, error) {
	path := s.PagePath(spec)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	}
	if err := s.WriteFresh(spec, page.Template(spec, started, nil)); err != nil {
		return false, err
	}
	return true, nil
}

// Lock acquires the notebook-wide advisory lock that serializes page
// mutations. The returned function releases it.
func (s *Store) Lock() (func() error, error) {
	return filelock.Lock(filepath.Join(s.cfg.Dir(), lockFileName))
}
