package page

import (
	"errors"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

// Meta is the per-page metadata carried in YAML frontmatter. Dates are
// opaque ISO strings: the tool compares them lexicographically and never
// interprets them as calendar values.
type Meta struct {
	Started string `yaml:"started" json:"started"`
	Ended   string `yaml:"ended,omitempty" json:"ended,omitempty"`
}

// Split separates a page document into its frontmatter Meta and body text.
// The document must start with "---\n".
func Split(content string) (Meta, string, error) {
	fm, body, err := splitRaw(content)
	if err != nil {
		return Meta{}, "", err
	}

	var meta Meta
	if err := yaml.Unmarshal([]byte(fm), &meta); err != nil {
		return Meta{}, "", fmt.Errorf("parsing frontmatter: %w", err)
	}
	return meta, body, nil
}

// Join composes a full page document from metadata and body. The layout is
// fixed: frontmatter block, one blank line, body, one trailing newline.
func Join(meta Meta, body string) string {
	var b strings.Builder
	b.WriteString(frontmatterBlock(meta))
	b.WriteString("\n")
	b.WriteString(strings.TrimRight(body, "\n"))
	b.WriteString("\n")
	return b.String()
}

// frontmatterBlock renders the metadata block by hand so the output is
// byte-stable regardless of YAML encoder quirks.
func frontmatterBlock(meta Meta) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("started: " + meta.Started + "\n")
	if meta.Ended != "" {
		b.WriteString("ended: " + meta.Ended + "\n")
	}
	b.WriteString("---\n")
	return b.String()
}

// splitRaw splits a page document into raw frontmatter and body text.
func splitRaw(content string) (string, string, error) {
	if !strings.HasPrefix(content, "---\n") {
		return "", "", errors.New("page does not start with YAML frontmatter (---)")
	}

	rest := content[4:] // skip opening ---\n
	idx := strings.Index(rest, "\n---\n")
	if idx < 0 {
		if strings.HasSuffix(rest, "\n---") {
			idx = len(rest) - len("---")
		} else {
			return "", "", errors.New("unclosed frontmatter (missing closing ---)")
		}
	}

	fm := rest[:idx]
	body := ""
	closingEnd := idx + len("\n---\n")
	if closingEnd < len(rest) {
		body = strings.TrimLeft(rest[closingEnd:], "\n")
	}

	return fm, body, nil
}
