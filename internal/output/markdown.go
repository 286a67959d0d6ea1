package output

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// RenderMarkdown renders a markdown document for terminal display, picking
// a light or dark style from the terminal background.
func RenderMarkdown(doc string, width int) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("creating markdown renderer: %w", err)
	}
	out, err := r.Render(doc)
	if err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return out, nil
}
