package output

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/nownext/nownext/internal/store"
)

// TaskCompact renders a list of page tasks in one-line-per-record compact format.
func TaskCompact(w io.Writer, tasks []store.PageTask) {
	if len(tasks) == 0 {
		fmt.Fprintln(os.Stderr, "No tasks found.")
		return
	}

	for _, t := range tasks {
		line := string(t.Page) + ":" + strconv.Itoa(t.Line) + " [" + string(t.State) + "] " + t.Text
		if len(t.Section) > 0 {
			line += " (" + strings.Join(t.Section, " ") + ")"
		}
		fmt.Fprintln(w, line)
	}
}

// ArchiveCompact renders archive entries in compact format.
func ArchiveCompact(w io.Writer, entries []store.ArchiveEntry) {
	if len(entries) == 0 {
		fmt.Fprintln(os.Stderr, "No archives found.")
		return
	}

	for _, e := range entries {
		fmt.Fprintln(w, e.DisplayName+" "+e.Started+"~"+e.Ended+" "+e.File)
	}
}

// PageCompact renders a page as frontmatter summary plus indented body lines.
func PageCompact(w io.Writer, p *store.Page) {
	line := string(p.Spec.Kind) + " started:" + p.Meta.Started
	if p.Meta.Ended != "" {
		line += " ended:" + p.Meta.Ended
	}
	fmt.Fprintln(w, line)

	for _, bodyLine := range strings.Split(strings.TrimRight(p.Body, "\n"), "\n") {
		fmt.Fprintln(w, "  "+bodyLine)
	}
}
