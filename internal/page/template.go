package page

import (
	"github.com/nownext/nownext/internal/checklist"
)

// Default bodies for freshly seeded pages with nothing rolled over. The now
// page demonstrates all three checkbox states; the next page stays flat.
const (
	defaultNowBody = `## Today
- [ ] Write down the first thing to do
- [/] Something already underway
- [x] Set up the notebook`

	defaultNextBody = `- [ ] Capture upcoming work here`
)

// Template builds a complete fresh page document for the given spec: the
// frontmatter block with the caller-supplied start date, a blank line, and
// either the rolled-over body or the kind's placeholder content. The result
// always ends with exactly one trailing newline. startDate is passed through
// unvalidated.
func Template(spec Spec, startDate string, rolled []checklist.Section) string {
	body := defaultBody(spec)
	if len(rolled) > 0 {
		if spec.Flatten {
			body = checklist.Flatten(rolled)
		} else {
			body = checklist.Body(rolled)
		}
	}
	return Join(Meta{Started: startDate}, body)
}

func defaultBody(spec Spec) string {
	if spec.Kind == KindNext {
		return defaultNextBody
	}
	return defaultNowBody
}
