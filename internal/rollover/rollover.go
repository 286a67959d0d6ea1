// Package rollover archives a finished page and carries its unfinished
// tasks into a fresh one.
package rollover

import (
	"github.com/nownext/nownext/internal/checklist"
	"github.com/nownext/nownext/internal/journal"
	"github.com/nownext/nownext/internal/page"
	"github.com/nownext/nownext/internal/store"
)

// Result summarizes one page rollover.
type Result struct {
	Page    string `json:"page"`
	Started string `json:"started"`
	Ended   string `json:"ended"`
	Rolled  int    `json:"rolled"`
	Dropped int    `json:"dropped"`
	Archive string `json:"archive"`
}

// Plan computes what a rollover of the given page would carry forward
// without touching any files. Used by dry runs.
func Plan(st *store.Store, kind page.Kind) ([]checklist.Section, *store.Page, error) {
	p, err := st.ReadPage(kind)
	if err != nil {
		return nil, nil, err
	}
	return checklist.FilterIncomplete(p.Sections()), p, nil
}

// Roll archives the current page of the given kind and writes a fresh page
// pre-populated with the unfinished tasks. today is the opaque date string
// stamped as the old page's end and the new page's start. The whole
// operation holds the notebook lock so concurrent invocations see a
// consistent snapshot.
func Roll(st *store.Store, kind page.Kind, today string) (*Result, error) {
	unlock, err := st.Lock()
	if err != nil {
		return nil, err
	}
	defer func() { _ = unlock() }()

	p, err := st.ReadPage(kind)
	if err != nil {
		return nil, err
	}

	sections := p.Sections()
	rolled := checklist.FilterIncomplete(sections)
	total := checklist.CountTasks(sections)
	kept := checklist.CountTasks(rolled)

	dest, err := st.Archive(p, today)
	if err != nil {
		return nil, err
	}

	if err := st.WriteFresh(p.Spec, page.Template(p.Spec, today, rolled)); err != nil {
		return nil, err
	}

	result := &Result{
		Page:    string(kind),
		Started: p.Meta.Started,
		Ended:   today,
		Rolled:  kept,
		Dropped: total - kept,
		Archive: dest,
	}
	journal.Record(st.Config().Dir(), "rollover", string(kind), dest)
	return result, nil
}
