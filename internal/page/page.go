// Package page defines the closed set of notebook page kinds and builds
// fresh page documents from rolled-over sections.
package page

import "strings"

// Kind identifies a notebook page type.
type Kind string

// The two page kinds a notebook carries.
const (
	KindNow  Kind = "now"
	KindNext Kind = "next"
)

// Spec describes a page kind: its canonical file name, human-readable
// display name, and whether rollover flattens the checklist structure.
type Spec struct {
	Kind        Kind   `json:"kind"`
	File        string `json:"file"`
	DisplayName string `json:"display_name"`
	// Flatten discards headers and indentation when tasks roll into a
	// fresh page of this kind.
	Flatten bool `json:"flatten"`
}

// specs is the fixed registry, in display order. The now page keeps its
// structure across rollovers; the next page is a flat staging list.
var specs = []Spec{
	{Kind: KindNow, File: "Now.md", DisplayName: "Now", Flatten: false},
	{Kind: KindNext, File: "Next.md", DisplayName: "Next", Flatten: true},
}

// Kinds returns the page kinds in display order.
func Kinds() []Kind {
	kinds := make([]Kind, len(specs))
	for i, s := range specs {
		kinds[i] = s.Kind
	}
	return kinds
}

// Lookup resolves a kind name (case-insensitive) to its Spec.
func Lookup(name string) (Spec, bool) {
	for _, s := range specs {
		if strings.EqualFold(name, string(s.Kind)) {
			return s, true
		}
	}
	return Spec{}, false
}

// KindNames returns the valid kind names for error messages and completion.
func KindNames() []string {
	names := make([]string, len(specs))
	for i, s := range specs {
		names[i] = string(s.Kind)
	}
	return names
}
