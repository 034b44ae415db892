package domain

import "strings"

// DraftProject is the unsaved state of the project creation form
type DraftProject struct {
	Name        string
	Description string
	Tags        TagSet
	CoverURL    string
}

// TrimmedName returns the name without surrounding whitespace
func (d DraftProject) TrimmedName() string {
	return strings.TrimSpace(d.Name)
}

// Ready reports whether the draft can be submitted
func (d DraftProject) Ready() bool {
	return d.TrimmedName() != ""
}

// IsEmpty reports whether the draft is in its initial state
func (d DraftProject) IsEmpty() bool {
	return d.Name == "" && d.Description == "" && d.CoverURL == "" && d.Tags.Len() == 0
}
