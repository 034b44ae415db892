package domain

import (
	"slices"
	"strings"
)

// TagSet is a set of tags that remembers insertion order for display.
// The zero value is an empty set.
type TagSet struct {
	tags []string
}

// NewTagSet builds a set from tags, dropping duplicates
func NewTagSet(tags ...string) TagSet {
	var s TagSet
	for _, t := range tags {
		s.Add(t)
	}
	return s
}

// Contains reports membership
func (s TagSet) Contains(tag string) bool {
	return slices.Contains(s.tags, tag)
}

// Add inserts tag if absent
func (s *TagSet) Add(tag string) {
	if !s.Contains(tag) {
		s.tags = append(s.tags, tag)
	}
}

// Remove deletes tag if present
func (s *TagSet) Remove(tag string) {
	s.tags = slices.DeleteFunc(s.tags, func(t string) bool { return t == tag })
}

// Toggle adds tag when absent and removes it when present.
// Toggling the same tag twice restores the original set.
func (s *TagSet) Toggle(tag string) {
	if s.Contains(tag) {
		s.Remove(tag)
		return
	}
	s.Add(tag)
}

// Len returns the number of tags
func (s TagSet) Len() int {
	return len(s.tags)
}

// Slice returns a copy of the tags
func (s TagSet) Slice() []string {
	return slices.Clone(s.tags)
}

// Equal compares membership, ignoring order
func (s TagSet) Equal(other TagSet) bool {
	if s.Len() != other.Len() {
		return false
	}
	for _, t := range s.tags {
		if !other.Contains(t) {
			return false
		}
	}
	return true
}

// LookupGenreTag finds tag in GenreTags ignoring case and returns the
// vocabulary's spelling
func LookupGenreTag(tag string) (string, bool) {
	tag = strings.TrimSpace(tag)
	i := slices.IndexFunc(GenreTags, func(g string) bool { return strings.EqualFold(g, tag) })
	if i < 0 {
		return "", false
	}
	return GenreTags[i], true
}
