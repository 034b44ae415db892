package domain

import (
	"fmt"
	"strings"
)

// ViewMode controls how the project catalog is laid out
type ViewMode int

const (
	ViewModeGrid ViewMode = iota
	ViewModeList
)

func (m ViewMode) String() string {
	switch m {
	case ViewModeList:
		return "list"
	default:
		return "grid"
	}
}

// ParseViewMode converts "grid" or "list" into a ViewMode
func ParseViewMode(s string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "grid":
		return ViewModeGrid, nil
	case "list":
		return ViewModeList, nil
	default:
		return ViewModeGrid, fmt.Errorf("unknown view mode %q (expected grid or list)", s)
	}
}

// Project represents a music project in the catalog
type Project struct {
	ID           string   `json:"id" yaml:"id"`
	Name         string   `json:"name" yaml:"name"`
	Description  string   `json:"description" yaml:"description"`
	CoverURL     string   `json:"coverUrl,omitempty" yaml:"coverUrl,omitempty"` // Opaque asset URI
	TrackCount   int      `json:"trackCount" yaml:"trackCount"`
	LastModified string   `json:"lastModified" yaml:"lastModified"` // Display string, e.g. "2 days ago"
	Tags         []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

// Initial returns the first letter of the name, used as a cover placeholder
func (p Project) Initial() string {
	for _, r := range p.Name {
		return strings.ToUpper(string(r))
	}
	return "?"
}

// TrackLabel renders the track count with the right plural
func (p Project) TrackLabel() string {
	return Plural(p.TrackCount, "track")
}

// MatchesProject reports whether the query is a case-insensitive substring
// of the project's name or description. An empty query matches everything.
func MatchesProject(p Project, query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

// FilterProjects returns the projects matching query, in their original order.
// The input slice is never modified.
func FilterProjects(projects []Project, query string) []Project {
	result := make([]Project, 0, len(projects))
	for _, p := range projects {
		if MatchesProject(p, query) {
			result = append(result, p)
		}
	}
	return result
}

// Plural formats "1 track" / "3 tracks"
func Plural(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
