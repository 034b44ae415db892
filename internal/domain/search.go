package domain

import (
	"fmt"
	"strings"
)

// ResultKind identifies the variant of a SearchResult
type ResultKind int

const (
	ResultTrack ResultKind = iota
	ResultProject
)

func (k ResultKind) String() string {
	switch k {
	case ResultProject:
		return "project"
	default:
		return "track"
	}
}

// MarshalText lets the kind serialize as its name in JSON and YAML output
func (k ResultKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Category is the search page filter. The zero value passes everything.
type Category int

const (
	CategoryAll Category = iota
	CategoryTracks
	CategoryProjects
)

// Categories lists the filters in display order
var Categories = []Category{CategoryAll, CategoryTracks, CategoryProjects}

func (c Category) String() string {
	switch c {
	case CategoryTracks:
		return "tracks"
	case CategoryProjects:
		return "projects"
	default:
		return "all"
	}
}

// ParseCategory converts "all", "tracks" or "projects" into a Category
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return CategoryAll, nil
	case "tracks", "track":
		return CategoryTracks, nil
	case "projects", "project":
		return CategoryProjects, nil
	default:
		return CategoryAll, fmt.Errorf("unknown category %q (expected all, tracks or projects)", s)
	}
}

// Admits reports whether a result of the given kind passes this category
func (c Category) Admits(kind ResultKind) bool {
	switch c {
	case CategoryTracks:
		return kind == ResultTrack
	case CategoryProjects:
		return kind == ResultProject
	default:
		return true
	}
}

// TrackDetails holds the fields only present on track results
type TrackDetails struct {
	Project    string `json:"project" yaml:"project"`
	Duration   string `json:"duration" yaml:"duration"`
	LastPlayed string `json:"lastPlayed" yaml:"lastPlayed"`
}

// ProjectDetails holds the fields only present on project results
type ProjectDetails struct {
	TrackCount   int    `json:"trackCount" yaml:"trackCount"`
	LastModified string `json:"lastModified" yaml:"lastModified"`
}

// SearchResult is a track or a project. Exactly one of Track and Project is
// set, matching Kind.
type SearchResult struct {
	Kind    ResultKind      `json:"type" yaml:"type"`
	ID      string          `json:"id" yaml:"id"`
	Title   string          `json:"title" yaml:"title"`
	Tags    []string        `json:"tags" yaml:"tags"`
	Track   *TrackDetails   `json:"track,omitempty" yaml:"track,omitempty"`
	Project *ProjectDetails `json:"project,omitempty" yaml:"project,omitempty"`
}

// NewTrackResult builds a track-variant result
func NewTrackResult(id, title string, tags []string, d TrackDetails) SearchResult {
	return SearchResult{Kind: ResultTrack, ID: id, Title: title, Tags: tags, Track: &d}
}

// NewProjectResult builds a project-variant result
func NewProjectResult(id, title string, tags []string, d ProjectDetails) SearchResult {
	return SearchResult{Kind: ResultProject, ID: id, Title: title, Tags: tags, Project: &d}
}

// Subtitle renders the variant-specific line shown under the title
func (r SearchResult) Subtitle() string {
	switch {
	case r.Track != nil:
		return fmt.Sprintf("%s • %s • %s", r.Track.Project, r.Track.Duration, r.Track.LastPlayed)
	case r.Project != nil:
		return fmt.Sprintf("%s • %s", Plural(r.Project.TrackCount, "track"), r.Project.LastModified)
	default:
		return ""
	}
}

// MatchesResult reports whether the query is a case-insensitive substring of
// the title or of any tag
func MatchesResult(r SearchResult, query string) bool {
	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	for _, tag := range r.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// MatchResults returns the results matching query, in source order
func MatchResults(results []SearchResult, query string) []SearchResult {
	out := make([]SearchResult, 0, len(results))
	for _, r := range results {
		if MatchesResult(r, query) {
			out = append(out, r)
		}
	}
	return out
}

// ApplyCategoryFilter keeps the results admitted by the category.
// CategoryAll returns the input unchanged.
func ApplyCategoryFilter(results []SearchResult, category Category) []SearchResult {
	if category == CategoryAll {
		return results
	}
	out := make([]SearchResult, 0, len(results))
	for _, r := range results {
		if category.Admits(r.Kind) {
			out = append(out, r)
		}
	}
	return out
}
