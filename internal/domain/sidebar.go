package domain

// NavItem is an entry in the sidebar's main navigation
type NavItem struct {
	Title string
	Route string
}

// MainNav lists the primary navigation targets
var MainNav = []NavItem{
	{Title: "Home", Route: "/"},
	{Title: "Search", Route: "/search"},
	{Title: "Library", Route: "/library"},
}

// LikedTracks is the entry below the project list
var LikedTracks = NavItem{Title: "Liked Tracks", Route: "/liked"}

// RecentProject is a compact project entry in the sidebar
type RecentProject struct {
	Name   string
	Tracks int
}

// MaxRecentProjects bounds the "Your Projects" list in the sidebar
const MaxRecentProjects = 4

// RecentProjects picks the leading projects for the sidebar
func RecentProjects(projects []Project) []RecentProject {
	n := min(len(projects), MaxRecentProjects)
	out := make([]RecentProject, 0, n)
	for _, p := range projects[:n] {
		out = append(out, RecentProject{Name: p.Name, Tracks: p.TrackCount})
	}
	return out
}
