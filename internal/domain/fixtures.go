package domain

// Fixture data standing in for a real data source. Callers receive copies so
// the fixtures themselves are never mutated.

const defaultCover = "/lovable-uploads/c6d15258-2b98-4625-9216-0e8684fc39c0.png"

var fixtureProjects = []Project{
	{
		ID:           "1",
		Name:         "EP 2025",
		Description:  "5-track dark synthwave EP with heavy bass and atmospheric pads",
		TrackCount:   5,
		CoverURL:     defaultCover,
		LastModified: "2 days ago",
	},
	{
		ID:           "2",
		Name:         "Dark Synthwave",
		Description:  "Cyberpunk-inspired instrumentals with retro-futuristic vibes",
		TrackCount:   8,
		LastModified: "1 week ago",
	},
	{
		ID:           "3",
		Name:         "Ambient Sessions",
		Description:  "Meditation and focus tracks with ethereal soundscapes",
		TrackCount:   3,
		LastModified: "3 days ago",
	},
	{
		ID:           "4",
		Name:         "Bass Experiments",
		Description:  "Heavy sub-bass explorations and rhythmic patterns",
		TrackCount:   12,
		LastModified: "5 days ago",
	},
	{
		ID:           "5",
		Name:         "Vocal Chops",
		Description:  "Experimental vocal processing and manipulation",
		TrackCount:   7,
		LastModified: "1 day ago",
	},
	{
		ID:           "6",
		Name:         "Lo-Fi Beats",
		Description:  "Chill hop instrumentals for late night coding sessions",
		TrackCount:   15,
		LastModified: "2 weeks ago",
	},
}

// FixtureProjects returns a fresh copy of the sample catalog
func FixtureProjects() []Project {
	out := make([]Project, len(fixtureProjects))
	copy(out, fixtureProjects)
	return out
}

// FixtureSearchResults returns the sample search results
func FixtureSearchResults() []SearchResult {
	return []SearchResult{
		NewTrackResult("1", "Neon Dreams", []string{"synthwave", "dark"}, TrackDetails{
			Project:    "EP 2025",
			Duration:   "3:24",
			LastPlayed: "2 hours ago",
		}),
		NewProjectResult("2", "Dark Synthwave Collection", []string{"synthwave", "retro", "electronic"}, ProjectDetails{
			TrackCount:   8,
			LastModified: "1 week ago",
		}),
		NewTrackResult("3", "Midnight City", []string{"atmospheric", "dark"}, TrackDetails{
			Project:    "Urban Vibes",
			Duration:   "4:12",
			LastPlayed: "1 day ago",
		}),
	}
}

// RecentSearches are shown on the idle search page
var RecentSearches = []string{
	"Dark synthwave", "Lo-fi beats", "Ambient pads", "Bass heavy", "Retro",
}

// TrendingTags are shown on the idle search page
var TrendingTags = []string{
	"synthwave", "lo-fi", "ambient", "electronic", "experimental",
	"dark", "atmospheric", "retrowave", "chill", "upbeat",
}

// GenreTags is the vocabulary offered by the project creation form
var GenreTags = []string{
	"Synthwave", "Ambient", "Electronic", "Lo-Fi", "House", "Techno",
	"Trap", "Hip-Hop", "R&B", "Jazz", "Rock", "Indie", "Experimental",
}

// MoodVocabulary is the quick-add list on the vision board
var MoodVocabulary = []string{
	"Dark & Atmospheric", "Energetic & Uplifting", "Nostalgic & Dreamy",
	"Aggressive & Powerful", "Calm & Meditative", "Mysterious & Cinematic",
	"Retro & Vintage", "Futuristic & Clean", "Organic & Natural",
}

// ProjectNameIdeas are the canned "suggest name" candidates
var ProjectNameIdeas = []string{
	"Neon Dreams Collection",
	"Midnight City Vibes",
	"Retro Future Sounds",
	"Urban Atmospheric",
}

// ProductionIdeas are the canned vision board suggestions
var ProductionIdeas = []string{
	"Add atmospheric reverb to create depth",
	"Try layering multiple synth arpeggios",
	"Consider adding vinyl crackle for lo-fi texture",
	"Use side-chain compression on pads",
}

// FixtureNotes returns the notes a new vision board starts with
func FixtureNotes() []Note {
	return []Note{
		{
			ID:      "1",
			Type:    NoteTypeMood,
			Content: "Dark synthwave vibes with neon aesthetics. Think Blade Runner meets modern electronic music.",
		},
		{
			ID:      "2",
			Type:    NoteTypeIdea,
			Content: "Opening track should build slowly with ambient pads, then drop into heavy bass at 1:30",
		},
	}
}

// CurrentTrack is the mocked track loaded in the player
var CurrentTrack = Track{
	Title:       "Neon Dreams",
	Artist:      "Project EP 2025",
	Album:       "Dark Synthwave",
	CoverURL:    defaultCover,
	Duration:    "3:24",
	CurrentTime: "1:12",
}
