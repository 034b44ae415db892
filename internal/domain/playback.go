package domain

// Track describes the mocked current track shown in the player bar
type Track struct {
	Title       string `json:"title" yaml:"title"`
	Artist      string `json:"artist" yaml:"artist"`
	Album       string `json:"album" yaml:"album"`
	CoverURL    string `json:"coverUrl" yaml:"coverUrl"`
	Duration    string `json:"duration" yaml:"duration"`
	CurrentTime string `json:"currentTime" yaml:"currentTime"`
}

// PlaybackSnapshot is the transport state of the player.
// Playing and liked are independent; there is no state machine.
type PlaybackSnapshot struct {
	IsPlaying       bool `json:"isPlaying" yaml:"isPlaying"`
	VolumePercent   int  `json:"volumePercent" yaml:"volumePercent"`
	ProgressPercent int  `json:"progressPercent" yaml:"progressPercent"`
	IsLiked         bool `json:"isLiked" yaml:"isLiked"`
}

// ClampPercent bounds p to [0,100]
func ClampPercent(p int) int {
	return min(max(p, 0), 100)
}
