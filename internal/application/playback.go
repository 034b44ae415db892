package application

import "vanta/internal/domain"

// Default transport values of the player bar
const (
	DefaultVolume   = 75
	DefaultProgress = 30
)

// Playback holds the transport state of the mocked current track.
// No audio source is attached; every method only changes display state.
type Playback struct {
	track domain.Track
	state domain.PlaybackSnapshot
}

// NewPlayback creates paused, unliked transport state
func NewPlayback(track domain.Track, volume, progress int) *Playback {
	return &Playback{
		track: track,
		state: domain.PlaybackSnapshot{
			VolumePercent:   domain.ClampPercent(volume),
			ProgressPercent: domain.ClampPercent(progress),
		},
	}
}

// Track returns the current track
func (p *Playback) Track() domain.Track {
	return p.track
}

// Snapshot returns a copy of the transport state
func (p *Playback) Snapshot() domain.PlaybackSnapshot {
	return p.state
}

// TogglePlay flips between playing and paused
func (p *Playback) TogglePlay() {
	p.state.IsPlaying = !p.state.IsPlaying
}

// ToggleLike flips the liked flag
func (p *Playback) ToggleLike() {
	p.state.IsLiked = !p.state.IsLiked
}

// SetVolume sets the volume, clamped to [0,100]
func (p *Playback) SetVolume(percent int) {
	p.state.VolumePercent = domain.ClampPercent(percent)
}

// SetProgress sets the progress, clamped to [0,100]
func (p *Playback) SetProgress(percent int) {
	p.state.ProgressPercent = domain.ClampPercent(percent)
}

// NudgeVolume moves the volume by delta
func (p *Playback) NudgeVolume(delta int) {
	p.SetVolume(p.state.VolumePercent + delta)
}

// NudgeProgress moves the progress by delta
func (p *Playback) NudgeProgress(delta int) {
	p.SetProgress(p.state.ProgressPercent + delta)
}
