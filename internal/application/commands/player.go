package commands

import (
	"context"
	"fmt"

	"vanta/internal/application"
	"vanta/internal/domain"
)

// PlayerResult contains the transport state after the command
type PlayerResult struct {
	Track   domain.Track
	State   domain.PlaybackSnapshot
	Message string
}

// PlayerCommand applies transport changes. Nil percentages are left alone.
type PlayerCommand struct {
	ws         *application.Workspace
	TogglePlay bool
	ToggleLike bool
	Volume     *int
	Progress   *int
}

// NewPlayerCommand creates a PlayerCommand that only reports the state
func NewPlayerCommand(ws *application.Workspace) *PlayerCommand {
	return &PlayerCommand{ws: ws}
}

// Validate checks the percentages
func (c *PlayerCommand) Validate() error {
	if c.Volume != nil {
		if err := application.ValidatePercent("volume", *c.Volume); err != nil {
			return err
		}
	}
	if c.Progress != nil {
		if err := application.ValidatePercent("progress", *c.Progress); err != nil {
			return err
		}
	}
	return nil
}

// Execute runs the player command
func (c *PlayerCommand) Execute(ctx context.Context) (*PlayerResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	p := c.ws.Player
	if c.TogglePlay {
		p.TogglePlay()
	}
	if c.ToggleLike {
		p.ToggleLike()
	}
	if c.Volume != nil {
		p.SetVolume(*c.Volume)
	}
	if c.Progress != nil {
		p.SetProgress(*c.Progress)
	}

	return &PlayerResult{
		Track:   p.Track(),
		State:   p.Snapshot(),
		Message: describePlayer(p.Track(), p.Snapshot()),
	}, nil
}

func describePlayer(t domain.Track, s domain.PlaybackSnapshot) string {
	status := "Paused"
	if s.IsPlaying {
		status = "Playing"
	}
	liked := ""
	if s.IsLiked {
		liked = " ♥"
	}
	return fmt.Sprintf("%s: %s - %s%s (volume %d%%, %d%%)", status, t.Title, t.Artist, liked, s.VolumePercent, s.ProgressPercent)
}
