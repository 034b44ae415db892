package commands

import (
	"context"
	"testing"
)

func TestPlayerCommand(t *testing.T) {
	ws := newTestWorkspace(t)
	ctx := context.Background()

	res, err := NewPlayerCommand(ws).Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.State.IsPlaying || res.State.VolumePercent != 75 || res.State.ProgressPercent != 30 {
		t.Errorf("initial state = %+v", res.State)
	}
	if res.Message != "Paused: Neon Dreams - Project EP 2025 (volume 75%, 30%)" {
		t.Errorf("message = %q", res.Message)
	}

	cmd := NewPlayerCommand(ws)
	cmd.TogglePlay = true
	cmd.ToggleLike = true
	cmd.Volume = intPtr(40)
	cmd.Progress = intPtr(90)
	res, err = cmd.Execute(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !res.State.IsPlaying || !res.State.IsLiked || res.State.VolumePercent != 40 || res.State.ProgressPercent != 90 {
		t.Errorf("state = %+v", res.State)
	}
	if !contains(res.Message, "Playing") || !contains(res.Message, "♥") {
		t.Errorf("message = %q", res.Message)
	}
}

func TestPlayerCommand_Validate(t *testing.T) {
	tests := []struct {
		name     string
		volume   *int
		progress *int
		wantErr  bool
	}{
		{name: "nothing"},
		{name: "bounds", volume: intPtr(0), progress: intPtr(100)},
		{name: "volume too high", volume: intPtr(101), wantErr: true},
		{name: "negative progress", progress: intPtr(-1), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &PlayerCommand{Volume: tt.volume, Progress: tt.progress}
			err := cmd.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
