package views

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"vanta/internal/adapters/tui/styles"
	"vanta/internal/domain"
)

// RenderPlayerBar renders the transport strip shown under every view
func RenderPlayerBar(t domain.Track, s domain.PlaybackSnapshot, width int) string {
	status := "▶"
	if s.IsPlaying {
		status = "⏸"
	}
	heart := "♡"
	if s.IsLiked {
		heart = styles.Liked.Render("♥")
	}

	info := fmt.Sprintf("%s  %s %s",
		lipgloss.NewStyle().Bold(true).Render(t.Title),
		RenderMuted(t.Artist),
		heart,
	)
	transport := fmt.Sprintf("⏮ %s ⏭  %s %s %s",
		status,
		t.CurrentTime,
		RenderBar(s.ProgressPercent, 24),
		t.Duration,
	)
	volume := fmt.Sprintf("🔊 %s %3d%%", RenderBar(s.VolumePercent, 10), s.VolumePercent)

	line := lipgloss.JoinHorizontal(lipgloss.Center, info, "   ", transport, "   ", volume)
	if width > 0 {
		return styles.PlayerBar.Width(width).Render(line)
	}
	return styles.PlayerBar.Render(line)
}
