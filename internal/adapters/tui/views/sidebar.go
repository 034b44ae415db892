package views

import (
	"fmt"
	"strings"

	"vanta/internal/adapters/tui/styles"
	"vanta/internal/application"
)

// RenderSidebar renders the navigation column. active is the route of the
// page shown.
func RenderSidebar(sb application.Sidebar, active string, height int) string {
	var b strings.Builder
	b.WriteString(styles.Brand.Render("◆ VANTA"))
	b.WriteString("\n\n")

	for _, item := range sb.Nav {
		if item.Route == active {
			b.WriteString(styles.NavActive.Render("› " + item.Title))
		} else {
			b.WriteString(styles.NavItem.Render("  " + item.Title))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.InputLabel.Render("Your Projects"))
	b.WriteString("\n")
	for _, p := range sb.Projects {
		b.WriteString("  ")
		b.WriteString(Truncate(p.Name, 14))
		b.WriteString(" ")
		b.WriteString(RenderMuted(fmt.Sprintf("%d", p.Tracks)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Liked.Render("♥ "))
	b.WriteString(sb.Liked.Title)

	style := styles.Sidebar
	if height > 0 {
		style = style.Height(height)
	}
	return style.Render(b.String())
}
