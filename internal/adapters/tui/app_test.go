package tui

import (
	"context"
	"math/rand/v2"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"vanta/internal/adapters/memory"
	"vanta/internal/adapters/suggest"
	"vanta/internal/adapters/tui/views"
	"vanta/internal/application"
)

func newTestApp(t *testing.T) (*App, *application.Workspace) {
	t.Helper()
	repo := memory.NewFixtureRepository()
	ws := application.NewWorkspace(application.Dependencies{
		Projects:  repo,
		Results:   repo,
		Suggester: suggest.NewCanned(suggest.WithRand(rand.New(rand.NewPCG(3, 4)))),
		IDs:       memory.TimeIDs{},
		Volume:    application.DefaultVolume,
		Progress:  application.DefaultProgress,
	})
	a := NewApp(context.Background(), ws)
	a.Update(tea.WindowSizeMsg{Width: 140, Height: 45})
	return a, ws
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// press sends a key and feeds back any navigation message it produces
func press(a *App, msg tea.KeyMsg) tea.Cmd {
	_, cmd := a.Update(msg)
	if cmd == nil {
		return nil
	}
	switch next := cmd().(type) {
	case views.SwitchToProjectsMsg, views.SwitchToSearchMsg, views.SwitchToBoardMsg,
		views.SwitchToCreateMsg, views.SwitchToHelpMsg:
		_, cmd = a.Update(next)
	}
	return cmd
}

func TestApp_TransportKeys(t *testing.T) {
	a, ws := newTestApp(t)

	tests := []struct {
		key     tea.KeyMsg
		check   func() bool
		explain string
	}{
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, func() bool { return ws.Player.Snapshot().IsPlaying }, "space plays"},
		{runes("+"), func() bool { return ws.Player.Snapshot().VolumePercent == 80 }, "+ raises volume"},
		{runes("-"), func() bool { return ws.Player.Snapshot().VolumePercent == 75 }, "- lowers volume"},
		{runes(">"), func() bool { return ws.Player.Snapshot().ProgressPercent == 35 }, "> seeks"},
		{runes("<"), func() bool { return ws.Player.Snapshot().ProgressPercent == 30 }, "< seeks back"},
		{runes("L"), func() bool { return ws.Player.Snapshot().IsLiked }, "L likes"},
	}

	for _, tt := range tests {
		a.Update(tt.key)
		if !tt.check() {
			t.Errorf("%s: state = %+v", tt.explain, ws.Player.Snapshot())
		}
	}
}

func TestApp_Navigation(t *testing.T) {
	a, _ := newTestApp(t)

	if a.State() != ViewProjects {
		t.Fatalf("start state = %v", a.State())
	}

	press(a, runes("3"))
	if a.State() != ViewBoard {
		t.Errorf("3: state = %v, want board", a.State())
	}

	press(a, runes("?"))
	if a.State() != ViewHelp {
		t.Errorf("?: state = %v, want help", a.State())
	}
	press(a, runes("?"))
	if a.State() != ViewProjects {
		t.Errorf("? again: state = %v, want projects", a.State())
	}

	press(a, runes("2"))
	if a.State() != ViewSearch {
		t.Errorf("2: state = %v, want search", a.State())
	}
}

func TestApp_TextInputOwnsPrintableKeys(t *testing.T) {
	a, ws := newTestApp(t)
	press(a, runes("2"))

	cmd := press(a, runes("q"))
	if cmd != nil {
		if _, quit := cmd().(tea.QuitMsg); quit {
			t.Fatal("q typed into search must not quit")
		}
	}
	if ws.Search.Query() != "q" {
		t.Errorf("query = %q, want q", ws.Search.Query())
	}
	if a.State() != ViewSearch {
		t.Errorf("state = %v", a.State())
	}

	_, cmd = a.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if _, quit := cmd().(tea.QuitMsg); !quit {
		t.Error("ctrl+c should always quit")
	}
}

func TestApp_CreateFlow(t *testing.T) {
	a, ws := newTestApp(t)

	press(a, runes("n"))
	if a.State() != ViewCreate {
		t.Fatalf("n: state = %v, want create", a.State())
	}

	a.Update(runes("Night Drive"))
	_, cmd := a.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	a.Update(cmd())

	if a.State() != ViewProjects {
		t.Errorf("after create: state = %v, want projects", a.State())
	}
	all, _ := ws.Catalog.All()
	if len(all) != 7 || all[6].Name != "Night Drive" {
		t.Errorf("catalog = %v", all)
	}
	if !contains(a.View(), "Created project: Night Drive") {
		t.Error("expected confirmation in view")
	}
}

func TestApp_OpenUnknownBoard(t *testing.T) {
	a, _ := newTestApp(t)

	a.Update(views.SwitchToBoardMsg{ProjectID: "404"})
	if a.State() != ViewProjects {
		t.Errorf("state = %v, want projects", a.State())
	}
}

func TestApp_ViewComposesChrome(t *testing.T) {
	a, _ := newTestApp(t)
	out := a.View()

	for _, want := range []string{"VANTA", "Your Projects", "Liked Tracks", "Neon Dreams", "EP 2025"} {
		if !contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}
