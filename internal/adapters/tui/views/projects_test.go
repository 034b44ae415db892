package views

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"vanta/internal/domain"
)

func TestProjectsModel_Filter(t *testing.T) {
	ws := newTestWorkspace(t)
	m := NewProjectsModel(ws.Catalog)
	m.SetSize(100, 40)

	if len(m.Projects()) != 6 {
		t.Fatalf("got %d projects, want 6", len(m.Projects()))
	}
	if m.Capturing() {
		t.Error("filter should start blurred")
	}

	m.Update(runes("/"))
	if !m.Capturing() {
		t.Fatal("expected / to focus the filter")
	}

	m.Update(runes("synth"))
	got := m.Projects()
	if len(got) != 2 || got[0].Name != "EP 2025" || got[1].Name != "Dark Synthwave" {
		t.Errorf("filtered projects = %v", got)
	}
	if ws.Catalog.Query() != "synth" {
		t.Errorf("catalog query = %q", ws.Catalog.Query())
	}

	m.Update(keyOf(tea.KeyEsc))
	if m.Capturing() {
		t.Error("esc should blur the filter")
	}
	if len(m.Projects()) != 2 {
		t.Error("blurring should keep the query")
	}

	m.Update(runes("/"))
	m.Update(keyOf(tea.KeyCtrlU))
	if len(m.Projects()) != 6 {
		t.Errorf("clearing should restore all projects, got %d", len(m.Projects()))
	}
}

func TestProjectsModel_ToggleViewMode(t *testing.T) {
	ws := newTestWorkspace(t)
	m := NewProjectsModel(ws.Catalog)
	m.SetSize(100, 40)

	m.Update(runes("v"))
	if ws.Catalog.ViewMode() != domain.ViewModeList {
		t.Errorf("view mode = %v, want list", ws.Catalog.ViewMode())
	}
	if len(m.Projects()) != 6 {
		t.Error("view mode should not change the project set")
	}

	m.Update(runes("v"))
	if ws.Catalog.ViewMode() != domain.ViewModeGrid {
		t.Errorf("view mode = %v, want grid", ws.Catalog.ViewMode())
	}
}

func TestProjectsModel_OpenBoard(t *testing.T) {
	ws := newTestWorkspace(t)
	m := NewProjectsModel(ws.Catalog)
	m.SetSize(100, 40)

	m.Update(runes("l"))
	p, ok := m.Selected()
	if !ok || p.ID != "2" {
		t.Fatalf("selected = %v %v, want project 2", p.ID, ok)
	}

	_, cmd := m.Update(keyOf(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg, ok := cmd().(SwitchToBoardMsg)
	if !ok || msg.ProjectID != "2" {
		t.Errorf("got %#v, want SwitchToBoardMsg for project 2", msg)
	}
}

func TestProjectsModel_EmptyView(t *testing.T) {
	ws := newTestWorkspace(t)
	ws.Catalog.SetQuery("polka")
	m := NewProjectsModel(ws.Catalog)

	if got := m.View(); !contains(got, "No projects match") {
		t.Errorf("expected empty state, got %q", got)
	}
	if _, ok := m.Selected(); ok {
		t.Error("nothing should be selected")
	}
}
