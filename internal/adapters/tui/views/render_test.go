package views

import (
	"strings"
	"testing"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"Neon Dreams", 20, "Neon Dreams"},
		{"Neon Dreams", 11, "Neon Dreams"},
		{"Neon Dreams", 5, "Neon…"},
		{"Neon", 1, "…"},
		{"Neon", 0, "Neon"},
		{"Ñandú azul", 4, "Ñan…"},
	}

	for _, tt := range tests {
		if got := Truncate(tt.in, tt.n); got != tt.want {
			t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.n, got, tt.want)
		}
	}
}

func TestRenderBar(t *testing.T) {
	if RenderBar(50, 0) != "" {
		t.Error("zero width bar should be empty")
	}

	bar := RenderBar(30, 10)
	if strings.Count(bar, "━") != 3 || strings.Count(bar, "─") != 7 {
		t.Errorf("RenderBar(30, 10) = %q", bar)
	}

	full := RenderBar(150, 4)
	if strings.Count(full, "━") != 4 {
		t.Errorf("over 100%% should fill the bar, got %q", full)
	}
}

func TestRenderTags(t *testing.T) {
	out := RenderTags([]string{"synthwave", "dark"})
	if !strings.Contains(out, "#synthwave") || !strings.Contains(out, "#dark") {
		t.Errorf("RenderTags() = %q", out)
	}
}
