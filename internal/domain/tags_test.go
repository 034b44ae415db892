package domain

import (
	"slices"
	"testing"
)

func TestTagSet_Toggle(t *testing.T) {
	t.Run("twice on empty set restores empty set", func(t *testing.T) {
		var s TagSet
		s.Toggle("House")
		if !s.Contains("House") {
			t.Fatal("expected House after first toggle")
		}
		s.Toggle("House")
		if !s.Equal(TagSet{}) {
			t.Errorf("expected empty set, got %v", s.Slice())
		}
	})

	t.Run("removes only the toggled tag", func(t *testing.T) {
		s := NewTagSet("Ambient", "Jazz", "Rock")
		s.Toggle("Jazz")
		if got := s.Slice(); !slices.Equal(got, []string{"Ambient", "Rock"}) {
			t.Errorf("unexpected tags %v", got)
		}
	})
}

func TestTagSet_NoDuplicates(t *testing.T) {
	s := NewTagSet("Trap", "Trap", "Indie")
	s.Add("Indie")
	if s.Len() != 2 {
		t.Errorf("expected 2 tags, got %d: %v", s.Len(), s.Slice())
	}
}

func TestTagSet_SliceIsCopy(t *testing.T) {
	s := NewTagSet("Techno")
	tags := s.Slice()
	tags[0] = "Changed"
	if !s.Contains("Techno") {
		t.Error("mutating Slice() result changed the set")
	}
}

func TestTagSet_EqualIgnoresOrder(t *testing.T) {
	a := NewTagSet("A", "B")
	b := NewTagSet("B", "A")
	if !a.Equal(b) {
		t.Error("expected sets with same members to be equal")
	}
	if a.Equal(NewTagSet("A")) {
		t.Error("expected sets of different size to differ")
	}
}

func TestLookupGenreTag(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"Synthwave", "Synthwave", true},
		{"synthwave", "Synthwave", true},
		{" LO-FI ", "Lo-Fi", true},
		{"r&b", "R&B", true},
		{"polka", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := LookupGenreTag(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("LookupGenreTag(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
