package domain

import (
	"fmt"
	"strings"
)

// NoteType tags a vision board note
type NoteType int

const (
	NoteTypeNote NoteType = iota
	NoteTypeIdea
	NoteTypeMood
	NoteTypeReference
)

// NoteTypes lists the note types in display order
var NoteTypes = []NoteType{NoteTypeNote, NoteTypeIdea, NoteTypeMood, NoteTypeReference}

func (t NoteType) String() string {
	switch t {
	case NoteTypeIdea:
		return "idea"
	case NoteTypeMood:
		return "mood"
	case NoteTypeReference:
		return "reference"
	default:
		return "note"
	}
}

// Label is the capitalized display name
func (t NoteType) Label() string {
	s := t.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Color is the default accent used when a note carries no color of its own
func (t NoteType) Color() string {
	switch t {
	case NoteTypeIdea:
		return "#3B82F6" // Blue
	case NoteTypeMood:
		return "#A855F7" // Purple
	case NoteTypeReference:
		return "#22C55E" // Green
	default:
		return "#EAB308" // Yellow
	}
}

// MarshalText lets the type serialize as its name
func (t NoteType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// ParseNoteType converts a type name into a NoteType
func ParseNoteType(s string) (NoteType, error) {
	for _, t := range NoteTypes {
		if strings.EqualFold(strings.TrimSpace(s), t.String()) {
			return t, nil
		}
	}
	return NoteTypeNote, fmt.Errorf("unknown note type %q (expected note, idea, mood or reference)", s)
}

// Note is a single entry on a vision board
type Note struct {
	ID      string   `json:"id" yaml:"id"`
	Type    NoteType `json:"type" yaml:"type"`
	Content string   `json:"content" yaml:"content"`
	Color   string   `json:"color,omitempty" yaml:"color,omitempty"`
}

// DisplayColor returns the note's color, falling back to its type color
func (n Note) DisplayColor() string {
	if n.Color != "" {
		return n.Color
	}
	return n.Type.Color()
}

// IsBlank reports whether content has nothing but whitespace
func IsBlank(content string) bool {
	return strings.TrimSpace(content) == ""
}
