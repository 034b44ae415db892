package cmd

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"vanta/internal/domain"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    format
		wantErr bool
	}{
		{"", formatText, false},
		{"text", formatText, false},
		{"JSON", formatJSON, false},
		{"yml", formatYAML, false},
		{"xml", formatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseFormat(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("parseFormat(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestWriteResult(t *testing.T) {
	note := domain.Note{ID: "1", Type: domain.NoteTypeIdea, Content: "Build slowly"}
	text := func(w io.Writer) { io.WriteString(w, "plain\n") }

	var buf bytes.Buffer
	if err := writeResult(&buf, formatText, note, text); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "plain\n" {
		t.Errorf("text output = %q", buf.String())
	}

	buf.Reset()
	if err := writeResult(&buf, formatJSON, note, text); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"type": "idea"`) {
		t.Errorf("json output = %s", buf.String())
	}

	buf.Reset()
	if err := writeResult(&buf, formatYAML, note, text); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "type: idea") {
		t.Errorf("yaml output = %s", buf.String())
	}
}
