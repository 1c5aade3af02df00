package render

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/keywalk/internal/keypad"
)

func TestKeypadShape(t *testing.T) {
	tests := []struct {
		layout *keypad.Layout
		rows   int
	}{
		{keypad.Square, 3},
		{keypad.Diamond, 5},
	}
	for _, tt := range tests {
		out := Keypad(tt.layout, tt.layout.Start(), false, nil)
		// Every button is three lines tall.
		if got := lipgloss.Height(out); got != tt.rows*3 {
			t.Errorf("%s: height %d, want %d", tt.layout.Name(), got, tt.rows*3)
		}
		for _, k := range tt.layout.Keys() {
			if !strings.Contains(out, k.String()) {
				t.Errorf("%s: key %q not drawn", tt.layout.Name(), k)
			}
		}
	}
}

func TestKeypadRowsAlign(t *testing.T) {
	out := Keypad(keypad.Diamond, 'D', true, map[keypad.Key]int{'B': 0, '7': 1})
	width := lipgloss.Width(out)
	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w != width {
			t.Fatalf("line %d width %d, want %d", i, w, width)
		}
	}
}

func TestPageContainsParts(t *testing.T) {
	out := Page("Title", "body", "footer", 20, 10, 0, 0)
	for _, want := range []string{"Title", "body", "footer", strings.Repeat("/", 20)} {
		if !strings.Contains(out, want) {
			t.Errorf("page missing %q", want)
		}
	}
}
