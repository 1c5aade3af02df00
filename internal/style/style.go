package style

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Keypad buttons
	Key = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("241")).
		Foreground(lipgloss.Color("250")).
		Padding(0, 1)
	KeyActive = Key.
			BorderForeground(lipgloss.Color("226")). // Bright yellow
			Foreground(lipgloss.Color("226")).
			Bold(true)
	KeyBumped = KeyActive.
			BorderForeground(lipgloss.Color("9")) // Bright red

	Code     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("82")) // Green
	Moves    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	MoveNext = lipgloss.NewStyle().Foreground(lipgloss.Color("204")).Bold(true) // Pinkish-reddish purple
	Status   = lipgloss.NewStyle().Foreground(lipgloss.Color("228"))

	// Page styles
	TopPattern = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))            // Pinkish-reddish purple
	Title      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("228")) // Bright yellow
	Footer     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type RGB struct {
	R int
	G int
	B int
}

// GenerateHexColor generates hexadcimal string for a given RGB values. r, g, b sould be in the range 0-255
// Format: #RRGGBB
func GenerateHexColor(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", r, g, b)
}

var trailBase = RGB{255, 255, 0}

const (
	trailMin  = 96
	trailStep = 40
)

// Trail returns the border color of a key the finger left age steps ago.
// Older keys fade towards grey; age 0 is the brightest.
func Trail(age int) lipgloss.Color {
	shift := func(c int) int {
		v := c - age*trailStep
		if v < trailMin {
			v = trailMin
		}
		return v
	}
	return lipgloss.Color(GenerateHexColor(shift(trailBase.R), shift(trailBase.G), shift(trailBase.B)))
}
