package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/keywalk/internal/keypad"
	"github.com/vinser/keywalk/internal/style"
)

// Page renders page with title at the top, content block and footer at the botttom
// Style of content leave intact
func Page(title, renderedContent, footer string, width, height, termWidth, termHeight int) string {
	// Render top pattern of slashes
	renderedTopPattern := style.TopPattern.Render(strings.Repeat("/", width))

	// Render the title
	renderedTitle := style.Title.Render(title)

	// Render the footer
	renderedFooter := style.Footer.Render(footer)

	// Calculate available height for content after accounting for title and footer
	availableHeight := height - lipgloss.Height(renderedTopPattern) - lipgloss.Height(renderedTitle) - lipgloss.Height(renderedFooter)

	// Place content vertically centered within the available height
	centeredContent := lipgloss.PlaceVertical(availableHeight, lipgloss.Center, renderedContent)

	// Assemble the final page
	view := lipgloss.JoinVertical(
		lipgloss.Left,
		renderedTopPattern,
		renderedTitle,
		centeredContent,
		renderedFooter,
	)
	if termWidth > 0 && termHeight > 0 {
		return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// Keypad draws the layout as a grid of buttons. The active key is
// highlighted, in the bump style when the last move hit the edge; keys in
// trail are tinted by how many steps ago the finger left them.
func Keypad(l *keypad.Layout, active keypad.Key, bumped bool, trail map[keypad.Key]int) string {
	blank := strings.Repeat(" ", lipgloss.Width(style.Key.Render("0")))
	rows := make([]string, 0, len(l.Rows()))
	for _, row := range l.Rows() {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			k := keypad.Key(c)
			switch {
			case c == ' ':
				cells = append(cells, blank+"\n"+blank+"\n"+blank)
			case k == active && bumped:
				cells = append(cells, style.KeyBumped.Render(k.String()))
			case k == active:
				cells = append(cells, style.KeyActive.Render(k.String()))
			default:
				s := style.Key
				if age, ok := trail[k]; ok {
					s = s.BorderForeground(style.Trail(age))
				}
				cells = append(cells, s.Render(k.String()))
			}
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
