package about

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/keywalk/internal/embeddata"
	"github.com/vinser/keywalk/internal/keypad"
	"github.com/vinser/keywalk/internal/render"
)

type Model struct {
	width       int
	height      int
	startHeight int
	termWidth   int
	termHeight  int

	layout   *keypad.Layout
	viewport viewport.Model
}

type CloseAboutMsg struct{}

func closeAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return CloseAboutMsg{}
	}
}

// New renders the help page with a section on the keypad in use.
func New(layout *keypad.Layout, width, height int) (Model, error) {
	if width < lipgloss.Width(footer) {
		width = lipgloss.Width(footer)
	}
	bytes, err := embeddata.ReadAboutMD()
	if err != nil {
		return Model{}, err
	}

	vp := viewport.New(width, height)
	vp.Style = lipgloss.NewStyle()
	const glamourGutter = 2
	glam := glamContent(withKeypad(string(bytes), layout), width, vp.Style.GetHorizontalFrameSize(), glamourGutter)
	vp.SetContent(glam)

	return Model{
		width:       width,
		height:      height,
		startHeight: height,

		layout:   layout,
		viewport: vp,
	}, nil
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
	if m.startHeight > m.termHeight-5 {
		m.height = m.termHeight
		m.viewport.Height = m.termHeight - 5
	} else {
		m.height = m.startHeight
		m.viewport.Height = m.startHeight
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "a", "backspace":
			return m, closeAboutCmd()
		}
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

const footer = "↑ ↓ scroll, esc back, q quit"

func (m Model) View() string {
	title := fmt.Sprintf("About keywalk (%s keypad)", m.layout.Name())
	return render.Page(title, m.viewport.View(), footer, m.width, m.height, m.termWidth, m.termHeight)
}

func glamContent(content string, width, frame, gutter int) string {
	renderWidth := width - frame - gutter
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("pink"),
		glamour.WithWordWrap(renderWidth),
	)
	if err != nil {
		return content //noop
	}
	str, err := r.Render(content)
	if err != nil {
		return content //noop
	}
	return str
}

// withKeypad inserts a section describing l ahead of the keypad list.
func withKeypad(md string, l *keypad.Layout) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## In use: %s\n\n", l.Name())
	output := "quoted characters, as in ['5', 'D']"
	if l.Numeric() {
		output = "bare numbers, as in [1, 9]"
	}
	fmt.Fprintf(&b, "The finger starts on **%s**. %d keys, printed as %s.\n\n", l.Start(), len(l.Keys()), output)
	b.WriteString("```\n")
	for _, row := range l.Rows() {
		cells := make([]string, 0, len(row))
		for _, c := range row {
			cells = append(cells, string(c))
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteByte('\n')
	}
	b.WriteString("```\n\n")

	const anchor = "## Keypads"
	if !strings.Contains(md, anchor) {
		return md + "\n" + b.String()
	}
	return strings.Replace(md, anchor, b.String()+anchor, 1)
}
