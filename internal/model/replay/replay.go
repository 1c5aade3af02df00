// Package replay animates a finished walk: the finger moves over the keypad
// one recorded step per tick while the code typed so far grows underneath.
package replay

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vinser/keywalk/internal/keypad"
	"github.com/vinser/keywalk/internal/logging"
	"github.com/vinser/keywalk/internal/render"
	"github.com/vinser/keywalk/internal/sound"
	"github.com/vinser/keywalk/internal/style"
	"github.com/vinser/keywalk/internal/walker"
)

const (
	MinInterval = 10 * time.Millisecond
	MaxInterval = 2 * time.Second
	trailLength = 4 // keys tinted behind the finger
	minWidth    = 40
)

// StepMsg advances the replay by one step. Ticks from an earlier
// generation are dropped, so pausing or changing speed never doubles up.
type StepMsg struct {
	gen int
}

func tickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return StepMsg{gen: gen}
	})
}

// QuitReplayMsg is sent when the user leaves the replay.
type QuitReplayMsg struct{}

func quitReplayCmd() tea.Cmd {
	return func() tea.Msg {
		return QuitReplayMsg{}
	}
}

// OpenAboutMsg asks the parent model to show the about page.
type OpenAboutMsg struct{}

func openAboutCmd() tea.Cmd {
	return func() tea.Msg {
		return OpenAboutMsg{}
	}
}

type Model struct {
	layout   *keypad.Layout
	steps    []walker.Step
	result   walker.Result
	cursor   int // number of steps already played
	interval time.Duration
	paused   bool
	gen      int

	keys   keyMap
	help   help.Model
	player sound.Player
	log    *slog.Logger

	width      int
	height     int
	termWidth  int
	termHeight int
}

// New returns a replay of steps on layout. result holds the key reached
// after every input line of the same walk.
func New(layout *keypad.Layout, steps []walker.Step, result walker.Result, interval time.Duration, player sound.Player, logger *slog.Logger) Model {
	if player == nil {
		player = &sound.Nop{}
	}
	if logger == nil {
		logger = logging.Nop()
	}
	m := Model{
		layout:   layout,
		steps:    steps,
		result:   result,
		interval: clampInterval(interval),
		keys:     newKeyMap(),
		help:     help.New(),
		player:   player,
		log:      logger,
	}
	pad := render.Keypad(layout, layout.Start(), false, nil)
	m.width = max(lipgloss.Width(pad), minWidth)
	// Keypad, blank line, code, moves, status, title, top pattern, footer.
	m.height = lipgloss.Height(pad) + 8
	return m
}

func clampInterval(d time.Duration) time.Duration {
	switch {
	case d < MinInterval:
		return MinInterval
	case d > MaxInterval:
		return MaxInterval
	}
	return d
}

func (m *Model) SetSize(width, height int) {
	m.termWidth = width
	m.termHeight = height
	m.help.Width = width
}

func (m Model) Init() tea.Cmd {
	if m.Done() {
		return nil
	}
	return tickCmd(m.interval, m.gen)
}

// Layout returns the keypad being replayed.
func (m Model) Layout() *keypad.Layout {
	return m.layout
}

// Done reports whether every step has been played.
func (m Model) Done() bool {
	return m.cursor >= len(m.steps)
}

// Paused reports whether the replay is on hold.
func (m Model) Paused() bool {
	return m.paused
}

// Interval returns the current time between steps.
func (m Model) Interval() time.Duration {
	return m.interval
}

// Position returns the key under the finger and whether the last move
// bumped into the edge of the keypad.
func (m Model) Position() (keypad.Key, bool) {
	if m.cursor == 0 {
		return m.layout.Start(), false
	}
	last := m.steps[m.cursor-1]
	return last.To, last.From == last.To
}

// Code returns the keys of the lines finished so far.
func (m Model) Code() string {
	return m.result[:m.completed()].Code()
}

// completed counts input lines whose moves have all been played.
func (m Model) completed() int {
	if m.Done() {
		return len(m.result)
	}
	return m.steps[m.cursor].Line - 1
}

func (m *Model) advance() {
	s := m.steps[m.cursor]
	m.cursor++
	m.log.Debug("replay step", "line", s.Line, "column", s.Column, "from", s.From.String(), "dir", s.Dir.String(), "to", s.To.String())
	var err error
	if s.From == s.To {
		err = m.player.PlayBump()
	} else {
		err = m.player.PlayKey(s.To)
	}
	if err != nil {
		m.log.Warn("replay sound", "err", err)
	}
}

// reschedule starts a new tick generation so that pending ticks are ignored.
func (m *Model) reschedule() tea.Cmd {
	m.gen++
	if m.paused || m.Done() {
		return nil
	}
	return tickCmd(m.interval, m.gen)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StepMsg:
		if msg.gen != m.gen || m.paused || m.Done() {
			return m, nil
		}
		m.advance()
		if m.Done() {
			return m, nil
		}
		return m, tickCmd(m.interval, m.gen)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, quitReplayCmd()
		case key.Matches(msg, m.keys.pause):
			if m.Done() {
				return m, nil
			}
			m.paused = !m.paused
			return m, m.reschedule()
		case key.Matches(msg, m.keys.faster):
			m.interval = clampInterval(m.interval / 2)
			return m, m.reschedule()
		case key.Matches(msg, m.keys.slower):
			m.interval = clampInterval(m.interval * 2)
			return m, m.reschedule()
		case key.Matches(msg, m.keys.finish):
			m.cursor = len(m.steps)
			return m, m.reschedule()
		case key.Matches(msg, m.keys.restart):
			m.cursor = 0
			m.paused = false
			return m, m.reschedule()
		case key.Matches(msg, m.keys.mute):
			if m.player.Muted() {
				m.player.Unmute()
			} else {
				m.player.Mute()
			}
			return m, nil
		case key.Matches(msg, m.keys.help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.about):
			return m, openAboutCmd()
		}
	}
	return m, nil
}

func (m Model) trail() map[keypad.Key]int {
	trail := make(map[keypad.Key]int, trailLength)
	pos, _ := m.Position()
	for i, age := m.cursor-1, 0; i >= 0 && age < trailLength; i, age = i-1, age+1 {
		k := m.steps[i].From
		if _, seen := trail[k]; seen || k == pos {
			continue
		}
		trail[k] = age
	}
	return trail
}

// moves renders the moves of the line being played with the next move
// highlighted.
func (m Model) moves() string {
	if len(m.steps) == 0 {
		return style.Moves.Render("no moves")
	}
	idx := min(m.cursor, len(m.steps)-1)
	line := m.steps[idx].Line
	var b strings.Builder
	for i, s := range m.steps {
		if s.Line != line {
			continue
		}
		switch {
		case i < m.cursor:
			b.WriteString(style.Moves.Render(s.Dir.String()))
		case i == m.cursor:
			b.WriteString(style.MoveNext.Render(s.Dir.String()))
		default:
			b.WriteString(style.Footer.Render(s.Dir.String()))
		}
	}
	return fmt.Sprintf("line %d: %s", line, b.String())
}

func (m Model) status() string {
	parts := []string{fmt.Sprintf("step %d/%d", m.cursor, len(m.steps)), m.interval.String()}
	switch {
	case m.Done():
		parts = append(parts, "done")
	case m.paused:
		parts = append(parts, "paused")
	}
	if m.player.Muted() {
		parts = append(parts, "muted")
	}
	return style.Status.Render(strings.Join(parts, "  "))
}

func (m Model) View() string {
	pos, bumped := m.Position()
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		render.Keypad(m.layout, pos, bumped, m.trail()),
		"",
		"Code: "+style.Code.Render(m.Code()),
		m.moves(),
		m.status(),
	)
	content = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, content)
	title := fmt.Sprintf("keywalk: %s keypad", m.layout.Name())
	return render.Page(title, content, m.help.View(m.keys), m.width, m.height, m.termWidth, m.termHeight)
}
