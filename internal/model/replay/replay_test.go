package replay

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/keywalk/internal/keypad"
	"github.com/vinser/keywalk/internal/walker"
)

type fakePlayer struct {
	keys  []keypad.Key
	bumps int
	muted bool
}

func (p *fakePlayer) PlayKey(k keypad.Key) error { p.keys = append(p.keys, k); return nil }
func (p *fakePlayer) PlayBump() error            { p.bumps++; return nil }
func (p *fakePlayer) Mute()                      { p.muted = true }
func (p *fakePlayer) Unmute()                    { p.muted = false }
func (p *fakePlayer) Muted() bool                { return p.muted }

func record(t *testing.T, l *keypad.Layout, input string) ([]walker.Step, walker.Result) {
	t.Helper()
	var steps []walker.Step
	w := walker.New(l, walker.WithObserver(func(s walker.Step) {
		steps = append(steps, s)
	}))
	result, err := w.Run(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return steps, result
}

func newSquare(t *testing.T) (Model, *fakePlayer) {
	t.Helper()
	steps, result := record(t, keypad.Square, "ULL\nRRDDD\nLURDL\nUUUUD\n")
	p := &fakePlayer{}
	return New(keypad.Square, steps, result, 100*time.Millisecond, p, nil), p
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func tick(m Model) (Model, tea.Cmd) {
	return m.Update(StepMsg{gen: m.gen})
}

func TestReplayPlaysToEnd(t *testing.T) {
	m, p := newSquare(t)
	if m.Init() == nil {
		t.Fatal("Init returned no tick")
	}
	if pos, _ := m.Position(); pos != '5' {
		t.Fatalf("start at %q, want '5'", pos)
	}
	codes := []string{}
	for !m.Done() {
		var cmd tea.Cmd
		m, cmd = tick(m)
		if !m.Done() && cmd == nil {
			t.Fatalf("no tick scheduled after step %d", m.cursor)
		}
		if c := m.Code(); len(codes) == 0 || codes[len(codes)-1] != c {
			codes = append(codes, c)
		}
	}
	want := []string{"", "1", "19", "198", "1985"}
	if strings.Join(codes, ",") != strings.Join(want, ",") {
		t.Fatalf("codes %v, want %v", codes, want)
	}
	if pos, _ := m.Position(); pos != '5' {
		t.Fatalf("end at %q, want '5'", pos)
	}
	if got := len(p.keys) + p.bumps; got != 18 {
		t.Fatalf("%d sounds, want 18", got)
	}
	// U to 2, L to 1, L bumps.
	if p.keys[0] != '2' || p.keys[1] != '1' || p.bumps == 0 {
		t.Fatalf("unexpected sounds: keys %q, bumps %d", string(runeSlice(p.keys)), p.bumps)
	}
	if _, cmd := tick(m); cmd != nil {
		t.Fatal("tick scheduled after the end")
	}
}

func runeSlice(keys []keypad.Key) []rune {
	out := make([]rune, len(keys))
	for i, k := range keys {
		out[i] = rune(k)
	}
	return out
}

func TestReplayBumpShown(t *testing.T) {
	m, _ := newSquare(t)
	for range 3 {
		m, _ = tick(m)
	}
	pos, bumped := m.Position()
	if pos != '1' || !bumped {
		t.Fatalf("got %q bumped=%v, want '1' bumped", pos, bumped)
	}
}

func TestReplayIgnoresStaleTicks(t *testing.T) {
	m, _ := newSquare(t)
	stale := StepMsg{gen: m.gen}
	m, cmd := m.Update(runes("p"))
	if !m.Paused() || cmd != nil {
		t.Fatalf("paused=%v cmd=%v", m.Paused(), cmd)
	}
	m, _ = m.Update(stale)
	if m.cursor != 0 {
		t.Fatal("stale tick advanced the replay")
	}
	m, cmd = m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if m.Paused() || cmd == nil {
		t.Fatalf("resume: paused=%v cmd=%v", m.Paused(), cmd)
	}
	m, _ = m.Update(stale)
	if m.cursor != 0 {
		t.Fatal("tick from before the pause advanced the replay")
	}
	m, _ = tick(m)
	if m.cursor != 1 {
		t.Fatalf("cursor %d, want 1", m.cursor)
	}
}

func TestReplaySpeed(t *testing.T) {
	m, _ := newSquare(t)
	m, _ = m.Update(runes("+"))
	if m.Interval() != 50*time.Millisecond {
		t.Fatalf("faster: %v", m.Interval())
	}
	for range 10 {
		m, _ = m.Update(runes("+"))
	}
	if m.Interval() != MinInterval {
		t.Fatalf("fastest: %v", m.Interval())
	}
	for range 20 {
		m, _ = m.Update(runes("-"))
	}
	if m.Interval() != MaxInterval {
		t.Fatalf("slowest: %v", m.Interval())
	}
}

func TestReplayFinishAndRestart(t *testing.T) {
	m, p := newSquare(t)
	m, cmd := m.Update(runes("f"))
	if !m.Done() || cmd != nil || m.Code() != "1985" {
		t.Fatalf("finish: done=%v code=%q", m.Done(), m.Code())
	}
	if len(p.keys)+p.bumps != 0 {
		t.Fatal("finish played sounds")
	}
	m, cmd = m.Update(runes("r"))
	if m.Done() || cmd == nil || m.Code() != "" {
		t.Fatalf("restart: done=%v code=%q", m.Done(), m.Code())
	}
	if pos, _ := m.Position(); pos != '5' {
		t.Fatalf("restart at %q", pos)
	}
}

func TestReplayMessages(t *testing.T) {
	m, p := newSquare(t)
	tests := []struct {
		key  tea.KeyMsg
		want tea.Msg
	}{
		{runes("q"), QuitReplayMsg{}},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, QuitReplayMsg{}},
		{tea.KeyMsg{Type: tea.KeyEnter}, QuitReplayMsg{}},
		{runes("a"), OpenAboutMsg{}},
	}
	for _, tt := range tests {
		_, cmd := m.Update(tt.key)
		if cmd == nil {
			t.Fatalf("%s: no command", tt.key)
		}
		if got := cmd(); got != tt.want {
			t.Fatalf("%s: got %#v, want %#v", tt.key, got, tt.want)
		}
	}
	m, _ = m.Update(runes("s"))
	if !p.muted {
		t.Fatal("s did not mute")
	}
	m, _ = m.Update(runes("s"))
	if p.muted {
		t.Fatal("s did not unmute")
	}
	m, _ = m.Update(runes("?"))
	if !m.help.ShowAll {
		t.Fatal("? did not expand help")
	}
}

func TestReplayEmptyWalk(t *testing.T) {
	steps, result := record(t, keypad.Diamond, "\n\n")
	m := New(keypad.Diamond, steps, result, time.Second, nil, nil)
	if !m.Done() || m.Init() != nil {
		t.Fatal("empty walk should be done at once")
	}
	if m.Code() != "55" {
		t.Fatalf("code %q, want 55", m.Code())
	}
	if !strings.Contains(m.View(), "no moves") {
		t.Fatal("view does not say there are no moves")
	}
}

func TestReplayView(t *testing.T) {
	steps, result := record(t, keypad.Diamond, "ULL\nRRDDD\nLURDL\nUUUUD\n")
	m := New(keypad.Diamond, steps, result, time.Second, nil, nil)
	m, _ = m.Update(runes("f"))
	view := m.View()
	for _, want := range []string{"diamond keypad", "5DB3", "step 18/18", "done", "line 4"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}
