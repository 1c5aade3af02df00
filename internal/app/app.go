package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vinser/keywalk/internal/config"
	"github.com/vinser/keywalk/internal/flags"
	"github.com/vinser/keywalk/internal/keypad"
	"github.com/vinser/keywalk/internal/logging"
	"github.com/vinser/keywalk/internal/model/about"
	"github.com/vinser/keywalk/internal/model/replay"
	"github.com/vinser/keywalk/internal/sound"
	"github.com/vinser/keywalk/internal/walker"
)

const appName = "keywalk"

// Run walks the moves read from the INPUT argument (stdin when absent) and
// prints the keys reached after every line to stdout. Usage, logs and the
// replay view go to stderr.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fl, err := flags.Parse(appName, args, stderr)
	if err != nil {
		return err
	}

	// A -log-level flag applies from the start; otherwise the config file
	// decides once it is read.
	logger, level := logging.New(stderr, slog.LevelWarn)
	if fl.IsSet("log-level") {
		level.Set(logging.ParseLevel(fl.LogLevel))
	}

	cfg, cfgPath, err := loadConfig(fl, logger)
	if err != nil {
		return err
	}
	if !fl.IsSet("log-level") {
		level.Set(logging.ParseLevel(cfg.LogLevel()))
	}
	logger.Info("config loaded", "path", cfgPath)

	keypadName := cfg.KeypadName()
	if fl.IsSet("keypad") {
		keypadName = fl.Keypad
	}
	layout, err := keypad.Lookup(keypadName)
	if err != nil {
		return err
	}
	logger.Info("keypad selected", "name", layout.Name(), "start", layout.Start().String())

	in := stdin
	if fl.Input != "" {
		f, err := os.Open(fl.Input)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}

	var steps []walker.Step
	w := walker.New(layout, walker.WithObserver(func(s walker.Step) {
		logger.Debug("step", "line", s.Line, "column", s.Column, "from", s.From.String(), "dir", s.Dir.String(), "to", s.To.String())
		if fl.Watch {
			steps = append(steps, s)
		}
	}))
	result, err := w.Run(in)
	if err != nil {
		return err
	}
	for i, k := range result {
		logger.Info("line done", "line", i+1, "key", k.String())
	}

	if fl.Watch {
		interval, mute := replaySettings(cfg, fl)
		if err := watch(layout, steps, result, interval, mute, cfg.Volume(), logger, stderr); err != nil {
			return err
		}
	}

	fmt.Fprintln(stdout, result.Format(layout.Numeric()))
	return nil
}

// loadConfig reads the file named by -config, or the default config file.
// Only the default file may be missing.
func loadConfig(fl *flags.Flags, logger *slog.Logger) (config.Config, string, error) {
	path := fl.Config
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return config.Config{}, path, fmt.Errorf("config: %w", err)
		}
	} else {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Debug("no user config dir, using defaults", "err", err)
			return config.Default(), "", nil
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, path, err
	}
	return cfg, path, nil
}

// replaySettings resolves the step interval and mute switch. A flag given
// on the command line wins over the config file.
func replaySettings(cfg config.Config, fl *flags.Flags) (time.Duration, bool) {
	interval := cfg.StepInterval()
	if fl.IsSet("speed") {
		interval = fl.Speed
	}
	mute := cfg.Mute()
	if fl.IsSet("mute") {
		mute = fl.Mute
	}
	return interval, mute
}

// newPlayer opens the audio device. Without one the replay runs silent.
func newPlayer(layout *keypad.Layout, mute bool, volume float64, logger *slog.Logger) (sound.Player, func()) {
	mgr, err := sound.NewManager(sound.CommonSampleRate)
	if err != nil {
		logger.Warn("sound disabled", "err", err)
		p := &sound.Nop{}
		if mute {
			p.Mute()
		}
		return p, func() {}
	}
	if err := mgr.LoadTones(layout); err != nil {
		logger.Warn("sound disabled", "err", err)
		mgr.Close()
		p := &sound.Nop{}
		if mute {
			p.Mute()
		}
		return p, func() {}
	}
	mgr.SetMasterVolume(volume)
	if mute {
		mgr.Mute()
	}
	return mgr, mgr.Close
}

// watch replays the recorded walk in the terminal until the user quits.
func watch(layout *keypad.Layout, steps []walker.Step, result walker.Result, interval time.Duration, mute bool, volume float64, logger *slog.Logger, out io.Writer) error {
	player, closePlayer := newPlayer(layout, mute, volume, logger)
	defer closePlayer()

	m := New(replay.New(layout, steps, result, interval, player, logger))
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(out), tea.WithInputTTY())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("replay: %w", err)
	}
	return nil
}

type status uint

const (
	statusReplay status = iota
	statusAbout
)

const (
	aboutWidth  = 60
	aboutHeight = 20
)

// Model switches between the replay view and the about page.
type Model struct {
	status status
	// models
	replay replay.Model
	about  about.Model
	// terminal size cache
	termWidth  int
	termHeight int
}

func New(r replay.Model) Model {
	return Model{
		status: statusReplay,
		replay: r,
	}
}

func (m Model) Init() tea.Cmd {
	return m.replay.Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		// Always remember the latest terminal size
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.replay.SetSize(msg.Width, msg.Height)
		if m.status == statusAbout {
			m.about.SetSize(msg.Width, msg.Height)
		}
		return m, tea.ClearScreen
	case replay.StepMsg:
		// The replay keeps running behind the about page.
		m.replay, cmd = m.replay.Update(msg)
		return m, cmd
	}

	switch m.status {
	case statusReplay:
		switch msg.(type) {
		case replay.QuitReplayMsg:
			return m, tea.Quit
		case replay.OpenAboutMsg:
			a, err := about.New(m.replay.Layout(), aboutWidth, aboutHeight)
			if err != nil {
				return m, nil
			}
			m.about = a
			if m.termHeight > 0 {
				m.about.SetSize(m.termWidth, m.termHeight)
			}
			m.status = statusAbout
			return m, tea.ClearScreen
		default:
			m.replay, cmd = m.replay.Update(msg)
		}
	case statusAbout:
		switch msg := msg.(type) {
		case about.CloseAboutMsg:
			m.status = statusReplay
			return m, tea.ClearScreen
		case tea.KeyMsg:
			if msg.String() == "q" {
				return m, tea.Quit
			}
			m.about, cmd = m.about.Update(msg)
		default:
			m.about, cmd = m.about.Update(msg)
		}
	}
	return m, cmd
}

func (m Model) View() string {
	switch m.status {
	case statusAbout:
		return m.about.View()
	default:
		return m.replay.View()
	}
}
