package flags

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/vinser/keywalk/internal/keypad"
)

// ErrUsage marks a command line that could not be accepted.
var ErrUsage = errors.New("invalid usage")

// Flags stores the parsed command-line options
type Flags struct {
	Keypad   string
	Watch    bool
	Speed    time.Duration
	Mute     bool
	LogLevel string
	Config   string
	Input    string // input file, empty for stdin

	set map[string]bool
}

// IsSet reports whether the named long flag was given on the command line.
func (f *Flags) IsSet(name string) bool {
	return f.set[name]
}

// Parse parses command-line arguments (without the program name). Usage
// and errors are written to out. A -h request returns flag.ErrHelp.
func Parse(name string, args []string, out io.Writer) (*Flags, error) {
	var fl Flags

	fsv := NewFlagSetWithVisit(name, out)
	fsv.SetArgsUsage("[INPUT]")

	// Define flags with both short and long forms
	fsv.StringVar(&fl.Keypad, "keypad", "k", "", "Keypad: square (1) or diamond (2)")
	fsv.BoolVar(&fl.Watch, "watch", "w", false, "Replay the walk on screen before printing the result")
	fsv.DurationVar(&fl.Speed, "speed", "s", 0, "Replay step interval, e.g. 120ms")
	fsv.BoolVar(&fl.Mute, "mute", "m", false, "Mute keypad tones during replay")
	fsv.StringVar(&fl.LogLevel, "log-level", "l", "", "Log level: debug, info, warn or error")
	fsv.StringVar(&fl.Config, "config", "c", "", "Config file path")

	if err := fsv.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	fail := func(format string, a ...any) (*Flags, error) {
		msg := fmt.Sprintf(format, a...)
		fmt.Fprintln(out, msg)
		fsv.Usage()
		return nil, fmt.Errorf("%w: %s", ErrUsage, msg)
	}

	if fsv.IsCustom("keypad") {
		if _, err := keypad.Lookup(fl.Keypad); err != nil {
			return fail("Invalid keypad: %s. Use '%s'.", fl.Keypad, strings.Join(keypad.Names(), "' or '"))
		}
	}
	if fsv.IsCustom("log-level") {
		level := strings.ToLower(strings.TrimSpace(fl.LogLevel))
		if level != "debug" && level != "info" && level != "warn" && level != "warning" && level != "error" {
			return fail("Invalid log level: %s. Use 'debug', 'info', 'warn' or 'error'.", fl.LogLevel)
		}
	}
	if fsv.IsCustom("speed") && fl.Speed <= 0 {
		return fail("Invalid speed: %s. Use a positive duration.", fl.Speed)
	}

	switch rest := fsv.Args(); len(rest) {
	case 0:
	case 1:
		if rest[0] != "-" {
			fl.Input = rest[0]
		}
	default:
		return fail("Too many arguments: %s", strings.Join(rest, " "))
	}

	fl.set = make(map[string]bool)
	for _, n := range []string{"keypad", "watch", "speed", "mute", "log-level", "config"} {
		fl.set[n] = fsv.IsCustom(n)
	}
	return &fl, nil
}
