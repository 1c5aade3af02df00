package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

const (
	appDirName     = "keywalk"
	configFileName = "config.toml"

	defaultKeypad   = "square"
	defaultLogLevel = "warn"
	defaultStepMS   = 150
	minStepMS       = 10
)

type Config struct {
	Keypad  string        `toml:"keypad"`
	Logging LoggingConfig `toml:"logging"`
	Replay  ReplayConfig  `toml:"replay"`
	Sound   SoundConfig   `toml:"sound"`
}

type LoggingConfig struct {
	Level string `toml:"level"`
}

type ReplayConfig struct {
	StepMS int `toml:"step_ms"`
}

type SoundConfig struct {
	Mute   bool    `toml:"mute"`
	Volume float64 `toml:"volume"` // dB, 0 is unchanged
}

func Default() Config {
	return Config{
		Keypad: defaultKeypad,
		Logging: LoggingConfig{
			Level: defaultLogLevel,
		},
		Replay: ReplayConfig{
			StepMS: defaultStepMS,
		},
	}
}

// DefaultPath returns the config file location inside the user config directory.
func DefaultPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, appDirName, configFileName), nil
}

// Load reads the config at path on top of the defaults. A missing or empty
// file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := readTOML(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func readTOML(path string, out any) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("config path is required")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil
	}
	if err := toml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("config %s: %w", path, err)
	}
	return nil
}

func (c Config) KeypadName() string {
	name := strings.ToLower(strings.TrimSpace(c.Keypad))
	if name == "" {
		return defaultKeypad
	}
	return name
}

func (c Config) LogLevel() string {
	level := strings.TrimSpace(c.Logging.Level)
	if level == "" {
		return defaultLogLevel
	}
	return level
}

// StepInterval is the delay between two moves in the replay view.
func (c Config) StepInterval() time.Duration {
	ms := c.Replay.StepMS
	if ms <= 0 {
		ms = defaultStepMS
	}
	if ms < minStepMS {
		ms = minStepMS
	}
	return time.Duration(ms) * time.Millisecond
}

func (c Config) Mute() bool {
	return c.Sound.Mute
}

func (c Config) Volume() float64 {
	return c.Sound.Volume
}
