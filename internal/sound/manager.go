// Package sound plays keypad tones: a two-frequency beep for every key the
// finger lands on and a short low buzz when a move bumps into the edge.
package sound

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/vinser/keywalk/internal/keypad"
	"go.uber.org/atomic"
)

const CommonSampleRate = 44100 // Common sample rate for all generated tones

// Player is what the replay view needs from the audio system.
type Player interface {
	PlayKey(k keypad.Key) error
	PlayBump() error
	Mute()
	Unmute()
	Muted() bool
}

// Manager controls generation and playback of keypad tones.
type Manager struct {
	mu      sync.Mutex
	tones   map[keypad.Key]*beep.Buffer
	bump    *beep.Buffer
	ctrl    *beep.Ctrl
	mix     *beep.Mixer
	format  beep.Format
	muted   atomic.Bool
	vol     *effects.Volume // master volume
	root    beep.Streamer   // what the backend pulls from
	backend any

	pulseCtrl *pulseControl
}

// NewManager initializes the audio backend and creates a new Manager.
func NewManager(sampleRate beep.SampleRate) (*Manager, error) {
	mgr := newManager(sampleRate)
	bufferSize := sampleRate.N(time.Second / 20)
	if err := mgr.initBackend(sampleRate, bufferSize); err != nil {
		return nil, err
	}
	return mgr, nil
}

// newManager builds the mixing graph without touching any audio device.
func newManager(sampleRate beep.SampleRate) *Manager {
	mgr := &Manager{
		tones:  make(map[keypad.Key]*beep.Buffer),
		mix:    &beep.Mixer{},
		format: beep.Format{SampleRate: sampleRate, NumChannels: 1, Precision: 2},
	}
	mgr.vol = &effects.Volume{
		Streamer: mgr.mix,
		Base:     2,
		Volume:   0, // 0 dB
		Silent:   false,
	}
	mgr.root = &lockedStreamer{mu: &mgr.mu, s: mgr.vol}
	return mgr
}

// LoadTones renders a tone for every key of the layout plus the bump sound.
func (mgr *Manager) LoadTones(l *keypad.Layout) error {
	tones := make(map[keypad.Key]*beep.Buffer, len(l.Keys()))
	for _, k := range l.Keys() {
		low, high, _ := KeyFreqs(l, k)
		buf, err := Tone(mgr.format, ToneDuration, low, high)
		if err != nil {
			return fmt.Errorf("tone for key %q: %w", k, err)
		}
		tones[k] = buf
	}
	bump, err := Tone(mgr.format, BumpDuration, bumpFreq)
	if err != nil {
		return fmt.Errorf("bump tone: %w", err)
	}

	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	mgr.tones = tones
	mgr.bump = bump
	return nil
}

func (mgr *Manager) SetMasterVolume(db float64) {
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	if mgr.vol != nil {
		mgr.vol.Volume = db
	}
}

// play cuts the tone currently sounding and starts buf from its beginning.
func (mgr *Manager) play(buf *beep.Buffer) error {
	if mgr.muted.Load() {
		return nil
	}
	mgr.mu.Lock()
	defer mgr.mu.Unlock()

	if mgr.ctrl != nil {
		mgr.ctrl.Streamer = nil // Drain the current streamer
	}
	ctrl := &beep.Ctrl{Streamer: buf.Streamer(0, buf.Len()), Paused: false}
	mgr.mix.Add(ctrl)
	mgr.ctrl = ctrl
	return nil
}

// PlayKey sounds the tone of key k.
func (mgr *Manager) PlayKey(k keypad.Key) error {
	if mgr == nil {
		return errors.New("sound manager is nil")
	}
	mgr.mu.Lock()
	buf, ok := mgr.tones[k]
	mgr.mu.Unlock()
	if !ok {
		return fmt.Errorf("tone not loaded: %q", k)
	}
	return mgr.play(buf)
}

// PlayBump sounds the edge bump.
func (mgr *Manager) PlayBump() error {
	if mgr == nil {
		return errors.New("sound manager is nil")
	}
	mgr.mu.Lock()
	buf := mgr.bump
	mgr.mu.Unlock()
	if buf == nil {
		return errors.New("bump tone not loaded")
	}
	return mgr.play(buf)
}

// Mute disables all audio output.
func (mgr *Manager) Mute() {
	mgr.muted.Store(true)
	mgr.mu.Lock()
	defer mgr.mu.Unlock()
	if mgr.ctrl != nil {
		mgr.ctrl.Streamer = nil
	}
}

// Unmute enables audio output.
func (mgr *Manager) Unmute() {
	mgr.muted.Store(false)
}

// Muted reports whether output is disabled.
func (mgr *Manager) Muted() bool {
	return mgr.muted.Load()
}

// Close stops the backend and frees resources.
func (mgr *Manager) Close() {
	mgr.closeBackend()
}

// lockedStreamer serializes the backend's pulls with mixer changes.
type lockedStreamer struct {
	mu *sync.Mutex
	s  beep.Streamer
}

func (l *lockedStreamer) Stream(samples [][2]float64) (int, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Stream(samples)
}

func (l *lockedStreamer) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.s.Err()
}

// Nop is a Player without an audio device. It only remembers the mute switch.
type Nop struct {
	muted atomic.Bool
}

func (n *Nop) PlayKey(keypad.Key) error { return nil }
func (n *Nop) PlayBump() error          { return nil }
func (n *Nop) Mute()                    { n.muted.Store(true) }
func (n *Nop) Unmute()                  { n.muted.Store(false) }
func (n *Nop) Muted() bool              { return n.muted.Load() }
