package sound

import (
	"errors"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/effects"
	"github.com/gopxl/beep/v2/generators"
	"github.com/vinser/keywalk/internal/keypad"
)

const (
	ToneDuration = 90 * time.Millisecond
	BumpDuration = 40 * time.Millisecond
	bumpFreq     = 180
)

// Row and column frequencies of the touch-tone grid, extended by one step
// each so the five-wide diamond still gets distinct pairs.
var (
	rowFreqs = []float64{697, 770, 852, 941, 1040}
	colFreqs = []float64{1209, 1336, 1477, 1633, 1805}
)

// KeyFreqs returns the low and high frequencies sounded for k, picked by
// the key's row and column on the layout drawing.
func KeyFreqs(l *keypad.Layout, k keypad.Key) (low, high float64, ok bool) {
	x, y, ok := l.Cell(k)
	if !ok {
		return 0, 0, false
	}
	return rowFreqs[y%len(rowFreqs)], colFreqs[x%len(colFreqs)], true
}

// Tone renders the sum of the given sine frequencies into a buffer of
// duration d. Each frequency contributes an equal share of full scale.
func Tone(format beep.Format, d time.Duration, freqs ...float64) (*beep.Buffer, error) {
	if len(freqs) == 0 {
		return nil, errors.New("no frequencies")
	}
	streamers := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		s, err := generators.SineTone(format.SampleRate, f)
		if err != nil {
			return nil, err
		}
		streamers = append(streamers, s)
	}
	mixed := &effects.Gain{
		Streamer: beep.Mix(streamers...),
		Gain:     1/float64(len(freqs)) - 1, // output = (1 + Gain) * input
	}
	buf := beep.NewBuffer(format)
	buf.Append(beep.Take(format.SampleRate.N(d), mixed))
	return buf, nil
}
