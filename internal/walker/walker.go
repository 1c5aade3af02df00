// Package walker moves a finger over a keypad layout, one line of moves at a
// time, and records the key it rests on after each line.
package walker

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/vinser/keywalk/internal/keypad"
)

// Step is one move made by the walker.
type Step struct {
	Line   int // 1-based input line, the last one walked for Walker.Step
	Column int // 1-based character within the line, 0 for Walker.Step
	From   keypad.Key
	Dir    keypad.Direction
	To     keypad.Key
}

// Option configures a Walker.
type Option func(*Walker)

// WithObserver registers fn to be called after every move.
func WithObserver(fn func(Step)) Option {
	return func(w *Walker) {
		w.observe = fn
	}
}

// Walker owns the current position on one layout. It is not safe for
// concurrent use; each line continues from where the previous one ended.
type Walker struct {
	layout  *keypad.Layout
	pos     keypad.Key
	line    int
	observe func(Step)
}

// New returns a walker resting on the layout's start key.
func New(layout *keypad.Layout, opts ...Option) *Walker {
	w := &Walker{
		layout: layout,
		pos:    layout.Start(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Pos returns the key the finger rests on.
func (w *Walker) Pos() keypad.Key {
	return w.pos
}

// move looks up one move from pos and reports it to the observer.
func (w *Walker) move(pos keypad.Key, d keypad.Direction, col int) (keypad.Key, error) {
	next, err := w.layout.Move(pos, d)
	if err != nil {
		return pos, err
	}
	if w.observe != nil {
		w.observe(Step{Line: w.line, Column: col, From: pos, Dir: d, To: next})
	}
	return next, nil
}

// Step makes a single move outside of any line.
func (w *Walker) Step(d keypad.Direction) error {
	next, err := w.move(w.pos, d, 0)
	if err != nil {
		return err
	}
	w.pos = next
	return nil
}

// WalkLine folds every move character of line through the layout and
// returns the key reached. An empty line leaves the position unchanged.
// On error the position is left where the line started.
func (w *Walker) WalkLine(line string) (keypad.Key, error) {
	w.line++
	pos := w.pos
	col := 0
	for _, c := range line {
		col++
		d, err := keypad.ParseDirection(c)
		if err != nil {
			return w.pos, &InputError{Line: w.line, Column: col, Char: c, Err: err}
		}
		pos, err = w.move(pos, d, col)
		if err != nil {
			return w.pos, &InputError{Line: w.line, Column: col, Char: c, Err: err}
		}
	}
	w.pos = pos
	return pos, nil
}

// Run walks every line of r until EOF and returns the key reached after
// each line. Surrounding whitespace, including the line terminator, is
// stripped from every line. Lines may be of any length.
func (w *Walker) Run(r io.Reader) (Result, error) {
	br := bufio.NewReader(r)
	var result Result
	for {
		line, err := br.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("read input: %w", err)
		}
		if line != "" {
			key, werr := w.WalkLine(strings.TrimSpace(line))
			if werr != nil {
				return nil, werr
			}
			result = append(result, key)
		}
		if err == io.EOF {
			return result, nil
		}
	}
}
