// Package keypad holds the fixed keypad layouts: for every key, where the
// finger ends up after one move in each direction. Moves that would leave
// the keypad are encoded as self-loops, so a complete layout never fails a
// lookup for a valid direction.
package keypad

import (
	"fmt"
	"strings"
)

// Transitions maps a key and a direction to the key reached.
type Transitions map[Key]map[Direction]Key

// Layout is an immutable keypad: its drawing, its start key and its
// transition table.
type Layout struct {
	name    string
	start   Key
	numeric bool
	rows    []string
	keys    []Key
	table   Transitions
}

// NewLayout builds a layout from its drawing rows (a space marks a missing
// button) and a transition table, and validates it. The table is copied.
func NewLayout(name string, start Key, numeric bool, rows []string, table Transitions) (*Layout, error) {
	l := &Layout{
		name:    name,
		start:   start,
		numeric: numeric,
		rows:    append([]string(nil), rows...),
		table:   make(Transitions, len(table)),
	}
	for k, moves := range table {
		next := make(map[Direction]Key, len(moves))
		for d, to := range moves {
			next[d] = to
		}
		l.table[k] = next
	}
	for _, row := range rows {
		for _, c := range row {
			if c != ' ' {
				l.keys = append(l.keys, Key(c))
			}
		}
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return l, nil
}

func mustLayout(name string, start Key, numeric bool, rows []string, table Transitions) *Layout {
	l, err := NewLayout(name, start, numeric, rows, table)
	if err != nil {
		// Built-in layouts are hard-coded; a failure here is a bug.
		panic("keypad: " + err.Error())
	}
	return l
}

// Validate checks that the drawing and the table describe the same keys,
// that every key defines all four directions to another key of the layout,
// and that the start key exists.
func (l *Layout) Validate() error {
	if len(l.keys) == 0 {
		return fmt.Errorf("%s: no keys", l.name)
	}
	if len(l.keys) != len(l.table) {
		return fmt.Errorf("%s: drawing has %d keys, table has %d", l.name, len(l.keys), len(l.table))
	}
	for _, k := range l.keys {
		moves, ok := l.table[k]
		if !ok {
			return fmt.Errorf("%s: %w %q missing from table", l.name, ErrUnknownKey, k)
		}
		for _, d := range Directions {
			to, ok := moves[d]
			if !ok {
				return fmt.Errorf("%s: key %q: no move %s", l.name, k, d)
			}
			if !l.Has(to) {
				return fmt.Errorf("%s: key %q: move %s leads to %w %q", l.name, k, d, ErrUnknownKey, to)
			}
		}
	}
	if !l.Has(l.start) {
		return fmt.Errorf("%s: start %w %q", l.name, ErrUnknownKey, l.start)
	}
	return nil
}

// Name returns the layout name used on the command line.
func (l *Layout) Name() string {
	return l.name
}

// Start returns the key the finger rests on before the first move.
func (l *Layout) Start() Key {
	return l.start
}

// Numeric reports whether the keys print as plain numbers.
func (l *Layout) Numeric() bool {
	return l.numeric
}

// Keys returns the keys in reading order of the drawing.
func (l *Layout) Keys() []Key {
	return append([]Key(nil), l.keys...)
}

// Rows returns the drawing of the keypad, one string per row.
func (l *Layout) Rows() []string {
	return append([]string(nil), l.rows...)
}

// Has reports whether k is a key of the layout.
func (l *Layout) Has(k Key) bool {
	_, ok := l.table[k]
	return ok
}

// Move returns the key reached from k after one move in direction d.
func (l *Layout) Move(k Key, d Direction) (Key, error) {
	moves, ok := l.table[k]
	if !ok {
		return k, fmt.Errorf("%w %q", ErrUnknownKey, k)
	}
	to, ok := moves[d]
	if !ok {
		return k, fmt.Errorf("%w %q at key %q", ErrInvalidDirection, d.String(), k)
	}
	return to, nil
}

// Cell returns the drawing coordinates of k: x is the column, y the row.
func (l *Layout) Cell(k Key) (x, y int, ok bool) {
	for row, keys := range l.rows {
		if col := strings.IndexRune(keys, rune(k)); col >= 0 {
			return col, row, true
		}
	}
	return 0, 0, false
}

// Lookup returns the built-in layout for a name: "square" or "1",
// "diamond" or "2".
func Lookup(name string) (*Layout, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case Square.name, "1":
		return Square, nil
	case Diamond.name, "2":
		return Diamond, nil
	}
	return nil, fmt.Errorf("%w %q: use 'square' or 'diamond'", ErrUnknownLayout, name)
}

// Names lists the built-in layout names.
func Names() []string {
	return []string{Square.name, Diamond.name}
}
