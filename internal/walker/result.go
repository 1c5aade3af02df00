package walker

import (
	"fmt"
	"strings"

	"github.com/vinser/keywalk/internal/keypad"
)

// InputError reports a move character the layout cannot follow.
type InputError struct {
	Line   int
	Column int
	Char   rune
	Err    error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("line %d, column %d: %v", e.Line, e.Column, e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Result is the key reached after each input line, in input order.
type Result []keypad.Key

// Format prints the result as a bracketed list. Numeric keys print bare,
// as in [1, 9, 8, 5]; symbolic keys print quoted, as in ['5', 'D', 'B', '3'].
func (r Result) Format(numeric bool) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, k := range r {
		if i > 0 {
			b.WriteString(", ")
		}
		if numeric {
			b.WriteRune(rune(k))
		} else {
			b.WriteByte('\'')
			b.WriteRune(rune(k))
			b.WriteByte('\'')
		}
	}
	b.WriteByte(']')
	return b.String()
}

// Code returns the keys run together, the way they would be typed.
func (r Result) Code() string {
	var b strings.Builder
	for _, k := range r {
		b.WriteRune(rune(k))
	}
	return b.String()
}
