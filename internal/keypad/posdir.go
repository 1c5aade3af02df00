package keypad

import "fmt"

// Key is a symbol printed on a keypad button.
type Key rune

func (k Key) String() string {
	return string(k)
}

// Direction represents finger movement direction.
type Direction int

const (
	No Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists the four moves every layout key must define.
var Directions = [...]Direction{Up, Down, Left, Right}

// ParseDirection maps a move character (U, D, L or R) to its direction.
func ParseDirection(c rune) (Direction, error) {
	switch c {
	case 'U':
		return Up, nil
	case 'D':
		return Down, nil
	case 'L':
		return Left, nil
	case 'R':
		return Right, nil
	}
	return No, fmt.Errorf("%w %q", ErrInvalidDirection, c)
}

// String returns the move character of the direction.
func (d Direction) String() string {
	switch d {
	case Up:
		return "U"
	case Down:
		return "D"
	case Left:
		return "L"
	case Right:
		return "R"
	default:
		return ""
	}
}
