package keypad

// Square is the 3x3 numeric keypad.
var Square = mustLayout("square", '5', true,
	[]string{
		"123",
		"456",
		"789",
	},
	Transitions{
		'1': {Up: '1', Down: '4', Left: '1', Right: '2'},
		'2': {Up: '2', Down: '5', Left: '1', Right: '3'},
		'3': {Up: '3', Down: '6', Left: '2', Right: '3'},
		'4': {Up: '1', Down: '7', Left: '4', Right: '5'},
		'5': {Up: '2', Down: '8', Left: '4', Right: '6'},
		'6': {Up: '3', Down: '9', Left: '5', Right: '6'},
		'7': {Up: '4', Down: '7', Left: '7', Right: '8'},
		'8': {Up: '5', Down: '8', Left: '7', Right: '9'},
		'9': {Up: '6', Down: '9', Left: '8', Right: '9'},
	},
)

// Diamond is the 13-key keypad with rows of 1, 3, 5, 3 and 1 buttons.
var Diamond = mustLayout("diamond", '5', false,
	[]string{
		"  1  ",
		" 234 ",
		"56789",
		" ABC ",
		"  D  ",
	},
	Transitions{
		'1': {Up: '1', Down: '3', Left: '1', Right: '1'},
		'2': {Up: '2', Down: '6', Left: '2', Right: '3'},
		'3': {Up: '1', Down: '7', Left: '2', Right: '4'},
		'4': {Up: '4', Down: '8', Left: '3', Right: '4'},
		'5': {Up: '5', Down: '5', Left: '5', Right: '6'},
		'6': {Up: '2', Down: 'A', Left: '5', Right: '7'},
		'7': {Up: '3', Down: 'B', Left: '6', Right: '8'},
		'8': {Up: '4', Down: 'C', Left: '7', Right: '9'},
		'9': {Up: '9', Down: '9', Left: '8', Right: '9'},
		'A': {Up: '6', Down: 'A', Left: 'A', Right: 'B'},
		'B': {Up: '7', Down: 'D', Left: 'A', Right: 'C'},
		'C': {Up: '8', Down: 'C', Left: 'B', Right: 'C'},
		'D': {Up: 'B', Down: 'D', Left: 'D', Right: 'D'},
	},
)
