package engine

// Kick offsets are in logical units with y pointing up. Each row lists the
// five candidates for one transition, tried in order.
type kickTable [4][2][5]Offset

// jlstzKicks is shared by J, L, S, T and Z.
var jlstzKicks = kickTable{
	0: {
		Clockwise:        {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // 0 -> 1
		CounterClockwise: {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},    // 0 -> 3
	},
	1: {
		Clockwise:        {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}}, // 1 -> 2
		CounterClockwise: {{0, 0}, {1, 0}, {1, -1}, {0, 2}, {1, 2}}, // 1 -> 0
	},
	2: {
		Clockwise:        {{0, 0}, {1, 0}, {1, 1}, {0, -2}, {1, -2}},    // 2 -> 3
		CounterClockwise: {{0, 0}, {-1, 0}, {-1, 1}, {0, -2}, {-1, -2}}, // 2 -> 1
	},
	3: {
		Clockwise:        {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}, // 3 -> 0
		CounterClockwise: {{0, 0}, {-1, 0}, {-1, -1}, {0, 2}, {-1, 2}}, // 3 -> 2
	},
}

var iKicks = kickTable{
	0: {
		Clockwise:        {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}}, // 0 -> 1
		CounterClockwise: {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}}, // 0 -> 3
	},
	1: {
		Clockwise:        {{0, 0}, {-1, 0}, {2, 0}, {-1, 2}, {2, -1}}, // 1 -> 2
		CounterClockwise: {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}}, // 1 -> 0
	},
	2: {
		Clockwise:        {{0, 0}, {2, 0}, {-1, 0}, {2, 1}, {-1, -2}}, // 2 -> 3
		CounterClockwise: {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}}, // 2 -> 1
	},
	3: {
		Clockwise:        {{0, 0}, {1, 0}, {-2, 0}, {1, -2}, {-2, 1}}, // 3 -> 0
		CounterClockwise: {{0, 0}, {-2, 0}, {1, 0}, {-2, -1}, {1, 2}}, // 3 -> 2
	},
}

// oKicks: the O piece maps onto itself, so only the zero offset is tried.
var oKicks = []Offset{{0, 0}}

// KickOffsets returns the ordered wall-kick candidates for rotating shape out
// of state in direction dir. state must be in 0..3.
func KickOffsets(shape Shape, state int, dir Direction) []Offset {
	if state < 0 || state > 3 {
		return nil
	}
	if dir != Clockwise && dir != CounterClockwise {
		return nil
	}
	switch ShapeFromIndex(int(shape)) {
	case ShapeO:
		return oKicks
	case ShapeI:
		return iKicks[state][dir][:]
	default:
		return jlstzKicks[state][dir][:]
	}
}
