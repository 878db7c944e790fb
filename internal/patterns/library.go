package patterns

func init() {
	Register("block", Pattern{{0, 0}, {1, 0}, {0, 1}, {1, 1}})
	Register("beehive", Pattern{{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {2, 2}})
	Register("loaf", Pattern{{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {3, 2}, {2, 3}})
	Register("boat", Pattern{{0, 0}, {1, 0}, {0, 1}, {2, 1}, {1, 2}})
	Register("tub", Pattern{{1, 0}, {0, 1}, {2, 1}, {1, 2}})

	Register("blinker", Pattern{{0, 0}, {0, 1}, {0, 2}})
	Register("toad", Pattern{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}})
	Register("beacon", Pattern{{0, 0}, {1, 0}, {0, 1}, {2, 2}, {3, 2}, {3, 3}})
	Register("pulsar", pulsar())
	Register("pentadecathlon", pentadecathlon())
	Register("clock", Pattern{{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {2, 3}})
	Register("figure-eight", Pattern{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {1, 1}, {2, 1},
		{0, 2}, {1, 2}, {2, 2},
		{3, 3}, {4, 3}, {5, 3},
		{3, 4}, {4, 4}, {5, 4},
		{3, 5}, {4, 5}, {5, 5},
	})
	Register("galaxy", Pattern{
		{0, 0}, {1, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 0}, {7, 0}, {8, 0},
		{0, 1}, {1, 1}, {3, 1}, {4, 1}, {5, 1}, {6, 1}, {7, 1}, {8, 1},
		{0, 3}, {1, 3}, {7, 3}, {8, 3},
		{0, 4}, {1, 4}, {7, 4}, {8, 4},
		{0, 5}, {1, 5}, {7, 5}, {8, 5},
		{0, 6}, {1, 6}, {7, 6}, {8, 6},
		{0, 7}, {1, 7}, {2, 7}, {3, 7}, {4, 7}, {5, 7}, {7, 7}, {8, 7},
		{0, 8}, {1, 8}, {2, 8}, {3, 8}, {4, 8}, {5, 8}, {7, 8}, {8, 8},
	})
	Register("butterfly", Pattern{
		{0, 0}, {1, 0}, {2, 0},
		{0, 1}, {2, 1},
		{1, 2},
		{1, 3},
		{0, 4}, {2, 4},
		{0, 5}, {1, 5}, {2, 5},
	})

	Register("glider", Pattern{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}})
	Register("lwss", Pattern{
		{1, 0}, {2, 0}, {3, 0}, {4, 0},
		{0, 1}, {4, 1},
		{4, 2},
		{0, 3}, {3, 3},
	})
	Register("mwss", Pattern{
		{1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0},
		{0, 1}, {5, 1},
		{5, 2},
		{0, 3}, {4, 3},
	})
	Register("hwss", Pattern{
		{1, 0}, {2, 0}, {3, 0}, {4, 0}, {5, 0}, {6, 0},
		{0, 1}, {6, 1},
		{6, 2},
		{0, 3}, {5, 3},
	})

	Register("r-pentomino", Pattern{{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}})
	Register("acorn", Pattern{{1, 0}, {3, 1}, {0, 2}, {1, 2}, {4, 2}, {5, 2}, {6, 2}})
	Register("pi-heptomino", Pattern{{0, 0}, {1, 0}, {2, 0}, {0, 1}, {1, 2}})
	Register("thunderbird", Pattern{{1, 0}, {2, 0}, {3, 0}, {1, 2}, {2, 2}, {3, 2}})
	Register("gosper-glider-gun", Pattern{
		{0, 4}, {0, 5}, {1, 4}, {1, 5},
		{10, 4}, {10, 5}, {10, 6}, {11, 3}, {11, 7}, {12, 2}, {12, 8},
		{13, 2}, {13, 8}, {14, 5}, {15, 3}, {15, 7}, {16, 4}, {16, 5}, {16, 6},
		{17, 5}, {20, 2}, {20, 3}, {20, 4}, {21, 2}, {21, 3}, {21, 4}, {22, 1}, {22, 5},
		{24, 0}, {24, 1}, {24, 5}, {24, 6},
		{34, 2}, {34, 3}, {35, 2}, {35, 3},
	})
}

// pulsar mirrors one 12-cell quadrant into the four corners of a 13×13 box.
func pulsar() Pattern {
	quadrant := [][2]int{
		{2, 0}, {3, 0}, {4, 0},
		{0, 2}, {0, 3}, {0, 4},
		{5, 2}, {5, 3}, {5, 4},
		{2, 5}, {3, 5}, {4, 5},
	}
	var p Pattern
	for _, off := range [][2]int{{0, 0}, {6, 0}, {0, 6}, {6, 6}} {
		for _, c := range quadrant {
			p = append(p, [2]int{off[0] + c[0], off[1] + c[1]})
		}
	}
	return p
}

func pentadecathlon() Pattern {
	p := Pattern{{0, 2}, {2, 2}, {0, 7}, {2, 7}}
	for i := 0; i < 10; i++ {
		p = append(p, [2]int{1, i})
	}
	return p
}

// Showcase is the default 100×100 arrangement: still lifes, oscillators,
// spaceships, methuselahs and a glider gun spread across the board.
var Showcase = Layout{
	{"block", 5, 5},
	{"beehive", 15, 5},
	{"loaf", 25, 5},
	{"boat", 35, 5},
	{"blinker", 55, 5},
	{"toad", 65, 8},
	{"beacon", 75, 5},
	{"butterfly", 92, 8},
	{"pulsar", 5, 18},
	{"figure-eight", 25, 20},
	{"pentadecathlon", 35, 18},
	{"glider", 50, 25},
	{"lwss", 60, 22},
	{"mwss", 75, 20},
	{"gosper-glider-gun", 5, 35},
	{"r-pentomino", 50, 40},
	{"acorn", 60, 38},
	{"hwss", 85, 35},
	{"galaxy", 5, 55},
	{"glider", 25, 60},
	{"block", 45, 62},
	{"galaxy", 70, 70},
	{"beehive", 5, 75},
	{"boat", 15, 78},
	{"toad", 35, 80},
	{"beacon", 50, 75},
	{"clock", 65, 77},
	{"block", 90, 78},
	{"thunderbird", 70, 55},
	{"glider", 80, 15},
	{"glider", 20, 85},
	{"glider", 90, 50},
	{"blinker", 5, 95},
	{"blinker", 95, 5},
	{"blinker", 12, 65},
	{"block", 95, 90},
	{"block", 2, 90},
	{"beehive", 85, 65},
	{"boat", 75, 85},
	{"loaf", 40, 85},
	{"pi-heptomino", 80, 40},
	{"lwss", 5, 10},
	{"butterfly", 2, 2},
	{"clock", 92, 92},
	{"thunderbird", 90, 2},
	{"galaxy", 60, 60},
}
