package fov

import "testing"

// grid builds a primed Map from rows of '#' (wall) and '.' (floor).
func grid(rows ...string) *Map {
	m := NewMap(len(rows[0]), len(rows))
	for y, row := range rows {
		for x, c := range row {
			floor := c == '.'
			m.Prime(x, y, floor, floor)
		}
	}
	return m
}

var algorithms = []Algorithm{AlgorithmBasic, AlgorithmShadow}

func TestOriginIsVisible(t *testing.T) {
	for _, algo := range algorithms {
		m := grid(
			"###",
			"#.#",
			"###",
		)
		m.Recompute(1, 1, 5, true, algo)
		if !m.IsVisible(1, 1) {
			t.Errorf("%s: origin not visible", algo)
		}
	}
}

func TestOpenRoomFullyVisible(t *testing.T) {
	for _, algo := range algorithms {
		m := grid(
			"#######",
			"#.....#",
			"#.....#",
			"#.....#",
			"#######",
		)
		m.Recompute(3, 2, 10, true, algo)

		for y := 0; y < m.Height(); y++ {
			for x := 0; x < m.Width(); x++ {
				if m.IsTransparent(x, y) && !m.IsVisible(x, y) {
					t.Errorf("%s: floor (%d,%d) should be visible in an open room", algo, x, y)
				}
			}
		}
		// Walls facing the origin along both axes are lit.
		for _, w := range []Point{{3, 0}, {3, 4}, {0, 2}, {6, 2}} {
			if !m.IsVisible(w.X, w.Y) {
				t.Errorf("%s: wall (%d,%d) should be lit", algo, w.X, w.Y)
			}
		}
	}
}

func TestWallsOccludeTilesBehindThem(t *testing.T) {
	for _, algo := range algorithms {
		m := grid(
			"#########",
			"#...#...#",
			"#...#...#",
			"#...#...#",
			"#########",
		)
		m.Recompute(2, 2, 10, true, algo)

		if !m.IsVisible(4, 2) {
			t.Errorf("%s: dividing wall should be lit", algo)
		}
		for y := 1; y <= 3; y++ {
			for x := 5; x <= 7; x++ {
				if m.IsVisible(x, y) {
					t.Errorf("%s: (%d,%d) behind the wall should not be visible", algo, x, y)
				}
			}
		}
	}
}

func TestLightWallsFalseHidesWalls(t *testing.T) {
	for _, algo := range algorithms {
		m := grid(
			"#####",
			"#...#",
			"#####",
		)
		m.Recompute(2, 1, 10, false, algo)

		if m.IsVisible(0, 1) || m.IsVisible(2, 0) {
			t.Errorf("%s: walls should not be visible without lightWalls", algo)
		}
		if !m.IsVisible(1, 1) || !m.IsVisible(3, 1) {
			t.Errorf("%s: floor should be visible", algo)
		}
	}
}

func TestRadiusLimitsVisibility(t *testing.T) {
	row := "#...................#"
	for _, algo := range algorithms {
		m := grid(row, row, row)
		m.Recompute(1, 1, 4, true, algo)

		if !m.IsVisible(5, 1) {
			t.Errorf("%s: tile at distance 4 should be visible", algo)
		}
		if m.IsVisible(6, 1) {
			t.Errorf("%s: tile at distance 5 should not be visible", algo)
		}
	}
}

func TestRecomputeReplacesVisibleSet(t *testing.T) {
	for _, algo := range algorithms {
		m := grid(
			"#########",
			"#...#...#",
			"#...#...#",
			"#########",
		)
		m.Recompute(1, 1, 10, true, algo)
		if !m.IsVisible(2, 2) {
			t.Fatalf("%s: left room should be visible", algo)
		}

		m.Recompute(6, 1, 10, true, algo)
		if m.IsVisible(2, 2) {
			t.Errorf("%s: left room should no longer be visible", algo)
		}
		if !m.IsVisible(7, 2) {
			t.Errorf("%s: right room should be visible", algo)
		}
	}
}

func TestOutOfBoundsOrigin(t *testing.T) {
	m := grid("...", "...")
	m.Recompute(1, 1, 3, true, AlgorithmBasic)
	m.Recompute(-5, 0, 3, true, AlgorithmShadow)

	if m.VisibleCount() != 0 {
		t.Errorf("VisibleCount = %d, want 0 for an origin off the map", m.VisibleCount())
	}
}

func TestPrime(t *testing.T) {
	m := NewMap(3, 3)
	m.Prime(1, 1, true, false)
	m.Prime(5, 5, true, true) // ignored

	if !m.IsTransparent(1, 1) || m.IsWalkable(1, 1) {
		t.Error("Prime did not record (transparent, !walkable)")
	}
	if m.IsTransparent(0, 0) || m.IsWalkable(0, 0) {
		t.Error("unprimed tiles should be opaque and unwalkable")
	}
	if m.IsTransparent(5, 5) {
		t.Error("out-of-bounds tiles should be opaque")
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input string
		want  Algorithm
		valid bool
	}{
		{"basic", AlgorithmBasic, true},
		{"", AlgorithmBasic, true},
		{"Shadow", AlgorithmShadow, true},
		{"shadowcast", AlgorithmShadow, true},
		{"permissive", AlgorithmBasic, false},
	}

	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.input)
		if tt.valid && (err != nil || got != tt.want) {
			t.Errorf("ParseAlgorithm(%q) = %v, %v; want %v", tt.input, got, err, tt.want)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseAlgorithm(%q) should fail", tt.input)
		}
	}

	if AlgorithmShadow.String() != "shadow" || Algorithm(9).String() != "unknown" {
		t.Error("unexpected Algorithm.String output")
	}
}

var _ Service = (*Map)(nil)
