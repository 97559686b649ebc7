package fov

// octants maps the canonical octant onto the eight real ones as
// (xx, xy, yx, yy) multipliers.
var octants = [8][4]int{
	{1, 0, 0, 1},
	{0, 1, 1, 0},
	{0, -1, 1, 0},
	{-1, 0, 0, 1},
	{-1, 0, 0, -1},
	{0, -1, -1, 0},
	{0, 1, -1, 0},
	{1, 0, 0, -1},
}

// shadowcast scans each octant row by row, recursing past opaque tiles
// with a narrowed slope window.
func (m *Map) shadowcast(ox, oy, radius int, lightWalls bool) {
	for _, o := range octants {
		m.castLight(ox, oy, 1, 1.0, 0.0, radius, o[0], o[1], o[2], o[3], lightWalls)
	}
}

func (m *Map) castLight(ox, oy, row int, start, end float64, radius, xx, xy, yx, yy int, lightWalls bool) {
	if start < end {
		return
	}
	r2 := radius * radius
	newStart := 0.0

	for j := row; j <= radius; j++ {
		dx, dy := -j-1, -j
		blocked := false

		for dx <= 0 {
			dx++
			x := ox + dx*xx + dy*xy
			y := oy + dx*yx + dy*yy
			lSlope := (float64(dx) - 0.5) / (float64(dy) + 0.5)
			rSlope := (float64(dx) + 0.5) / (float64(dy) - 0.5)

			if start < rSlope {
				continue
			}
			if end > lSlope {
				break
			}

			if m.inBounds(x, y) && dx*dx+dy*dy <= r2 {
				m.light(x, y, lightWalls)
			}

			opaque := !m.IsTransparent(x, y)
			if blocked {
				if opaque {
					newStart = rSlope
					continue
				}
				blocked = false
				start = newStart
			} else if opaque && j < radius {
				blocked = true
				m.castLight(ox, oy, j+1, start, lSlope, radius, xx, xy, yx, yy, lightWalls)
				newStart = rSlope
			}
		}

		if blocked {
			break
		}
	}
}
