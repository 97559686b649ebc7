package fov

// raycast traces a line from the origin to every tile on the perimeter of
// the radius square, stopping each ray at the first opaque tile.
func (m *Map) raycast(ox, oy, radius int, lightWalls bool) {
	r2 := radius * radius
	minX, maxX := ox-radius, ox+radius
	minY, maxY := oy-radius, oy+radius

	for x := minX; x <= maxX; x++ {
		m.castRay(ox, oy, x, minY, r2, lightWalls)
		m.castRay(ox, oy, x, maxY, r2, lightWalls)
	}
	for y := minY + 1; y < maxY; y++ {
		m.castRay(ox, oy, minX, y, r2, lightWalls)
		m.castRay(ox, oy, maxX, y, r2, lightWalls)
	}
}

// castRay walks a Bresenham line from (x0,y0) toward (x1,y1).
func (m *Map) castRay(x0, y0, x1, y1, r2 int, lightWalls bool) {
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	err := dx + dy
	x, y := x0, y0

	for x != x1 || y != y1 {
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}

		if !m.inBounds(x, y) {
			return
		}
		ddx, ddy := x-x0, y-y0
		if ddx*ddx+ddy*ddy > r2 {
			return
		}

		m.light(x, y, lightWalls)

		// Stop if we hit a wall
		if !m.IsTransparent(x, y) {
			return
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
