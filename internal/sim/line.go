package sim

// cellLine steps through grid cells along a 3D line (Bresenham).
// Visits both endpoints.
type cellLine struct {
	x, y, z    int
	tx, ty, tz int
	dx, dy, dz int
	sx, sy, sz int
	errA, errB int
	dominant   int // 0=X, 1=Y, 2=Z
	started    bool
}

func newCellLine(x0, y0, z0, x1, y1, z1 int) *cellLine {
	l := &cellLine{
		x: x0, y: y0, z: z0,
		tx: x1, ty: y1, tz: z1,
		dx: absInt(x1 - x0),
		dy: absInt(y1 - y0),
		dz: absInt(z1 - z0),
		sx: sign(x1 - x0),
		sy: sign(y1 - y0),
		sz: sign(z1 - z0),
	}

	switch {
	case l.dx >= l.dy && l.dx >= l.dz:
		l.dominant = 0
		l.errA, l.errB = l.dx/2, l.dx/2
	case l.dy >= l.dx && l.dy >= l.dz:
		l.dominant = 1
		l.errA, l.errB = l.dy/2, l.dy/2
	default:
		l.dominant = 2
		l.errA, l.errB = l.dz/2, l.dz/2
	}

	return l
}

// next advances to the next cell. Returns false once past the end cell.
func (l *cellLine) next() bool {
	if !l.started {
		l.started = true
		return true
	}

	if l.x == l.tx && l.y == l.ty && l.z == l.tz {
		return false
	}

	switch l.dominant {
	case 0:
		l.x += l.sx
		l.errA, l.y = stepMinor(l.errA, l.dy, l.dx, l.y, l.sy)
		l.errB, l.z = stepMinor(l.errB, l.dz, l.dx, l.z, l.sz)
	case 1:
		l.y += l.sy
		l.errA, l.x = stepMinor(l.errA, l.dx, l.dy, l.x, l.sx)
		l.errB, l.z = stepMinor(l.errB, l.dz, l.dy, l.z, l.sz)
	case 2:
		l.z += l.sz
		l.errA, l.x = stepMinor(l.errA, l.dx, l.dz, l.x, l.sx)
		l.errB, l.y = stepMinor(l.errB, l.dy, l.dz, l.y, l.sy)
	}

	return true
}

// stepMinor accumulates the minor-axis error and steps when it overflows.
func stepMinor(err, minor, major, coord, step int) (int, int) {
	err += minor
	if err >= major {
		coord += step
		err -= major
	}
	return err, coord
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func sign(x int) int {
	if x < 0 {
		return -1
	}
	return 1
}
