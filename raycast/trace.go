// Package raycast provides the geometric primitives to cast rays
// through a regular voxel grid: an axis-aligned box/ray intersection
// test that clips a ray to the grid volume, and integer line
// traversals that visit, in order, every cell on the discrete line
// between two grid coordinates.
package raycast

// Ix3 is a signed 3-D grid cell coordinate.
type Ix3 [3]int64

// Ix2 is a signed 2-D grid cell coordinate.
type Ix2 [2]int64

// TraceFunc is called once per visited cell. Returning false stops
// the traversal; the cell it was called for still counts as visited.
type TraceFunc func(x, y, z int64) bool

// Trace visits every cell of the discrete line from start to end, in
// order and both ends included, calling fn for each. Consecutive cells
// differ by at most one unit per axis and by exactly one unit on the
// dominant axis, so a cell is never visited twice. start and end must
// already be known to lie inside the grid; clip with Intersect first.
func Trace(start, end Ix3, fn TraceFunc) {
	d, s := deltaSign3(start, end)

	u := dominantAxis(d)
	v, w := (u+1)%3, (u+2)%3

	a := [3]int64{2 * d[0], 2 * d[1], 2 * d[2]}
	decV := a[v] - d[u]
	decW := a[w] - d[u]
	p := start
	for {
		if !fn(p[0], p[1], p[2]) {
			return
		}
		if p[u] == end[u] {
			return
		}
		p[u] += s[u]
		if decV > 0 {
			p[v] += s[v]
			decV -= a[u]
		}
		if decW > 0 {
			p[w] += s[w]
			decW -= a[u]
		}
		decV += a[v]
		decW += a[w]
	}
}

// dominantAxis returns the axis with the largest absolute delta.
// Ties resolve in x, y, z order; keep it that way, traversal results
// must be deterministic.
func dominantAxis(d [3]int64) int {
	if d[1] <= d[0] && d[2] <= d[0] {
		return 0
	}
	if d[0] <= d[1] && d[2] <= d[1] {
		return 1
	}
	return 2
}

func deltaSign3(start, end Ix3) (d, s [3]int64) {
	for i := range d {
		d[i] = end[i] - start[i]
		switch {
		case d[i] > 0:
			s[i] = 1
		case d[i] < 0:
			s[i] = -1
			d[i] = -d[i]
		}
	}
	return d, s
}
