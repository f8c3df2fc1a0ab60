package raycast

// TraceFunc2 is called once per visited cell. endCell is true on the
// final cell of the line. Returning false stops the traversal.
type TraceFunc2 func(x, y int64, endCell bool) bool

// Trace2 is the 2-D form of Trace. Both ends are visited; the visitor
// receives endCell == true exactly once, on the last cell.
func Trace2(start, end Ix2, fn TraceFunc2) {
	var d, s [2]int64
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

	// Dominance ties resolve to x, as in the 3-D form.
	u := 0
	if d[0] < d[1] {
		u = 1
	}
	v := 1 - u

	a := [2]int64{2 * d[0], 2 * d[1]}
	dec := a[v] - d[u]
	p := start
	for {
		if !fn(p[0], p[1], p[u] == end[u]) {
			return
		}
		if p[u] == end[u] {
			return
		}
		p[u] += s[u]
		if dec > 0 {
			p[v] += s[v]
			dec -= a[u]
		}
		dec += a[v]
	}
}
