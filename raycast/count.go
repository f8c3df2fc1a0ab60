package raycast

// GridAddresser maps an in-bounds grid coordinate to its flat storage
// address. Behavior for out-of-bounds coordinates is unspecified;
// callers clip rays to the grid volume before tracing.
type GridAddresser interface {
	Addr(x, y, z int64) int64
}

// CounterStore is a mutable collection of per-cell counters addressed
// through a GridAddresser. Counter width and overflow behavior are the
// store's own contract.
type CounterStore interface {
	Incr(addr int64)
}

// TraceCount increments the counter of every cell of the discrete
// line from start to end, both ends included. It steps exactly like
// Trace but has no visitor and cannot be stopped early; use it where
// only per-cell pass counts are needed and per-cell call overhead
// matters.
func TraceCount(start, end Ix3, g GridAddresser, cnt CounterStore) {
	d, s := deltaSign3(start, end)

	u := dominantAxis(d)
	v, w := (u+1)%3, (u+2)%3

	a := [3]int64{2 * d[0], 2 * d[1], 2 * d[2]}
	decV := a[v] - d[u]
	decW := a[w] - d[u]
	p := start
	for {
		cnt.Incr(g.Addr(p[0], p[1], p[2]))
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
