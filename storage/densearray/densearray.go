// Package densearray provides flat per-cell counter storage for a
// regular grid, addressed by the grid's flat storage address.
package densearray

// Array3 is a dense array of uint32 counters. Counters wrap on
// overflow. Callers serialize concurrent writes.
type Array3 struct {
	data []uint32
}

func New(n int64) *Array3 {
	return &Array3{
		data: make([]uint32, n),
	}
}

func (a *Array3) Incr(addr int64) {
	a.data[addr]++
}

func (a *Array3) At(addr int64) uint32 {
	return a.data[addr]
}

func (a *Array3) Set(addr int64, v uint32) {
	a.data[addr] = v
}

func (a *Array3) Len() int64 {
	return int64(len(a.data))
}

// Reset zeroes all counters keeping the storage allocated.
func (a *Array3) Reset() {
	for i := range a.data {
		a.data[i] = 0
	}
}
