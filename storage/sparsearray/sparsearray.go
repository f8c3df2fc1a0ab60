// Package sparsearray provides per-cell counter storage that only
// materializes the cells actually touched. It trades per-access cost
// for memory on grids where traversals cover a small fraction of the
// volume.
package sparsearray

// Array3 stores uint32 counters keyed by flat storage address.
// Counters wrap on overflow. Callers serialize concurrent writes.
type Array3 struct {
	cells map[int64]uint32
}

func New() *Array3 {
	return &Array3{
		cells: make(map[int64]uint32),
	}
}

func (a *Array3) Incr(addr int64) {
	a.cells[addr]++
}

// At returns the counter at addr; untouched cells read as zero.
func (a *Array3) At(addr int64) uint32 {
	return a.cells[addr]
}

func (a *Array3) Set(addr int64, v uint32) {
	a.cells[addr] = v
}

func (a *Array3) Erase(addr int64) {
	delete(a.cells, addr)
}

// Len returns the number of materialized cells.
func (a *Array3) Len() int {
	return len(a.cells)
}

// Reset drops all cells. The map's buckets are kept so a reused array
// doesn't pay the growth cost again.
func (a *Array3) Reset() {
	for k := range a.cells {
		delete(a.cells, k)
	}
}

// Range calls fn for every materialized cell, in unspecified order,
// until fn returns false.
func (a *Array3) Range(fn func(addr int64, v uint32) bool) {
	for k, v := range a.cells {
		if !fn(k, v) {
			return
		}
	}
}
