// Package occupancy accumulates ranged sensor measurements into
// per-cell hit and pass-through counts on a regular 3-D grid. Each
// measurement ray is clipped to the grid volume, walked cell by cell,
// and credited to the traversed cells; cells are then classified as
// free or occupied by their hit ratio.
package occupancy

import (
	"github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"

	"github.com/icra2018/scrollgrid/grid"
	"github.com/icra2018/scrollgrid/raycast"
	"github.com/icra2018/scrollgrid/storage/densearray"
)

// CellState is the classification of one grid cell.
type CellState int

const (
	CellUnknown CellState = iota
	CellFree
	CellOccupied
)

// Mapper owns the grid and its counters. Not safe for concurrent use.
type Mapper struct {
	grid   *grid.Grid3
	bounds raycast.Box
	hits   *densearray.Array3
	visits *densearray.Array3

	occupiedThresh float32
	freeThresh     float32
}

func NewMapper(c *Config) (*Mapper, error) {
	if err := c.validate(); err != nil {
		return nil, err
	}
	g := grid.New(
		c.Resolution,
		[3]int64{c.Size[0], c.Size[1], c.Size[2]},
		mat.Vec3{c.Origin[0], c.Origin[1], c.Origin[2]},
	)
	return &Mapper{
		grid:           g,
		bounds:         raycast.Box{Min: g.Min(), Max: g.Max()},
		hits:           densearray.New(g.Len()),
		visits:         densearray.New(g.Len()),
		occupiedThresh: c.OccupiedThresh,
		freeThresh:     c.FreeThresh,
	}, nil
}

// AddRay accumulates one measurement: a ray from the sensor origin to
// the measured point p. Every cell on the part of the segment inside
// the grid volume gets a pass-through count; the cell containing p
// gets a hit count when p itself is inside the volume. It reports
// whether any part of the segment crossed the volume.
func (m *Mapper) AddRay(origin, p mat.Vec3) bool {
	r := raycast.NewSegment(origin, p)
	if !raycast.Intersect(&m.bounds, &r) || r.TMin > r.TMax {
		return false
	}
	start := m.grid.Clamp(m.grid.Pos(r.At(r.TMin)))
	end := m.grid.Clamp(m.grid.Pos(r.At(r.TMax)))
	raycast.TraceCount(raycast.Ix3(start), raycast.Ix3(end), m.grid, m.visits)
	if r.TMax >= 1 {
		m.hits.Incr(m.grid.Addr(end[0], end[1], end[2]))
	}
	return true
}

// AddCloud accumulates every point of a cloud as a measurement from
// origin, and returns the number of rays that crossed the grid volume.
func (m *Mapper) AddCloud(origin mat.Vec3, ra pc.Vec3RandomAccessor) int {
	var n int
	for i := 0; i < ra.Len(); i++ {
		if m.AddRay(origin, ra.Vec3At(i)) {
			n++
		}
	}
	return n
}

// StateAt classifies the cell containing the world-space point p.
func (m *Mapper) StateAt(p mat.Vec3) CellState {
	pos, ok := m.grid.PosInt(p)
	if !ok {
		return CellUnknown
	}
	return m.state(m.grid.Addr(pos[0], pos[1], pos[2]))
}

// StateAtCell classifies one grid cell. The coordinate must be in
// bounds.
func (m *Mapper) StateAtCell(x, y, z int64) CellState {
	return m.state(m.grid.Addr(x, y, z))
}

func (m *Mapper) state(addr int64) CellState {
	visits := m.visits.At(addr)
	if visits == 0 {
		return CellUnknown
	}
	ratio := float32(m.hits.At(addr)) / float32(visits)
	switch {
	case ratio >= m.occupiedThresh:
		return CellOccupied
	case ratio <= m.freeThresh:
		return CellFree
	}
	return CellUnknown
}

// LineOfSight2D reports whether the cells strictly before the end of
// the line between two cells of the horizontal slice z are all
// observed free. The end cell itself may be occupied; it is typically
// the obstacle being looked at. start and end must be inside the grid.
func (m *Mapper) LineOfSight2D(start, end raycast.Ix2, z int64) bool {
	clear := true
	raycast.Trace2(start, end, func(x, y int64, endCell bool) bool {
		if endCell {
			return false
		}
		if m.state(m.grid.Addr(x, y, z)) != CellFree {
			clear = false
			return false
		}
		return true
	})
	return clear
}

func (m *Mapper) Grid() *grid.Grid3 {
	return m.grid
}

// HitsAtCell returns the hit count of one cell.
func (m *Mapper) HitsAtCell(x, y, z int64) uint32 {
	return m.hits.At(m.grid.Addr(x, y, z))
}

// VisitsAtCell returns the pass-through count of one cell, hits
// included.
func (m *Mapper) VisitsAtCell(x, y, z int64) uint32 {
	return m.visits.At(m.grid.Addr(x, y, z))
}

// Reset zeroes all counters keeping the storage allocated.
func (m *Mapper) Reset() {
	m.hits.Reset()
	m.visits.Reset()
}
