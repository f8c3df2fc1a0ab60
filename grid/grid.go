// Package grid maps world-space points to cells of a regular 3-D grid
// and grid cells to flat storage addresses.
package grid

import (
	"github.com/seqsense/pcgol/mat"
)

// Grid3 is a fixed-size regular grid over a world-space volume.
// The cell (0,0,0) has its minimum corner at origin; addresses are
// row-major with x fastest.
type Grid3 struct {
	size          [3]int64
	origin        mat.Vec3
	resolution    float32
	resolutionInv float32
}

func New(resolution float32, size [3]int64, origin mat.Vec3) *Grid3 {
	return &Grid3{
		size:          size,
		origin:        origin,
		resolution:    resolution,
		resolutionInv: 1 / resolution,
	}
}

// Addr maps an in-bounds grid coordinate to its flat storage address.
func (g *Grid3) Addr(x, y, z int64) int64 {
	return x + (y+z*g.size[1])*g.size[0]
}

// InBounds reports whether the coordinate addresses a cell of the grid.
func (g *Grid3) InBounds(x, y, z int64) bool {
	return x >= 0 && y >= 0 && z >= 0 &&
		x < g.size[0] && y < g.size[1] && z < g.size[2]
}

// Pos returns the grid coordinate of a world-space point without
// bounds checking. The result is only meaningful for points inside or
// on the boundary of the grid volume.
func (g *Grid3) Pos(p mat.Vec3) [3]int64 {
	pos := p.Sub(g.origin)
	return [3]int64{
		int64(pos[0] * g.resolutionInv),
		int64(pos[1] * g.resolutionInv),
		int64(pos[2] * g.resolutionInv),
	}
}

// PosInt returns the grid coordinate of a world-space point, or false
// if the point is outside the grid volume.
func (g *Grid3) PosInt(p mat.Vec3) ([3]int64, bool) {
	pos := g.Pos(p)
	if !g.InBounds(pos[0], pos[1], pos[2]) {
		return [3]int64{}, false
	}
	return pos, true
}

// Clamp limits a coordinate to the grid bounds. Points exactly on the
// maximum corner of the volume convert to a coordinate one past the
// last cell; Clamp pulls them back in.
func (g *Grid3) Clamp(p [3]int64) [3]int64 {
	for i := range p {
		if p[i] < 0 {
			p[i] = 0
		} else if p[i] >= g.size[i] {
			p[i] = g.size[i] - 1
		}
	}
	return p
}

// Center returns the world-space center of a cell.
func (g *Grid3) Center(x, y, z int64) mat.Vec3 {
	return g.origin.Add(mat.Vec3{
		(float32(x) + 0.5) * g.resolution,
		(float32(y) + 0.5) * g.resolution,
		(float32(z) + 0.5) * g.resolution,
	})
}

// Min returns the world-space minimum corner of the grid volume.
func (g *Grid3) Min() mat.Vec3 {
	return g.origin
}

// Max returns the world-space maximum corner of the grid volume.
func (g *Grid3) Max() mat.Vec3 {
	return g.origin.Add(mat.Vec3{
		float32(g.size[0]) * g.resolution,
		float32(g.size[1]) * g.resolution,
		float32(g.size[2]) * g.resolution,
	})
}

func (g *Grid3) Size() [3]int64 {
	return g.size
}

func (g *Grid3) Resolution() float32 {
	return g.resolution
}

// Len returns the number of cells of the grid.
func (g *Grid3) Len() int64 {
	return g.size[0] * g.size[1] * g.size[2]
}
