package raycast

import (
	"github.com/seqsense/pcgol/mat"
)

// Box is an axis-aligned box given by its minimum and maximum corners.
type Box struct {
	Min, Max mat.Vec3
}

// Bound returns Min when i is 0 and Max otherwise. The intersection
// test uses it to pick the near or far face per axis from a ray sign.
func (b *Box) Bound(i int) mat.Vec3 {
	if i == 0 {
		return b.Min
	}
	return b.Max
}

// IsValid reports whether Min <= Max on every axis.
func (b *Box) IsValid() bool {
	return !(b.Min[0] > b.Max[0] ||
		b.Min[1] > b.Max[1] ||
		b.Min[2] > b.Max[2])
}

// Contains reports whether v is inside the box, boundary included.
func (b *Box) Contains(v mat.Vec3) bool {
	return !(v[0] < b.Min[0] ||
		v[1] < b.Min[1] ||
		v[2] < b.Min[2] ||
		b.Max[0] < v[0] ||
		b.Max[1] < v[1] ||
		b.Max[2] < v[2])
}
