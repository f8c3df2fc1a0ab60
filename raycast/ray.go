package raycast

import (
	"github.com/seqsense/pcgol/mat"
)

// Ray is a directed segment with its currently known valid parameter
// interval [TMin, TMax]. Dir doesn't need to be normalized. InvDir
// components are ±Inf where the corresponding Dir component is zero;
// the intersection test relies on that.
type Ray struct {
	Origin mat.Vec3
	Dir    mat.Vec3
	InvDir mat.Vec3
	Sign   [3]int
	TMin   float32
	TMax   float32
}

// NewRay creates a ray from origin along dir, valid over [tMin, tMax].
func NewRay(origin, dir mat.Vec3, tMin, tMax float32) Ray {
	r := Ray{
		Origin: origin,
		Dir:    dir,
		TMin:   tMin,
		TMax:   tMax,
	}
	for i := range dir {
		r.InvDir[i] = 1 / dir[i]
		if dir[i] < 0 {
			r.Sign[i] = 1
		}
	}
	return r
}

// NewSegment creates a ray from start to end, valid over [0, 1].
func NewSegment(start, end mat.Vec3) Ray {
	return NewRay(start, end.Sub(start), 0, 1)
}

// At returns the point at parameter t.
func (r *Ray) At(t float32) mat.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
