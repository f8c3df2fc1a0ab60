package raycast

// Intersect narrows the ray's parameter interval to its overlap with
// the box, updating r.TMin/r.TMax in place. TMin only moves up and
// TMax only moves down, so the caller's original interval is never
// widened. It reports false when the ray's supporting line misses the
// box; the interval may be left partially narrowed in that case.
//
// Zero direction components yield ±Inf in r.InvDir and fall out of the
// slab arithmetic naturally; they are not an error.
//
// Reference:
// An Efficient and Robust Ray-Box Intersection Algorithm,
// Williams et al. 2004
func Intersect(b *Box, r *Ray) bool {
	tMin := (b.Bound(r.Sign[0])[0] - r.Origin[0]) * r.InvDir[0]
	tMax := (b.Bound(1-r.Sign[0])[0] - r.Origin[0]) * r.InvDir[0]

	tyMin := (b.Bound(r.Sign[1])[1] - r.Origin[1]) * r.InvDir[1]
	tyMax := (b.Bound(1-r.Sign[1])[1] - r.Origin[1]) * r.InvDir[1]

	if tMin > tyMax || tyMin > tMax {
		return false
	}
	if tyMin > tMin {
		tMin = tyMin
	}
	if tyMax < tMax {
		tMax = tyMax
	}

	tzMin := (b.Bound(r.Sign[2])[2] - r.Origin[2]) * r.InvDir[2]
	tzMax := (b.Bound(1-r.Sign[2])[2] - r.Origin[2]) * r.InvDir[2]

	if tMin > tzMax || tzMin > tMax {
		return false
	}
	if tzMin > tMin {
		tMin = tzMin
	}
	if tzMax < tMax {
		tMax = tzMax
	}

	if tMin > r.TMin {
		r.TMin = tMin
	}
	if tMax < r.TMax {
		r.TMax = tMax
	}
	return true
}
