package collision

import rl "github.com/gen2brain/raylib-go/raylib"

// RayHit describes the nearest volume struck by a cast.
//
// T is the parametric distance along the cast direction at which the ray
// enters the volume. Callers pass direction as end-start rather than a unit
// vector, so T is a fraction of that segment: T in [0,1) means the volume
// is hit within this movement step, anything else lies beyond it.
type RayHit struct {
	Handle Handle
	Point  rl.Vector3
	T      float32
	Blocks bool
}

// CastRay finds the nearest box volume crossed by the ray from start along
// dir, strictly ahead of start. It returns false when nothing is struck.
//
// All box volumes participate, blocking or not; callers branch on the
// returned Blocks flag to decide between stopping movement and passing
// through with a registered hit. Sphere volumes are stored but never
// ray-tested (see Manager docs).
//
// A caller casting from inside its own volume must exclude it or the cast
// can clip geometry behind the near face; either remove the volume before
// casting and re-add it after, or use CastRayIgnoring.
func (m *Manager) CastRay(start, dir rl.Vector3) (RayHit, bool) {
	return m.CastRayIgnoring(start, dir, InvalidHandle())
}

// CastRayIgnoring is CastRay with one volume excluded from the query,
// typically the caster's own.
func (m *Manager) CastRayIgnoring(start, dir rl.Vector3, ignore Handle) (RayHit, bool) {
	var best RayHit
	best.Handle = InvalidHandle()
	found := false

	m.volumes.Each(func(h Handle, shape Shape) bool {
		if h == ignore {
			return true
		}

		switch shape.Kind {
		case KindSphere:
			// Spheres do not participate in ray queries.

		case KindBox:
			t, ok := intersectBox(start, dir, shape)
			if ok && (!found || t < best.T) {
				best = RayHit{
					Handle: h,
					Point:  rl.Vector3Add(start, rl.Vector3Scale(dir, t)),
					T:      t,
					Blocks: shape.Block,
				}
				found = true
			}
		}
		return true
	})

	return best, found
}

// intersectBox runs the slab test: per-axis entry/exit parameters whose
// intervals must overlap for the ray to cross the box. Zero direction
// components divide to +-Inf, which the min/max ordering below absorbs
// without special cases. Entry must be strictly positive: a box containing
// the ray origin is not reported.
func intersectBox(start, dir rl.Vector3, box Shape) (float32, bool) {
	mn := box.Min()
	mx := box.Max()

	tMinX := (mn.X - start.X) / dir.X
	tMaxX := (mx.X - start.X) / dir.X
	tMinY := (mn.Y - start.Y) / dir.Y
	tMaxY := (mx.Y - start.Y) / dir.Y
	tMinZ := (mn.Z - start.Z) / dir.Z
	tMaxZ := (mx.Z - start.Z) / dir.Z

	largestMin := max(min(tMinX, tMaxX), min(tMinY, tMaxY), min(tMinZ, tMaxZ))
	smallestMax := min(max(tMinX, tMaxX), max(tMinY, tMaxY), max(tMinZ, tMaxZ))

	if largestMin > smallestMax || largestMin <= 0 {
		return 0, false
	}
	return largestMin, true
}
