package geometry

import (
	"math"

	"github.com/nickbhorton/beamburst2/pkg/core"
	"github.com/nickbhorton/beamburst2/pkg/material"
)

// Surface is the capability set shared by all primitives: ray
// intersection, surface normal lookup, and material access.
//
// Hit reports the parametric distance to the nearest intersection
// inside the open interval (tMin, tMax), or false if the ray misses.
// Hit never mutates the ray; callers fold over all surfaces tracking
// the minimum distance.
type Surface interface {
	Hit(ray core.Ray, tMin, tMax float64) (float64, bool)
	NormalAt(point core.Vec3) core.Vec3
	Material() material.Material
}

// smallest positive normal float64
const minNormal = 2.2250738585072014e-308

// isNormal reports whether f is finite, non-zero, and not subnormal.
// Degenerate denominators and determinants fail this test and are
// treated as "no intersection" rather than an error.
func isNormal(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return math.Abs(f) >= minNormal
}
