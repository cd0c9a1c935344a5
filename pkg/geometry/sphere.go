package geometry

import (
	"math"

	"github.com/nickbhorton/beamburst2/pkg/core"
	"github.com/nickbhorton/beamburst2/pkg/material"
)

// Sphere represents a sphere shape
type Sphere struct {
	Center core.Vec3
	Radius float64
	mat    material.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Material) *Sphere {
	return &Sphere{
		Center: center,
		Radius: radius,
		mat:    mat,
	}
}

// Hit tests if a ray intersects with the sphere. The direction is
// assumed normalized, so the quadratic reduces to its half-b form:
// with h the vector from origin to center and m its projection onto
// the direction, the roots are m ∓ sqrt(m² − h·h + r²).
func (s *Sphere) Hit(ray core.Ray, tMin, tMax float64) (float64, bool) {
	h := s.Center.Subtract(ray.Origin)
	m := h.Dot(ray.Direction)
	g := m*m - h.Dot(h) + s.Radius*s.Radius

	// No intersection if the discriminant is negative
	if g < 0 {
		return 0, false
	}

	sqrtG := math.Sqrt(g)

	// Try the closer root first, then the farther one
	if t0 := m - sqrtG; t0 > tMin && t0 < tMax {
		return t0, true
	}
	if t1 := m + sqrtG; t1 > tMin && t1 < tMax {
		return t1, true
	}
	return 0, false
}

// NormalAt returns the outward normal at a point on the sphere
func (s *Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}

// Material returns the sphere's material
func (s *Sphere) Material() material.Material {
	return s.mat
}
