package geometry

import (
	"math"

	"github.com/nickbhorton/beamburst2/pkg/core"
	"github.com/nickbhorton/beamburst2/pkg/material"
)

// Triangle represents a single triangle defined by three vertices.
// No winding order is enforced, but the normal direction depends on
// vertex order.
type Triangle struct {
	V0, V1, V2 core.Vec3
	mat        material.Material
}

// NewTriangle creates a new triangle from three vertices
func NewTriangle(v0, v1, v2 core.Vec3, mat material.Material) *Triangle {
	return &Triangle{
		V0:  v0,
		V1:  v1,
		V2:  v2,
		mat: mat,
	}
}

// Hit tests if a ray intersects with the triangle: first against the
// supporting plane, then a barycentric containment test in the basis
// built from the two edge vectors.
func (t *Triangle) Hit(ray core.Ray, tMin, tMax float64) (float64, bool) {
	e1 := t.V1.Subtract(t.V0)
	e2 := t.V2.Subtract(t.V0)
	n := e1.Cross(e2)
	d := -t.V0.Dot(n)

	// A non-normal denominator means the ray is parallel to the plane
	// or the triangle is degenerate
	denominator := n.Dot(ray.Direction)
	if !isNormal(denominator) {
		return 0, false
	}

	time := -(d + n.Dot(ray.Origin)) / denominator
	if math.Signbit(time) {
		return 0, false
	}
	if time <= tMin || time >= tMax {
		return 0, false
	}

	// Solve the 2x2 system for barycentric coordinates of the hit
	// point relative to V0
	p := ray.At(time).Subtract(t.V0)
	d11 := e1.Dot(e1)
	d12 := e1.Dot(e2)
	d22 := e2.Dot(e2)
	d1p := e1.Dot(p)
	d2p := e2.Dot(p)

	det := d11*d22 - d12*d12
	if !isNormal(det) {
		return 0, false
	}

	beta := (d22*d1p - d12*d2p) / det
	gamma := (d11*d2p - d12*d1p) / det

	// Accept points inside the triangle including its boundary
	if beta < 0 || beta > 1 || gamma < 0 || gamma > 1 ||
		beta+gamma > 1 || beta+gamma < 0 {
		return 0, false
	}
	return time, true
}

// NormalAt returns the plane normal derived from the hit point and the
// V0→V2 edge. Direction follows vertex winding; it is not flipped
// toward the incoming ray.
func (t *Triangle) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(t.V0).Cross(t.V2.Subtract(t.V0)).Normalize()
}

// Material returns the triangle's material
func (t *Triangle) Material() material.Material {
	return t.mat
}
