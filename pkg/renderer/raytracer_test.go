package renderer

import (
	"testing"

	"github.com/nickbhorton/beamburst2/pkg/core"
	"github.com/nickbhorton/beamburst2/pkg/geometry"
	"github.com/nickbhorton/beamburst2/pkg/material"
	"github.com/nickbhorton/beamburst2/pkg/scene"
)

func colorsClose(a, b core.Vec3, tolerance float64) bool {
	return a.Subtract(b).Length() <= tolerance
}

// One white matte sphere at the origin, lit from directly above
func litSphereScene(reflect float64) *scene.Scene {
	s := scene.New()
	mat := material.New(core.NewVec3(1, 1, 1), 0.1, 0.5, reflect)
	s.AddSurface(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, mat))
	s.AddLight(scene.NewLight(core.NewVec3(0, 10, 0), core.NewVec3(1, 1, 1)))
	return s
}

func TestRaytracer_Trace_Miss(t *testing.T) {
	rt := NewRaytracer(litSphereScene(0), Config{Width: 1, Height: 1, MaxDepth: 10})
	ray := core.NewRay(core.NewVec3(0, 5, 0), core.NewVec3(0, 1, 0))

	color := rt.Trace(ray)
	if color != (core.Vec3{}) {
		t.Errorf("Expected zero color for a miss, got %v", color)
	}
}

func TestRaytracer_Trace_AmbientAndDiffuse(t *testing.T) {
	// At the point on the sphere closest to the light the diffuse dot
	// product is exactly 1, and the epsilon nudge must prevent the
	// sphere from shadowing itself.
	rt := NewRaytracer(litSphereScene(0), Config{Width: 1, Height: 1, MaxDepth: 10})
	ray := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0))

	color := rt.Trace(ray)

	// ambient 0.1*(1,1,1) + diffuse 0.5*1.0*(1,1,1)*(1,1,1)
	expected := core.NewVec3(0.6, 0.6, 0.6)
	if !colorsClose(color, expected, 1e-9) {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}

func TestRaytracer_Trace_Shadow(t *testing.T) {
	// A sphere directly between the hit point and the light suppresses
	// the diffuse term entirely, leaving only ambient
	s := litSphereScene(0)
	s.AddSurface(geometry.NewSphere(core.NewVec3(0, 5, 0), 1,
		material.New(core.NewVec3(1, 1, 1), 0.1, 0.5, 0)))

	rt := NewRaytracer(s, Config{Width: 1, Height: 1, MaxDepth: 10})
	ray := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0))

	color := rt.Trace(ray)

	expected := core.NewVec3(0.1, 0.1, 0.1)
	if !colorsClose(color, expected, 1e-9) {
		t.Errorf("Expected ambient-only %v, got %v", expected, color)
	}
}

func TestRaytracer_Trace_NonReflectiveTerminates(t *testing.T) {
	// reflect=0 zeroes the intensity after the first bounce, so extra
	// depth budget must not change the result
	ray := core.NewRay(core.NewVec3(0, 3, 0), core.NewVec3(0, -1, 0))

	shallow := NewRaytracer(litSphereScene(0), Config{Width: 1, Height: 1, MaxDepth: 1}).Trace(ray)
	deep := NewRaytracer(litSphereScene(0), Config{Width: 1, Height: 1, MaxDepth: 50}).Trace(ray)

	if !colorsClose(shallow, deep, 1e-12) {
		t.Errorf("Expected identical colors, got %v and %v", shallow, deep)
	}
}

func TestRaytracer_Trace_NearestHitWins(t *testing.T) {
	near := geometry.NewSphere(core.NewVec3(0, 0, 10), 1,
		material.New(core.NewVec3(1, 0, 0), 1, 0, 0))
	far := geometry.NewSphere(core.NewVec3(0, 0, 20), 1,
		material.New(core.NewVec3(0, 1, 0), 1, 0, 0))

	// Insertion order must not matter
	orders := [][]geometry.Surface{{near, far}, {far, near}}
	for _, order := range orders {
		s := scene.New()
		for _, surface := range order {
			s.AddSurface(surface)
		}

		rt := NewRaytracer(s, Config{Width: 1, Height: 1, MaxDepth: 10})
		color := rt.Trace(core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, 1)))

		expected := core.NewVec3(1, 0, 0)
		if !colorsClose(color, expected, 1e-9) {
			t.Errorf("Expected near sphere color %v, got %v", expected, color)
		}
	}
}

func TestRaytracer_Trace_Reflection(t *testing.T) {
	// A perfect mirror facing the camera bounces the ray straight back
	// onto an ambient-only sphere behind the camera
	s := scene.New()
	s.AddSurface(geometry.NewSphere(core.NewVec3(0, 0, 0), 1,
		material.New(core.NewVec3(1, 1, 1), 0, 0, 1)))
	s.AddSurface(geometry.NewSphere(core.NewVec3(0, 0, -10), 1,
		material.New(core.NewVec3(0.2, 0.3, 0.4), 1, 0, 0)))

	rt := NewRaytracer(s, Config{Width: 1, Height: 1, MaxDepth: 10})
	color := rt.Trace(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)))

	// Full intensity survives the mirror, so the second hit's ambient
	// term comes through unattenuated
	expected := core.NewVec3(0.2, 0.3, 0.4)
	if !colorsClose(color, expected, 1e-9) {
		t.Errorf("Expected reflected color %v, got %v", expected, color)
	}
}

func TestRaytracer_Trace_IntensityCutoff(t *testing.T) {
	// Two mirror hits at reflect=0.05 drop intensity to 0.0025, below
	// the cutoff, so a third surface in the bounce path contributes
	// ambient at the second hit but the loop ends there
	s := scene.New()
	dim := material.New(core.NewVec3(1, 1, 1), 0.5, 0, 0.05)
	s.AddSurface(geometry.NewSphere(core.NewVec3(0, 0, 0), 1, dim))
	s.AddSurface(geometry.NewSphere(core.NewVec3(0, 0, -10), 1, dim))

	rt := NewRaytracer(s, Config{Width: 1, Height: 1, MaxDepth: 50})
	color := rt.Trace(core.NewRay(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1)))

	// First hit: 1.0*0.5, second hit: 0.05*0.5, then cutoff
	expected := core.NewVec3(0.525, 0.525, 0.525)
	if !colorsClose(color, expected, 1e-9) {
		t.Errorf("Expected %v, got %v", expected, color)
	}
}
