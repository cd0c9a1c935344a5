package scene

import (
	"github.com/nickbhorton/beamburst2/pkg/core"
	"github.com/nickbhorton/beamburst2/pkg/geometry"
)

// Light is an additive point light with no distance falloff
type Light struct {
	Position core.Vec3
	Color    core.Vec3
}

// NewLight creates a new point light
func NewLight(position, color core.Vec3) Light {
	return Light{Position: position, Color: color}
}

// Scene owns all surfaces and lights. Both are added during
// construction and never mutated or removed afterward, so a scene can
// be read concurrently by every pixel's trace. There is no spatial
// index; consumers scan surfaces linearly.
type Scene struct {
	surfaces []geometry.Surface
	lights   []Light
}

// New creates an empty scene
func New() *Scene {
	return &Scene{}
}

// AddSurface appends a surface. Only valid during scene construction.
func (s *Scene) AddSurface(surface geometry.Surface) {
	s.surfaces = append(s.surfaces, surface)
}

// AddLight appends a light. Only valid during scene construction.
func (s *Scene) AddLight(light Light) {
	s.lights = append(s.lights, light)
}

// Surfaces returns all surfaces in insertion order
func (s *Scene) Surfaces() []geometry.Surface {
	return s.surfaces
}

// Lights returns all lights in insertion order
func (s *Scene) Lights() []Light {
	return s.lights
}
