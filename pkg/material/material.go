package material

import "github.com/nickbhorton/beamburst2/pkg/core"

// Material describes a surface: a base color and three scalar
// coefficients. Ambient scales the unconditional base illumination,
// Diffuse scales the light-facing contribution, and Reflect is the
// fraction of ray intensity carried into the reflected bounce.
// Components are not clamped or normalized at this layer.
type Material struct {
	Color   core.Vec3
	Ambient float64
	Diffuse float64
	Reflect float64
}

// New creates a material from a color and its three coefficients
func New(color core.Vec3, ambient, diffuse, reflect float64) Material {
	return Material{
		Color:   color,
		Ambient: ambient,
		Diffuse: diffuse,
		Reflect: reflect,
	}
}

// Mirror is a highly reflective, faintly green surface
func Mirror() Material {
	return New(core.NewVec3(0.9, 1.0, 0.9), 0.01, 0.99, 0.99)
}

// Matte is a warm, mostly diffuse surface with a slight sheen
func Matte() Material {
	return New(core.NewVec3(1.0, 0.8, 0.6), 0.3, 0.7, 0.2)
}
