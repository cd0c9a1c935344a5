package renderer

import (
	"math"
	"runtime"

	"github.com/nickbhorton/beamburst2/pkg/core"
	"github.com/nickbhorton/beamburst2/pkg/geometry"
	"github.com/nickbhorton/beamburst2/pkg/scene"
)

// IntensityCutoff ends the bounce loop once the accumulated
// reflectivity can no longer contribute visibly.
const IntensityCutoff = 0.01

// Config contains rendering configuration
type Config struct {
	Width    int // Image width in pixels
	Height   int // Image height in pixels
	MaxDepth int // Maximum reflection depth per primary ray
	Workers  int // Render workers; 0 means one per CPU
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		Width:    512,
		Height:   512,
		MaxDepth: 10,
		Workers:  runtime.NumCPU(),
	}
}

// Raytracer traces individual rays through a scene
type Raytracer struct {
	scene  *scene.Scene
	config Config
}

// NewRaytracer creates a new raytracer for a scene
func NewRaytracer(sc *scene.Scene, config Config) *Raytracer {
	return &Raytracer{scene: sc, config: config}
}

// hitScene scans all surfaces and returns the one with the nearest
// valid hit along the ray
func (rt *Raytracer) hitScene(ray core.Ray) (geometry.Surface, float64, bool) {
	var closest geometry.Surface
	closestT := math.MaxFloat64

	for _, surface := range rt.scene.Surfaces() {
		if t, ok := surface.Hit(ray, core.Epsilon, closestT); ok {
			closest = surface
			closestT = t
		}
	}
	return closest, closestT, closest != nil
}

// occluded reports whether any surface lies along the ray. Shadow rays
// are unbounded: an occluder beyond the light still shadows the point.
func (rt *Raytracer) occluded(ray core.Ray) bool {
	for _, surface := range rt.scene.Surfaces() {
		if _, ok := surface.Hit(ray, core.Epsilon, math.MaxFloat64); ok {
			return true
		}
	}
	return false
}

// Trace follows a primary ray through up to MaxDepth mirror bounces,
// accumulating ambient and shadow-tested diffuse lighting at each hit.
// It returns the accumulated color when the ray escapes the scene, the
// running intensity falls below IntensityCutoff, or the depth budget
// is exhausted.
func (rt *Raytracer) Trace(ray core.Ray) core.Vec3 {
	var color core.Vec3
	intensity := 1.0

	for depth := 0; depth < rt.config.MaxDepth; depth++ {
		surface, t, ok := rt.hitScene(ray)
		if !ok {
			return color
		}

		hitPoint := ray.At(t)
		normal := surface.NormalAt(hitPoint)
		// Secondary rays start just off the surface
		hitPoint = hitPoint.Add(normal.Multiply(core.Epsilon))

		mat := surface.Material()
		color = color.Add(mat.Color.Multiply(intensity * mat.Ambient))

		for _, light := range rt.scene.Lights() {
			lightDir := light.Position.Subtract(hitPoint).Normalize()
			lambert := normal.Dot(lightDir)
			if lambert <= 0 {
				// Surface faces away from the light
				continue
			}
			if rt.occluded(core.NewRay(hitPoint, lightDir)) {
				continue
			}
			color = color.Add(light.Color.MultiplyVec(mat.Color).
				Multiply(intensity * mat.Diffuse * lambert))
		}

		intensity *= mat.Reflect
		if intensity < IntensityCutoff {
			return color
		}
		ray = core.NewRay(hitPoint, ray.Direction.Reflect(normal).Normalize())
	}
	return color
}
