package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/nickbhorton/beamburst2/pkg/core"
	"github.com/nickbhorton/beamburst2/pkg/geometry"
	"github.com/nickbhorton/beamburst2/pkg/material"
)

// sceneFile is the on-disk JSON scene format. Materials are declared
// once by name and referenced from each primitive.
type sceneFile struct {
	Materials map[string]materialSpec `json:"materials"`
	Lights    []lightSpec             `json:"lights"`
	Spheres   []sphereSpec            `json:"spheres"`
	Triangles []triangleSpec          `json:"triangles"`
}

type materialSpec struct {
	Color   [3]float64 `json:"color"`
	Ambient float64    `json:"ambient"`
	Diffuse float64    `json:"diffuse"`
	Reflect float64    `json:"reflect"`
}

type lightSpec struct {
	Position [3]float64 `json:"position"`
	Color    [3]float64 `json:"color"`
}

type sphereSpec struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

type triangleSpec struct {
	Vertices [3][3]float64 `json:"vertices"`
	Material string        `json:"material"`
}

func vec(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}

// Load reads and parses a JSON scene file
func Load(path string) (*Scene, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening scene %s: %w", path, err)
	}
	defer file.Close()

	s, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("parsing scene %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a JSON scene description. Malformed geometry (missing
// materials, non-positive radii, empty scenes) is rejected here so the
// tracing core only ever sees well-formed inputs.
func Parse(r io.Reader) (*Scene, error) {
	var f sceneFile
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("decoding scene: %w", err)
	}

	materials := make(map[string]material.Material, len(f.Materials))
	for name, m := range f.Materials {
		materials[name] = material.New(vec(m.Color), m.Ambient, m.Diffuse, m.Reflect)
	}

	lookup := func(name string) (material.Material, error) {
		m, ok := materials[name]
		if !ok {
			return material.Material{}, fmt.Errorf("material %q not defined", name)
		}
		return m, nil
	}

	s := New()
	for _, l := range f.Lights {
		s.AddLight(NewLight(vec(l.Position), vec(l.Color)))
	}
	for i, sp := range f.Spheres {
		if sp.Radius <= 0 {
			return nil, fmt.Errorf("sphere %d: radius must be positive, got %v", i, sp.Radius)
		}
		m, err := lookup(sp.Material)
		if err != nil {
			return nil, fmt.Errorf("sphere %d: %w", i, err)
		}
		s.AddSurface(geometry.NewSphere(vec(sp.Center), sp.Radius, m))
	}
	for i, tr := range f.Triangles {
		m, err := lookup(tr.Material)
		if err != nil {
			return nil, fmt.Errorf("triangle %d: %w", i, err)
		}
		s.AddSurface(geometry.NewTriangle(
			vec(tr.Vertices[0]), vec(tr.Vertices[1]), vec(tr.Vertices[2]), m))
	}

	if len(s.Surfaces()) == 0 {
		return nil, fmt.Errorf("scene contains no surfaces")
	}
	return s, nil
}
