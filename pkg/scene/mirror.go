package scene

import (
	"github.com/nickbhorton/beamburst2/pkg/core"
	"github.com/nickbhorton/beamburst2/pkg/geometry"
	"github.com/nickbhorton/beamburst2/pkg/material"
)

// NewMirrorScene builds the classic beamburst scene: two mirror
// spheres and a matte sphere over a matte ground triangle, lit by five
// colored point lights.
func NewMirrorScene() *Scene {
	mirror := material.Mirror()
	matte := material.Matte()

	s := New()

	s.AddLight(NewLight(core.NewVec3(-500, 0, 100), core.NewVec3(1, 0, 0)))
	s.AddLight(NewLight(core.NewVec3(500, 0, 100), core.NewVec3(0, 1, 0)))
	s.AddLight(NewLight(core.NewVec3(0, 500, -100), core.NewVec3(0, 0, 1)))
	s.AddLight(NewLight(core.NewVec3(0, -500, -100), core.NewVec3(0, 1, 1)))
	s.AddLight(NewLight(core.NewVec3(0, 0, 100), core.NewVec3(1, 1, 0)))

	s.AddSurface(geometry.NewSphere(core.NewVec3(-87, -50, 0), 100, mirror))
	s.AddSurface(geometry.NewSphere(core.NewVec3(87, -50, 0), 100, mirror))
	s.AddSurface(geometry.NewSphere(core.NewVec3(0, 100, 0), 100, matte))
	s.AddSurface(geometry.NewTriangle(
		core.NewVec3(-1000, -1000, 0),
		core.NewVec3(1000, -1000, 0),
		core.NewVec3(1000, 1000, 0),
		matte,
	))

	return s
}
