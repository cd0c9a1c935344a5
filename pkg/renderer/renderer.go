package renderer

import (
	"runtime"
	"sync"
	"time"

	"github.com/nickbhorton/beamburst2/pkg/scene"
)

// Renderer drives the per-pixel loop for a scene and camera
type Renderer struct {
	raytracer *Raytracer
	camera    Camera
	config    Config
	sc        *scene.Scene
}

// NewRenderer creates a renderer for a scene and camera
func NewRenderer(sc *scene.Scene, camera Camera, config Config) *Renderer {
	return &Renderer{
		raytracer: NewRaytracer(sc, config),
		camera:    camera,
		config:    config,
		sc:        sc,
	}
}

// Render traces every pixel and returns the filled framebuffer. Rows
// are fanned out across workers; each pixel's trace is independent and
// deterministic and rows are disjoint framebuffer regions, so the
// worker count never changes the output.
func (r *Renderer) Render() (*Framebuffer, RenderStats) {
	start := time.Now()
	fb := NewFramebuffer(r.config.Width, r.config.Height)

	workers := r.config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	rows := make(chan int, r.config.Height)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range rows {
				r.renderRow(fb, j)
			}
		}()
	}

	for j := 0; j < r.config.Height; j++ {
		rows <- j
	}
	close(rows)
	wg.Wait()

	stats := RenderStats{
		Width:       r.config.Width,
		Height:      r.config.Height,
		Surfaces:    len(r.sc.Surfaces()),
		Lights:      len(r.sc.Lights()),
		PrimaryRays: r.config.Width * r.config.Height,
		Workers:     workers,
		Elapsed:     time.Since(start),
	}
	return fb, stats
}

// renderRow traces one full row of pixels into the framebuffer
func (r *Renderer) renderRow(fb *Framebuffer, j int) {
	for i := 0; i < r.config.Width; i++ {
		ray := r.camera.RayThrough(i, j)
		fb.Set(j, i, VecToRGBA(r.raytracer.Trace(ray)))
	}
}
