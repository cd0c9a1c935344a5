package renderer

import "time"

// RenderStats summarizes a completed render
type RenderStats struct {
	Width       int           // Image width in pixels
	Height      int           // Image height in pixels
	Surfaces    int           // Surfaces scanned per ray
	Lights      int           // Lights shaded per hit
	PrimaryRays int           // One per pixel
	Workers     int           // Workers used for the row fan-out
	Elapsed     time.Duration // Wall-clock render time
}
