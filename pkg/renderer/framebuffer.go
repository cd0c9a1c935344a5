package renderer

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/nickbhorton/beamburst2/pkg/core"
)

// Framebuffer is the image sink: per-pixel 8-bit RGBA storage plus
// encoding to disk
type Framebuffer struct {
	img    *image.RGBA
	width  int
	height int
}

// NewFramebuffer creates a zeroed width x height framebuffer
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
}

// Set writes one pixel at (row, col)
func (fb *Framebuffer) Set(row, col int, c color.RGBA) {
	fb.img.SetRGBA(col, row, c)
}

// Image returns the underlying RGBA image
func (fb *Framebuffer) Image() *image.RGBA {
	return fb.img
}

// Save encodes the framebuffer as a PNG file. A failure to open the
// file or encode the image aborts the render and is returned to the
// caller.
func (fb *Framebuffer) Save(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.img); err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}

// SaveThumbnail writes a downscaled copy whose longer edge is at most
// maxSize pixels
func (fb *Framebuffer) SaveThumbnail(path string, maxSize int) error {
	thumb := resize.Thumbnail(uint(maxSize), uint(maxSize), fb.img, resize.Lanczos3)
	if err := imaging.Save(thumb, path); err != nil {
		return fmt.Errorf("saving thumbnail %s: %w", path, err)
	}
	return nil
}

// VecToRGBA converts a floating-point color to 8-bit RGBA: each
// channel is scaled by 255, rounded to nearest, and clamped to
// [0, 255]. Alpha is fixed at full opacity.
func VecToRGBA(c core.Vec3) color.RGBA {
	return color.RGBA{
		R: clampChannel(c.X),
		G: clampChannel(c.Y),
		B: clampChannel(c.Z),
		A: 255,
	}
}

// clampChannel never wraps: NaN and negative values map to 0,
// overrange and +Inf to 255
func clampChannel(f float64) uint8 {
	v := math.Round(f * 255.0)
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
