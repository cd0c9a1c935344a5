package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"

	"github.com/nickbhorton/beamburst2/pkg/core"
	"github.com/nickbhorton/beamburst2/pkg/renderer"
)

// RenderFrame renders a scene to a PNG file.
func RenderFrame(ctx *cli.Context) error {
	sc, err := loadScene(ctx.String("scene"))
	if err != nil {
		return err
	}

	config := renderer.Config{
		Width:    ctx.Int("width"),
		Height:   ctx.Int("height"),
		MaxDepth: ctx.Int("depth"),
		Workers:  ctx.Int("workers"),
	}

	var cam renderer.Camera
	switch ctx.String("camera") {
	case "", "orthographic":
		cam = renderer.NewOrthographicCamera(config.Width, config.Height)
	case "perspective":
		cam = renderer.NewPerspectiveCamera(
			core.NewVec3(0, 0, -1000),
			core.NewVec3(0, 0, 0),
			config.Width, config.Height,
			40,
		)
	default:
		return fmt.Errorf("unknown camera model %q", ctx.String("camera"))
	}

	logger.Debugf("rendering %dx%d, depth %d", config.Width, config.Height, config.MaxDepth)

	fb, stats := renderer.NewRenderer(sc, cam, config).Render()
	logger.Noticef("traced %d primary rays over %d surfaces in %v (%d workers)",
		stats.PrimaryRays, stats.Surfaces, stats.Elapsed, stats.Workers)

	out := ctx.String("out")
	if err := fb.Save(out); err != nil {
		return err
	}
	logger.Noticef("wrote %s", out)

	if thumbSize := ctx.Int("thumb"); thumbSize > 0 {
		thumbPath := thumbName(out)
		if err := fb.SaveThumbnail(thumbPath, thumbSize); err != nil {
			return err
		}
		logger.Noticef("wrote %s", thumbPath)
	}
	return nil
}

// thumbName derives a thumbnail path: render.png -> render_thumb.png
func thumbName(out string) string {
	if idx := strings.LastIndex(out, "."); idx > 0 {
		return out[:idx] + "_thumb" + out[idx:]
	}
	return out + "_thumb"
}
