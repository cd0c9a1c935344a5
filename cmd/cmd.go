package cmd

import (
	"github.com/urfave/cli"

	"github.com/nickbhorton/beamburst2/pkg/log"
	"github.com/nickbhorton/beamburst2/pkg/scene"
)

var logger = log.New("beamburst")

// SetupLogging applies the global verbosity flags before any command
// action runs.
func SetupLogging(ctx *cli.Context) error {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}
	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
	return nil
}

// loadScene resolves a builtin scene name or a scene file path
func loadScene(name string) (*scene.Scene, error) {
	switch name {
	case "", "mirror", "default":
		return scene.NewMirrorScene(), nil
	}
	return scene.Load(name)
}
