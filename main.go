package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli"

	"github.com/nickbhorton/beamburst2/cmd"
)

func newApp() *cli.App {
	// Claim the long form only; the -v shorthand belongs to verbosity
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "beamburst"
	app.Usage = "render scenes by recursive ray tracing"
	app.Version = "2.0.0"
	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "v",
			Usage: "enable verbose logging",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "enable even more verbose logging",
		},
	}
	app.Before = cmd.SetupLogging

	sceneFlag := cli.StringFlag{
		Name:  "scene, s",
		Value: "mirror",
		Usage: "builtin scene name ('mirror') or path to a scene JSON file",
	}

	app.Commands = []cli.Command{
		{
			Name:  "render",
			Usage: "render a scene to a PNG file",
			Flags: []cli.Flag{
				sceneFlag,
				cli.IntFlag{
					Name:  "width",
					Value: 512,
					Usage: "frame width",
				},
				cli.IntFlag{
					Name:  "height",
					Value: 512,
					Usage: "frame height",
				},
				cli.IntFlag{
					Name:  "depth",
					Value: 10,
					Usage: "maximum reflection depth",
				},
				cli.IntFlag{
					Name:  "workers",
					Usage: "render workers (0 = one per CPU)",
				},
				cli.StringFlag{
					Name:  "camera",
					Value: "orthographic",
					Usage: "camera model: orthographic or perspective",
				},
				cli.StringFlag{
					Name:  "out, o",
					Value: "render.png",
					Usage: "image filename for the rendered frame",
				},
				cli.IntFlag{
					Name:  "thumb",
					Usage: "also write a thumbnail with this maximum edge length",
				},
			},
			Action: cmd.RenderFrame,
		},
		{
			Name:   "describe",
			Usage:  "print a summary of a scene's surfaces and lights",
			Flags:  []cli.Flag{sceneFlag},
			Action: cmd.Describe,
		},
		{
			Name:  "serve",
			Usage: "run the HTTP render service",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "addr",
					Usage: "listen address (overrides BEAMBURST_ADDR)",
				},
			},
			Action: cmd.Serve,
		},
	}

	return app
}

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
