package cmd

import (
	"github.com/urfave/cli"

	"github.com/nickbhorton/beamburst2/pkg/server"
)

// Serve runs the HTTP render service.
func Serve(ctx *cli.Context) error {
	cfg := server.ConfigFromEnv()
	if addr := ctx.String("addr"); addr != "" {
		cfg.Addr = addr
	}

	srv, err := server.New(cfg)
	if err != nil {
		return err
	}
	return srv.ListenAndServe()
}
