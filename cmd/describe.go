package cmd

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/nickbhorton/beamburst2/pkg/core"
	"github.com/nickbhorton/beamburst2/pkg/geometry"
)

// Describe prints a summary of a scene's surfaces and lights.
func Describe(ctx *cli.Context) error {
	sc, err := loadScene(ctx.String("scene"))
	if err != nil {
		return err
	}

	surfaces := tablewriter.NewWriter(os.Stdout)
	surfaces.SetHeader([]string{"#", "Kind", "Geometry", "Color", "Ambient", "Diffuse", "Reflect"})
	for i, surface := range sc.Surfaces() {
		var kind, geom string
		switch obj := surface.(type) {
		case *geometry.Sphere:
			kind = "sphere"
			geom = fmt.Sprintf("center %s r %.5g", fmtVec(obj.Center), obj.Radius)
		case *geometry.Triangle:
			kind = "triangle"
			geom = fmt.Sprintf("%s %s %s", fmtVec(obj.V0), fmtVec(obj.V1), fmtVec(obj.V2))
		default:
			kind = fmt.Sprintf("%T", surface)
		}
		mat := surface.Material()
		surfaces.Append([]string{
			fmt.Sprintf("%d", i),
			kind,
			geom,
			fmtVec(mat.Color),
			fmtCoeff(mat.Ambient),
			fmtCoeff(mat.Diffuse),
			fmtCoeff(mat.Reflect),
		})
	}
	surfaces.Render()

	lights := tablewriter.NewWriter(os.Stdout)
	lights.SetHeader([]string{"#", "Position", "Color"})
	for i, light := range sc.Lights() {
		lights.Append([]string{
			fmt.Sprintf("%d", i),
			fmtVec(light.Position),
			fmtVec(light.Color),
		})
	}
	lights.Render()

	return nil
}

func fmtVec(v core.Vec3) string {
	return fmt.Sprintf("(%.5g, %.5g, %.5g)", v.X, v.Y, v.Z)
}

func fmtCoeff(f float64) string {
	return fmt.Sprintf("%.3g", f)
}
