package renderer

import (
	"math"

	"github.com/nickbhorton/beamburst2/pkg/core"
)

// Camera maps integer pixel coordinates to primary rays. Directions
// are normalized so hit distances come back as parametric lengths.
type Camera interface {
	RayThrough(i, j int) core.Ray
}

// OrthographicCamera casts parallel rays along +Z from a plane 1000
// units behind the origin, with pixel (W/2, H/2) on the Z axis.
type OrthographicCamera struct {
	width  int
	height int
}

// NewOrthographicCamera creates the default camera for a WxH image
func NewOrthographicCamera(width, height int) *OrthographicCamera {
	return &OrthographicCamera{width: width, height: height}
}

// RayThrough returns the primary ray for pixel (i, j)
func (c *OrthographicCamera) RayThrough(i, j int) core.Ray {
	origin := core.NewVec3(
		float64(i-c.width/2),
		float64(j-c.height/2),
		-1000,
	)
	return core.NewRay(origin, core.NewVec3(0, 0, 1))
}

// PerspectiveCamera is a pinhole camera: all rays share one origin and
// pass through a viewport spanned by horizontal and vertical vectors
// from its lower-left corner.
type PerspectiveCamera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	width           int
	height          int
}

// NewPerspectiveCamera creates a pinhole camera at origin looking at
// lookAt, with the given vertical field of view in degrees.
func NewPerspectiveCamera(origin, lookAt core.Vec3, width, height int, fovDegrees float64) *PerspectiveCamera {
	aspectRatio := float64(width) / float64(height)
	viewportHeight := 2.0 * math.Tan(fovDegrees*math.Pi/360.0)
	viewportWidth := aspectRatio * viewportHeight

	forward := lookAt.Subtract(origin).Normalize()
	right := core.NewVec3(0, 1, 0).Cross(forward).Normalize()
	if right.Length() == 0 {
		// Looking straight up or down; any horizontal axis works
		right = core.NewVec3(1, 0, 0)
	}
	up := forward.Cross(right)

	horizontal := right.Multiply(viewportWidth)
	vertical := up.Multiply(viewportHeight)
	lowerLeftCorner := origin.Add(forward).
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5))

	return &PerspectiveCamera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		width:           width,
		height:          height,
	}
}

// RayThrough returns the primary ray through the center of pixel (i, j)
func (c *PerspectiveCamera) RayThrough(i, j int) core.Ray {
	s := (float64(i) + 0.5) / float64(c.width)
	t := (float64(j) + 0.5) / float64(c.height)

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Normalize()

	return core.NewRay(c.origin, direction)
}
