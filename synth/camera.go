package synth

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/render3d"
)

// A Camera is a perspective camera with a square field of view.
//
// Forward, Right and Up form an orthonormal basis.
type Camera struct {
	Origin  model3d.Coord3D
	Forward model3d.Coord3D
	Right   model3d.Coord3D
	Up      model3d.Coord3D

	// FieldOfView is the full viewing angle, in radians, along both image
	// axes.
	FieldOfView float64
}

// NewCameraAt creates a camera at origin looking at target, keeping the
// world Z axis pointing up in the image.
func NewCameraAt(origin, target model3d.Coord3D, fov float64) *Camera {
	forward := target.Sub(origin).Normalize()
	right := forward.Cross(model3d.Z(1))
	if right.Norm() < 1e-8 {
		// Looking straight up or down.
		right = model3d.X(1)
	}
	right = right.Normalize()
	up := right.Cross(forward).Normalize()
	return &Camera{
		Origin:      origin,
		Forward:     forward,
		Right:       right,
		Up:          up,
		FieldOfView: fov,
	}
}

// A ViewPoint is a point in normalized camera-view space.
//
// X and Y are in [0, 1] for points inside the frame, measured from the
// bottom-left corner of the image. Z is the depth along the view direction,
// which is negative for points behind the camera.
type ViewPoint struct {
	X float64
	Y float64
	Z float64
}

// View maps a world-space point into camera-view space.
//
// Points behind the camera are divided by a negative depth, so their X and Y
// are mirrored through the image center. A point with zero depth maps to the
// image center.
//
// render3d.Camera.Uncaster is not used here since it drops the sign of the
// depth, which visibility checks depend on.
func (c *Camera) View(p model3d.Coord3D) ViewPoint {
	rel := p.Sub(c.Origin)
	depth := rel.Dot(c.Forward)
	if depth == 0 {
		return ViewPoint{X: 0.5, Y: 0.5, Z: 0}
	}
	halfExtent := depth * math.Tan(c.FieldOfView/2)
	return ViewPoint{
		X: (rel.Dot(c.Right)/halfExtent + 1) / 2,
		Y: (rel.Dot(c.Up)/halfExtent + 1) / 2,
		Z: depth,
	}
}

// ViewAll maps every point with View.
func (c *Camera) ViewAll(points []model3d.Coord3D) []ViewPoint {
	res := make([]ViewPoint, len(points))
	for i, p := range points {
		res[i] = c.View(p)
	}
	return res
}

// RenderCamera creates an equivalent camera for render3d, whose screen Y
// axis points down the image.
func (c *Camera) RenderCamera() *render3d.Camera {
	return &render3d.Camera{
		Origin:      c.Origin,
		ScreenX:     c.Right,
		ScreenY:     c.Up.Scale(-1),
		FieldOfView: c.FieldOfView,
	}
}
