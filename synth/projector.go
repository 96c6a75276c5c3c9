package synth

import (
	"math"

	"github.com/unixpickle/model3d/model3d"
	"golang.org/x/exp/constraints"
)

// A Box is an axis-aligned rectangle in normalized image coordinates.
type Box struct {
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
}

// Min returns the lower corner of the box.
func (b Box) Min() (x, y float64) {
	return b.CenterX - b.Width/2, b.CenterY - b.Height/2
}

// Max returns the upper corner of the box.
func (b Box) Max() (x, y float64) {
	return b.CenterX + b.Width/2, b.CenterY + b.Height/2
}

// FlipY mirrors the box vertically, converting between bottom-left and
// top-left origins.
func (b Box) FlipY() Box {
	b.CenterY = 1 - b.CenterY
	return b
}

// BoxCorners returns the eight corners of the bounding box spanned by min and
// max.
func BoxCorners(min, max model3d.Coord3D) [8]model3d.Coord3D {
	var res [8]model3d.Coord3D
	for i := range res {
		c := min
		if i&1 != 0 {
			c.X = max.X
		}
		if i&2 != 0 {
			c.Y = max.Y
		}
		if i&4 != 0 {
			c.Z = max.Z
		}
		res[i] = c
	}
	return res
}

// ProjectBox computes the normalized image-space bounding box of the given
// world-space corners as seen by cam.
//
// The second return value is false if the object is not visible, either
// because every corner is behind the camera or because the clamped box is
// empty.
func ProjectBox(cam *Camera, corners [8]model3d.Coord3D) (Box, bool) {
	return ViewBox(cam.ViewAll(corners[:]))
}

// ViewBox computes the bounding box of view-space points, clamped to the
// frame.
//
// Corners are never excluded individually: points behind the camera or
// outside of the frame still contribute to the extrema before clamping, so a
// box which straddles the camera plane may be distorted.
func ViewBox(points []ViewPoint) (Box, bool) {
	if len(points) == 0 {
		return Box{}, false
	}
	allBehind := true
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range points {
		if p.Z >= 0 {
			allBehind = false
		}
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	if allBehind {
		return Box{}, false
	}

	minX, maxX = clamp(minX, 0, 1), clamp(maxX, 0, 1)
	minY, maxY = clamp(minY, 0, 1), clamp(maxY, 0, 1)
	if maxX <= minX || maxY <= minY {
		return Box{}, false
	}
	return Box{
		CenterX: (minX + maxX) / 2,
		CenterY: (minY + maxY) / 2,
		Width:   maxX - minX,
		Height:  maxY - minY,
	}, true
}

func clamp[F constraints.Float](x, min, max F) F {
	if x < min {
		return min
	} else if x > max {
		return max
	}
	return x
}
