package synth

import (
	"math"
	"math/rand"

	"github.com/unixpickle/model3d/model3d"
)

// A Pose is the placement of an object in the world: a position and a
// rotation around the world Z axis.
type Pose struct {
	Position model3d.Coord3D `json:"position"`
	Yaw      float64         `json:"yaw"`
}

// Apply maps a coordinate from the object's local space into world space,
// rotating by Yaw and then translating by Position.
func (p Pose) Apply(c model3d.Coord3D) model3d.Coord3D {
	sin, cos := math.Sincos(p.Yaw)
	return model3d.XYZ(
		c.X*cos-c.Y*sin+p.Position.X,
		c.X*sin+c.Y*cos+p.Position.Y,
		c.Z+p.Position.Z,
	)
}

// A PoseSample is one random draw from a PoseSampler.
type PoseSample struct {
	X   float64
	Y   float64
	Yaw float64
}

// Radius returns the distance of the sample from the origin of the XY plane.
func (p PoseSample) Radius() float64 {
	return math.Hypot(p.X, p.Y)
}

// Apply overwrites the X and Y position and the yaw of base.
// The Z position is kept.
func (p PoseSample) Apply(base Pose) Pose {
	base.Position.X = p.X
	base.Position.Y = p.Y
	base.Yaw = p.Yaw
	return base
}

// A PoseSampler draws random positions within a disk and random yaw
// rotations within a symmetric range.
type PoseSampler struct {
	// Radius is the maximum distance from the origin.
	Radius float64

	// MaxRotation bounds the yaw, which is drawn from [-MaxRotation,
	// MaxRotation].
	MaxRotation float64

	// Mode selects the position distribution. If empty, PolarSampling is
	// used.
	//
	// PolarSampling draws the radius uniformly, so samples are denser near
	// the center than a uniform disk would be.
	Mode SamplingMode
}

// Sample draws a new pose using r.
func (p *PoseSampler) Sample(r *rand.Rand) PoseSample {
	angle := r.Float64() * 2 * math.Pi
	var radius float64
	if p.Mode == UniformSampling {
		radius = math.Sqrt(r.Float64()) * p.Radius
	} else {
		radius = r.Float64() * p.Radius
	}
	yaw := -p.MaxRotation + 2*p.MaxRotation*r.Float64()
	return PoseSample{
		X:   math.Cos(angle) * radius,
		Y:   math.Sin(angle) * radius,
		Yaw: yaw,
	}
}
