package synth

import (
	"math"
	"math/rand"
	"testing"

	"github.com/unixpickle/model3d/model3d"
)

func TestPoseSamplerRanges(t *testing.T) {
	for _, mode := range []SamplingMode{PolarSampling, UniformSampling} {
		sampler := &PoseSampler{Radius: 5, MaxRotation: math.Pi / 12, Mode: mode}
		r := rand.New(rand.NewSource(1337))
		var minYaw, maxYaw float64
		for i := 0; i < 50000; i++ {
			s := sampler.Sample(r)
			if s.Radius() > sampler.Radius+1e-8 {
				t.Fatalf("%s: radius %f exceeds %f", mode, s.Radius(), sampler.Radius)
			}
			if math.Abs(s.Yaw) > sampler.MaxRotation {
				t.Fatalf("%s: yaw %f exceeds %f", mode, s.Yaw, sampler.MaxRotation)
			}
			minYaw = math.Min(minYaw, s.Yaw)
			maxYaw = math.Max(maxYaw, s.Yaw)
		}
		// The yaw range should be covered almost entirely.
		if minYaw > -sampler.MaxRotation*0.99 || maxYaw < sampler.MaxRotation*0.99 {
			t.Errorf("%s: yaw range [%f, %f] is too narrow", mode, minYaw, maxYaw)
		}
	}
}

func TestPoseSamplerDensity(t *testing.T) {
	cases := []struct {
		Mode          SamplingMode
		InnerFraction float64
		MeanRadius    float64
	}{
		// Radius is uniform, so half of all samples are within half the radius.
		{PolarSampling, 0.5, 0.5},
		// Area is uniform, so a quarter are within half the radius.
		{UniformSampling, 0.25, 2.0 / 3},
	}
	for _, c := range cases {
		sampler := &PoseSampler{Radius: 2, MaxRotation: 1, Mode: c.Mode}
		r := rand.New(rand.NewSource(1337))
		const n = 100000
		var inner int
		var totalRadius float64
		for i := 0; i < n; i++ {
			radius := sampler.Sample(r).Radius()
			if radius < sampler.Radius/2 {
				inner++
			}
			totalRadius += radius
		}
		if frac := float64(inner) / n; math.Abs(frac-c.InnerFraction) > 0.01 {
			t.Errorf("%s: inner fraction should be %f but got %f", c.Mode, c.InnerFraction, frac)
		}
		meanRadius := totalRadius / n / sampler.Radius
		if math.Abs(meanRadius-c.MeanRadius) > 0.01 {
			t.Errorf("%s: mean radius should be %f but got %f", c.Mode, c.MeanRadius, meanRadius)
		}
	}
}

func TestPoseSamplerDefaultMode(t *testing.T) {
	polar := &PoseSampler{Radius: 3, MaxRotation: 0.5, Mode: PolarSampling}
	unset := &PoseSampler{Radius: 3, MaxRotation: 0.5}
	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		if s1, s2 := polar.Sample(r1), unset.Sample(r2); s1 != s2 {
			t.Fatalf("sample %d differs: %+v vs %+v", i, s1, s2)
		}
	}
}

func TestPoseSamplerZeroRanges(t *testing.T) {
	sampler := &PoseSampler{}
	r := rand.New(rand.NewSource(1337))
	for i := 0; i < 100; i++ {
		if s := sampler.Sample(r); s != (PoseSample{}) {
			t.Fatalf("expected zero sample but got %+v", s)
		}
	}
}

func TestPoseSampleApply(t *testing.T) {
	base := Pose{Position: model3d.XYZ(1, 2, 3), Yaw: 0.7}
	pose := PoseSample{X: -4, Y: 5, Yaw: -0.1}.Apply(base)
	expected := Pose{Position: model3d.XYZ(-4, 5, 3), Yaw: -0.1}
	if pose != expected {
		t.Errorf("expected %+v but got %+v", expected, pose)
	}
}

func TestPoseApply(t *testing.T) {
	pose := Pose{Position: model3d.XYZ(1, 2, 3), Yaw: math.Pi / 2}
	actual := pose.Apply(model3d.XYZ(1, 0, 1))
	expected := model3d.XYZ(1, 3, 4)
	if actual.Dist(expected) > 1e-8 {
		t.Errorf("expected %v but got %v", expected, actual)
	}

	// Rotation preserves distances from the Z axis.
	r := rand.New(rand.NewSource(1337))
	for i := 0; i < 100; i++ {
		p := Pose{Yaw: r.Float64()*4 - 2}
		c := model3d.XYZ(r.NormFloat64(), r.NormFloat64(), r.NormFloat64())
		mapped := p.Apply(c)
		if math.Abs(mapped.Z-c.Z) > 1e-8 ||
			math.Abs(math.Hypot(mapped.X, mapped.Y)-math.Hypot(c.X, c.Y)) > 1e-8 {
			t.Fatalf("rotation of %v by %f changed its radius: %v", c, p.Yaw, mapped)
		}
	}
}
