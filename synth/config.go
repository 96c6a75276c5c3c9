package synth

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// SamplingMode selects how positions are drawn from the movement disk.
type SamplingMode string

const (
	// PolarSampling draws an angle and a radius independently, which
	// concentrates positions near the center of the disk.
	PolarSampling SamplingMode = "polar"

	// UniformSampling draws positions with uniform areal density.
	UniformSampling SamplingMode = "uniform"
)

// LabelOrigin is the corner of the image which label coordinates are
// measured from.
type LabelOrigin string

const (
	BottomLeft LabelOrigin = "bottom-left"
	TopLeft    LabelOrigin = "top-left"
)

const DefaultRenderEngine = "raycast"

// Config stores every option for a generation run.
//
// A Config is treated as immutable once a Generator starts; the Generator
// keeps its own copy.
type Config struct {
	OutputDir   string  `yaml:"output_dir" json:"output_dir"`
	ImageCount  int     `yaml:"image_count" json:"image_count"`
	Resolution  int     `yaml:"resolution" json:"resolution"`
	ClassID     int     `yaml:"class_id" json:"class_id"`
	ObjectName  string  `yaml:"object_name" json:"object_name"`
	CameraName  string  `yaml:"camera_name" json:"camera_name"`
	MoveRadius  float64 `yaml:"move_radius" json:"move_radius"`
	MaxRotation float64 `yaml:"max_rotation" json:"max_rotation"`

	RenderEngine  string       `yaml:"render_engine" json:"render_engine"`
	RenderSamples int          `yaml:"render_samples" json:"render_samples"`
	Sampling      SamplingMode `yaml:"sampling" json:"sampling"`
	LabelOrigin   LabelOrigin  `yaml:"label_origin" json:"label_origin"`
}

// DefaultConfig returns the configuration used when no file or flag
// overrides an option.
func DefaultConfig() *Config {
	return &Config{
		OutputDir:     "dataset",
		ImageCount:    50,
		Resolution:    1024,
		ClassID:       0,
		ObjectName:    "Table",
		CameraName:    "Camera",
		MoveRadius:    5,
		MaxRotation:   15 * math.Pi / 180,
		RenderEngine:  DefaultRenderEngine,
		RenderSamples: 4,
		Sampling:      PolarSampling,
		LabelOrigin:   BottomLeft,
	}
}

// LoadConfig reads a YAML config file on top of DefaultConfig().
//
// Keys missing from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML data on top of DefaultConfig() and validates
// the result.
func ParseConfig(data []byte) (*Config, error) {
	c := DefaultConfig()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Save writes the config as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "save config")
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(err, "save config")
	}
	return nil
}

// Validate checks that every option is in range.
func (c *Config) Validate() error {
	switch {
	case c.OutputDir == "":
		return errors.New("invalid config: output_dir is empty")
	case c.ImageCount < 0:
		return errors.Errorf("invalid config: image_count %d is negative", c.ImageCount)
	case c.Resolution <= 0:
		return errors.Errorf("invalid config: resolution %d must be positive", c.Resolution)
	case c.ClassID < 0:
		return errors.Errorf("invalid config: class_id %d is negative", c.ClassID)
	case c.ObjectName == "":
		return errors.New("invalid config: object_name is empty")
	case c.CameraName == "":
		return errors.New("invalid config: camera_name is empty")
	case c.MoveRadius < 0 || math.IsNaN(c.MoveRadius) || math.IsInf(c.MoveRadius, 0):
		return errors.Errorf("invalid config: move_radius %f", c.MoveRadius)
	case c.MaxRotation < 0 || math.IsNaN(c.MaxRotation) || math.IsInf(c.MaxRotation, 0):
		return errors.Errorf("invalid config: max_rotation %f", c.MaxRotation)
	case c.RenderSamples <= 0:
		return errors.Errorf("invalid config: render_samples %d must be positive", c.RenderSamples)
	}
	if c.RenderEngine == "" {
		return errors.New("invalid config: render_engine is empty")
	}
	if c.Sampling != PolarSampling && c.Sampling != UniformSampling {
		return errors.Errorf("invalid config: unknown sampling mode %q", c.Sampling)
	}
	if c.LabelOrigin != BottomLeft && c.LabelOrigin != TopLeft {
		return errors.Errorf("invalid config: unknown label origin %q", c.LabelOrigin)
	}
	return nil
}

// Sampler creates the pose sampler described by the config.
func (c *Config) Sampler() *PoseSampler {
	return &PoseSampler{
		Radius:      c.MoveRadius,
		MaxRotation: c.MaxRotation,
		Mode:        c.Sampling,
	}
}

// RenderSettings returns the settings to pass to the scene.
func (c *Config) RenderSettings() RenderSettings {
	return RenderSettings{
		Engine:     c.RenderEngine,
		Samples:    c.RenderSamples,
		Resolution: c.Resolution,
	}
}
