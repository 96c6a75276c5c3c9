package meshscene

import (
	"math"
	"os"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"gopkg.in/yaml.v3"
)

// A Vec is a 3D vector written as a YAML sequence, e.g. [1, 2, 3].
type Vec [3]float64

func (v Vec) Coord() model3d.Coord3D {
	return model3d.NewCoord3DArray(v)
}

// A Description lists the contents of a scene.
type Description struct {
	Objects []*ObjectDescription `yaml:"objects"`
	Cameras []*CameraDescription `yaml:"cameras"`
	Lights  []*LightDescription  `yaml:"lights"`
}

// An ObjectDescription specifies a named object, either loaded from a
// mesh file or created as an axis-aligned box.
type ObjectDescription struct {
	Name string `yaml:"name"`

	// Mesh is a path to an STL or OBJ file, relative to the description.
	Mesh string `yaml:"mesh,omitempty"`

	// Box is used when Mesh is empty.
	Box *BoxDescription `yaml:"box,omitempty"`

	Location  Vec     `yaml:"location"`
	RotationZ float64 `yaml:"rotation_z"`

	// Color is an RGB color in [0, 1]. Defaults to light gray.
	Color *Vec `yaml:"color,omitempty"`
}

type BoxDescription struct {
	Min Vec `yaml:"min"`
	Max Vec `yaml:"max"`
}

type CameraDescription struct {
	Name       string  `yaml:"name"`
	Origin     Vec     `yaml:"origin"`
	Target     Vec     `yaml:"target"`
	FOVDegrees float64 `yaml:"fov_degrees"`
}

type LightDescription struct {
	Origin    Vec     `yaml:"origin"`
	Intensity float64 `yaml:"intensity"`
}

// LoadDescription reads a YAML scene description.
func LoadDescription(path string) (*Description, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "load scene description")
	}
	return ParseDescription(data)
}

// ParseDescription decodes and validates a YAML scene description.
func ParseDescription(data []byte) (*Description, error) {
	var d Description
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, errors.Wrap(err, "parse scene description")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks for missing or duplicate names and degenerate cameras.
func (d *Description) Validate() error {
	names := map[string]bool{}
	for i, o := range d.Objects {
		if o.Name == "" {
			return errors.Errorf("invalid scene: object %d has no name", i)
		}
		if names[o.Name] {
			return errors.Errorf("invalid scene: duplicate object name %q", o.Name)
		}
		names[o.Name] = true
		if o.Mesh == "" && o.Box == nil {
			return errors.Errorf("invalid scene: object %q needs a mesh or a box", o.Name)
		}
		if o.Box != nil {
			min, max := o.Box.Min.Coord(), o.Box.Max.Coord()
			if max.X <= min.X || max.Y <= min.Y || max.Z <= min.Z {
				return errors.Errorf("invalid scene: object %q has an empty box", o.Name)
			}
		}
	}
	cameras := map[string]bool{}
	for i, c := range d.Cameras {
		if c.Name == "" {
			return errors.Errorf("invalid scene: camera %d has no name", i)
		}
		if cameras[c.Name] {
			return errors.Errorf("invalid scene: duplicate camera name %q", c.Name)
		}
		cameras[c.Name] = true
		if c.Origin == c.Target {
			return errors.Errorf("invalid scene: camera %q looks at its own origin", c.Name)
		}
		if c.FOVDegrees <= 0 || c.FOVDegrees >= 180 {
			return errors.Errorf("invalid scene: camera %q has field of view %f", c.Name,
				c.FOVDegrees)
		}
	}
	return nil
}

func (c *CameraDescription) fieldOfView() float64 {
	return c.FOVDegrees * math.Pi / 180
}
