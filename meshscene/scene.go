package meshscene

import (
	"math"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/render3d"
	"github.com/unixpickle/yolo-synth/synth"
)

// A Scene is a set of named meshes, cameras and lights which can be rendered
// with a ray caster.
type Scene struct {
	objects []*Object
	byName  map[string]*Object
	cameras map[string]*synth.Camera
	lights  []*render3d.PointLight

	active   *synth.Camera
	settings synth.RenderSettings
}

var _ synth.Scene = (*Scene)(nil)

// LoadScene reads a scene description and every mesh it references.
// Mesh paths are resolved relative to the description's directory.
func LoadScene(path string) (*Scene, error) {
	desc, err := LoadDescription(path)
	if err != nil {
		return nil, err
	}
	return NewScene(desc, filepath.Dir(path))
}

// NewScene creates a scene from a description, loading meshes relative to
// baseDir.
func NewScene(desc *Description, baseDir string) (*Scene, error) {
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	s := &Scene{
		byName:  map[string]*Object{},
		cameras: map[string]*synth.Camera{},
		settings: synth.RenderSettings{
			Engine:     synth.DefaultRenderEngine,
			Samples:    1,
			Resolution: 256,
		},
	}
	for _, od := range desc.Objects {
		mesh, err := loadObjectMesh(od, baseDir)
		if err != nil {
			return nil, errors.Wrapf(err, "load object %q", od.Name)
		}
		color := defaultColor
		if od.Color != nil {
			color = render3d.NewColorRGB(od.Color[0], od.Color[1], od.Color[2])
		}
		pose := synth.Pose{Position: od.Location.Coord(), Yaw: od.RotationZ}
		obj := newObject(od.Name, mesh, pose, color)
		s.objects = append(s.objects, obj)
		s.byName[od.Name] = obj
	}
	for _, cd := range desc.Cameras {
		s.cameras[cd.Name] = synth.NewCameraAt(cd.Origin.Coord(), cd.Target.Coord(),
			cd.fieldOfView())
	}
	for _, ld := range desc.Lights {
		intensity := ld.Intensity
		if intensity == 0 {
			intensity = 1
		}
		s.lights = append(s.lights, &render3d.PointLight{
			Origin: ld.Origin.Coord(),
			Color:  render3d.NewColor(intensity),
		})
	}
	return s, nil
}

func loadObjectMesh(od *ObjectDescription, baseDir string) (*model3d.Mesh, error) {
	if od.Mesh == "" {
		return model3d.NewMeshRect(od.Box.Min.Coord(), od.Box.Max.Coord()), nil
	}
	path := od.Mesh
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	var tris []*model3d.Triangle
	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".stl":
		tris, err = synth.Load(path, model3d.ReadSTL)
	case ".obj":
		tris, err = synth.Load(path, ReadOBJ)
	default:
		return nil, errors.Errorf("unsupported mesh format: %s", path)
	}
	if err != nil {
		return nil, err
	}
	if len(tris) == 0 {
		return nil, errors.Errorf("mesh has no triangles: %s", path)
	}
	return model3d.NewMeshTriangles(tris), nil
}

// Objects returns every object in description order.
func (s *Scene) Objects() []*Object {
	return append([]*Object{}, s.objects...)
}

// Object looks up an object by name. The error lists the names which do
// exist.
func (s *Scene) Object(name string) (synth.Object, error) {
	obj, ok := s.byName[name]
	if !ok {
		names := make([]string, len(s.objects))
		for i, o := range s.objects {
			names[i] = o.Name()
		}
		return nil, errors.Errorf("no object named %q in scene (objects: %s)", name,
			strings.Join(names, ", "))
	}
	return obj, nil
}

// Camera looks up a camera by name.
func (s *Scene) Camera(name string) (*synth.Camera, error) {
	cam, ok := s.cameras[name]
	if !ok {
		return nil, errors.Errorf("no camera named %q in scene", name)
	}
	return cam, nil
}

// SetActiveCamera selects the camera used by RenderImage.
func (s *Scene) SetActiveCamera(cam *synth.Camera) {
	s.active = cam
}

// SetRenderSettings fails for any engine other than
// synth.DefaultRenderEngine, or for non-positive sizes.
func (s *Scene) SetRenderSettings(settings synth.RenderSettings) error {
	if settings.Engine != synth.DefaultRenderEngine {
		return errors.Errorf("unsupported render engine %q (only %q is available)",
			settings.Engine, synth.DefaultRenderEngine)
	}
	if settings.Resolution <= 0 || settings.Samples <= 0 {
		return errors.Errorf("invalid render settings: resolution=%d samples=%d",
			settings.Resolution, settings.Samples)
	}
	s.settings = settings
	return nil
}

// CommitPose applies staged poses to every object which changed.
func (s *Scene) CommitPose() {
	for _, o := range s.objects {
		o.commit()
	}
}

// Supersampling returns the number of rays cast per pixel along each axis
// for the current sample count.
func (s *Scene) Supersampling() int {
	return int(math.Ceil(math.Sqrt(float64(s.settings.Samples))))
}

// RenderImage ray casts the committed scene from the active camera, then
// downsamples and saves the image. The format is chosen from the path's
// extension.
func (s *Scene) RenderImage(path string) error {
	if s.active == nil {
		return errors.New("render image: no active camera")
	}
	lights := s.lights
	if len(lights) == 0 {
		lights = []*render3d.PointLight{
			{Origin: s.active.Origin, Color: render3d.NewColor(1)},
		}
	}
	caster := &render3d.RayCaster{
		Camera: s.active.RenderCamera(),
		Lights: lights,
	}

	var joined render3d.JoinedObject
	for _, o := range s.objects {
		joined = append(joined, o.renderObject())
	}

	res := s.settings.Resolution
	size := res * s.Supersampling()
	img := render3d.NewImage(size, size)
	caster.Render(img, joined)

	out := imaging.Resize(img.RGBA(), res, res, imaging.Lanczos)
	if err := imaging.Save(out, path); err != nil {
		return errors.Wrap(err, "render image")
	}
	return nil
}
