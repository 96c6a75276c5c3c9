package meshscene

import (
	"github.com/unixpickle/model3d/model3d"
	"github.com/unixpickle/model3d/render3d"
	"github.com/unixpickle/yolo-synth/synth"
)

var defaultColor = render3d.NewColorRGB(0.7, 0.7, 0.7)

// An Object is a mesh with a pose.
//
// Poses are staged by SetPose and only affect Corners() and rendering after
// the owning Scene commits them.
type Object struct {
	name  string
	local *model3d.Mesh
	min   model3d.Coord3D
	max   model3d.Coord3D
	color render3d.Color

	pose      synth.Pose
	committed synth.Pose
	world     *model3d.Mesh
}

func newObject(name string, mesh *model3d.Mesh, pose synth.Pose, color render3d.Color) *Object {
	o := &Object{
		name:  name,
		local: mesh,
		min:   mesh.Min(),
		max:   mesh.Max(),
		color: color,
		pose:  pose,
	}
	o.commit()
	return o
}

// Name returns the name from the scene description.
func (o *Object) Name() string {
	return o.name
}

func (o *Object) Pose() synth.Pose {
	return o.pose
}

func (o *Object) SetPose(p synth.Pose) {
	o.pose = p
}

// LocalBounds returns the bounding box of the mesh before posing.
func (o *Object) LocalBounds() (min, max model3d.Coord3D) {
	return o.min, o.max
}

func (o *Object) Corners() [8]model3d.Coord3D {
	corners := synth.BoxCorners(o.min, o.max)
	for i, c := range corners {
		corners[i] = o.committed.Apply(c)
	}
	return corners
}

func (o *Object) commit() {
	if o.committed != o.pose {
		o.committed = o.pose
		o.world = nil
	}
}

// worldMesh returns the mesh under the committed pose, computing it at most
// once per commit.
func (o *Object) worldMesh() *model3d.Mesh {
	if o.world == nil {
		o.world = o.local.MapCoords(o.committed.Apply)
	}
	return o.world
}

func (o *Object) renderObject() render3d.Object {
	color := o.color
	return render3d.Objectify(o.worldMesh(), func(c model3d.Coord3D, rc model3d.RayCollision) render3d.Color {
		return color
	})
}
