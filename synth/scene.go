package synth

import "github.com/unixpickle/model3d/model3d"

// RenderSettings configures how a Scene renders frames.
type RenderSettings struct {
	Engine string

	// Samples is the number of samples per pixel. Renderers may round it to
	// whatever they support.
	Samples int

	// Resolution is the width and height of square output images.
	Resolution int
}

// An Object is a posable object in a Scene.
type Object interface {
	// Pose returns the most recently set pose, which may not be committed
	// yet.
	Pose() Pose

	// SetPose stages a new pose. It takes effect on the next
	// Scene.CommitPose().
	SetPose(p Pose)

	// Corners returns the world-space corners of the object's local bounding
	// box under the last committed pose.
	Corners() [8]model3d.Coord3D
}

// A Scene provides named objects and cameras, and renders frames.
type Scene interface {
	// Object looks up an object by name, failing if it does not exist.
	Object(name string) (Object, error)

	// Camera looks up a camera by name, failing if it does not exist.
	Camera(name string) (*Camera, error)

	// SetActiveCamera selects the camera used by RenderImage.
	SetActiveCamera(cam *Camera)

	SetRenderSettings(s RenderSettings) error

	// CommitPose recomputes world transforms for every object whose pose
	// was changed since the last commit.
	CommitPose()

	// RenderImage renders the current frame to a PNG file.
	RenderImage(path string) error
}
