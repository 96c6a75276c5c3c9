package synth

import (
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// A FrameRecord describes one saved image and its label.
type FrameRecord struct {
	Index int    `json:"index"`
	Image string `json:"image"`
	Label string `json:"label"`
	Pose  Pose   `json:"pose"`

	// Box is the written box, in the configured label origin.
	Box Box `json:"box"`
}

// A Summary lists the outcome of every iteration of a run.
type Summary struct {
	Frames  []*FrameRecord
	Skipped []int
}

// A Generator runs the sample, project, render loop which produces a
// dataset.
type Generator struct {
	config Config
	scene  Scene
	rand   *rand.Rand
	logger *log.Logger
}

// NewGenerator creates a generator for a validated config.
//
// The config is copied, so later changes to c do not affect the generator.
// If r is nil, a source seeded from the clock is used. If logger is nil,
// log.Default() is used.
func NewGenerator(c *Config, scene Scene, r *rand.Rand, logger *log.Logger) (*Generator, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if r == nil {
		r = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Generator{
		config: *c,
		scene:  scene,
		rand:   r,
		logger: logger,
	}, nil
}

// Config returns a copy of the generator's configuration.
func (g *Generator) Config() Config {
	return g.config
}

// Run produces the dataset.
//
// Frames where the object is not visible are skipped without writing any
// files, but still consume their index. Errors from the scene or the
// filesystem abort the run.
func (g *Generator) Run() (*Summary, error) {
	imagesDir := filepath.Join(g.config.OutputDir, ImagesDir)
	labelsDir := filepath.Join(g.config.OutputDir, LabelsDir)
	for _, dir := range []string{imagesDir, labelsDir} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrap(err, "create output directories")
		}
	}

	obj, err := g.scene.Object(g.config.ObjectName)
	if err != nil {
		return nil, errors.Wrap(err, "find object")
	}
	cam, err := g.scene.Camera(g.config.CameraName)
	if err != nil {
		return nil, errors.Wrap(err, "find camera")
	}
	g.scene.SetActiveCamera(cam)
	if err := g.scene.SetRenderSettings(g.config.RenderSettings()); err != nil {
		return nil, errors.Wrap(err, "configure renderer")
	}

	sampler := g.config.Sampler()
	summary := &Summary{}
	for i := 0; i < g.config.ImageCount; i++ {
		pose := sampler.Sample(g.rand).Apply(obj.Pose())
		obj.SetPose(pose)
		g.scene.CommitPose()

		box, ok := ProjectBox(cam, obj.Corners())
		if !ok {
			g.logger.Printf("Object invisible at frame %d, skipping...", i)
			summary.Skipped = append(summary.Skipped, i)
			continue
		}
		if g.config.LabelOrigin == TopLeft {
			box = box.FlipY()
		}
		label := Label{ClassID: g.config.ClassID, Box: box}

		imageName := ImageName(i)
		if err := g.scene.RenderImage(filepath.Join(imagesDir, imageName)); err != nil {
			return summary, errors.Wrapf(err, "render frame %d", i)
		}
		labelName := LabelName(i)
		if err := WriteLabelFile(filepath.Join(labelsDir, labelName), label); err != nil {
			return summary, errors.Wrapf(err, "write label for frame %d", i)
		}
		summary.Frames = append(summary.Frames, &FrameRecord{
			Index: i,
			Image: filepath.Join(ImagesDir, imageName),
			Label: filepath.Join(LabelsDir, labelName),
			Pose:  pose,
			Box:   box,
		})
		g.logger.Println("Saved", imageName)
	}
	g.logger.Println("DONE")
	return summary, nil
}
