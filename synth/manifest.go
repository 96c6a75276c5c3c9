package synth

import (
	"encoding/json"
	"io"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const ManifestName = "manifest.json"

// A Manifest records how a dataset was generated.
type Manifest struct {
	RunID   string         `json:"run_id"`
	Created time.Time      `json:"created"`
	Seed    int64          `json:"seed"`
	Config  *Config        `json:"config"`
	Frames  []*FrameRecord `json:"frames"`
	Skipped []int          `json:"skipped"`
}

// NewManifest creates a manifest for a finished run with a fresh run ID.
func NewManifest(c *Config, seed int64, summary *Summary) *Manifest {
	frames := summary.Frames
	if frames == nil {
		frames = []*FrameRecord{}
	}
	skipped := summary.Skipped
	if skipped == nil {
		skipped = []int{}
	}
	return &Manifest{
		RunID:   uuid.NewString(),
		Created: time.Now().UTC(),
		Seed:    seed,
		Config:  c,
		Frames:  frames,
		Skipped: skipped,
	}
}

// WriteManifest encodes m as indented JSON.
func WriteManifest(w io.Writer, m *Manifest) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(m); err != nil {
		return errors.Wrap(err, "write manifest")
	}
	return nil
}

// ReadManifest decodes a manifest written by WriteManifest.
func ReadManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	if err := json.NewDecoder(r).Decode(&m); err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}
	if _, err := uuid.Parse(m.RunID); err != nil {
		return nil, errors.Wrap(err, "read manifest")
	}
	return &m, nil
}

// SaveManifest writes m to the manifest file of a dataset directory.
func SaveManifest(datasetDir string, m *Manifest) error {
	return Save(filepath.Join(datasetDir, ManifestName), m, WriteManifest)
}

// LoadManifest reads the manifest file of a dataset directory.
func LoadManifest(datasetDir string) (*Manifest, error) {
	return Load(filepath.Join(datasetDir, ManifestName), ReadManifest)
}
