package synth

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// clipEpsilon is the distance from a frame edge within which a box is
// considered clipped, matching the precision of written labels.
const clipEpsilon = 1e-6

// ValueStats summarizes one label field over a dataset.
type ValueStats struct {
	Mean   float64
	StdDev float64
	Min    float64
	Max    float64
}

func newValueStats(values []float64) ValueStats {
	if len(values) == 0 {
		return ValueStats{}
	}
	mean, std := stat.MeanStdDev(values, nil)
	return ValueStats{
		Mean:   mean,
		StdDev: std,
		Min:    floats.Min(values),
		Max:    floats.Max(values),
	}
}

func (v ValueStats) String() string {
	return fmt.Sprintf("mean=%.4f std=%.4f min=%.4f max=%.4f", v.Mean, v.StdDev, v.Min, v.Max)
}

// DatasetStats summarizes the images and labels of a dataset directory.
type DatasetStats struct {
	Images int
	Labels int
	Boxes  int

	// Unlabeled lists images with no label file.
	Unlabeled []string

	// Orphans lists label files with no image.
	Orphans []string

	// Clipped counts boxes which touch an edge of the frame.
	Clipped int

	ClassCounts map[int]int

	CenterX ValueStats
	CenterY ValueStats
	Width   ValueStats
	Height  ValueStats
}

// ComputeStats reads every label file in a dataset directory.
func ComputeStats(datasetDir string) (*DatasetStats, error) {
	images, err := listStems(filepath.Join(datasetDir, ImagesDir), ".png")
	if err != nil {
		return nil, errors.Wrap(err, "compute stats")
	}
	labels, err := listStems(filepath.Join(datasetDir, LabelsDir), ".txt")
	if err != nil {
		return nil, errors.Wrap(err, "compute stats")
	}

	res := &DatasetStats{
		Images:      len(images),
		Labels:      len(labels),
		ClassCounts: map[int]int{},
	}
	for stem := range images {
		if !labels[stem] {
			res.Unlabeled = append(res.Unlabeled, stem+".png")
		}
	}
	sort.Strings(res.Unlabeled)

	var cx, cy, w, h []float64
	for _, stem := range sortedKeys(labels) {
		if !images[stem] {
			res.Orphans = append(res.Orphans, stem+".txt")
		}
		path := filepath.Join(datasetDir, LabelsDir, stem+".txt")
		fileLabels, err := ReadLabelFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "compute stats for %s", path)
		}
		for _, l := range fileLabels {
			res.Boxes++
			res.ClassCounts[l.ClassID]++
			cx = append(cx, l.Box.CenterX)
			cy = append(cy, l.Box.CenterY)
			w = append(w, l.Box.Width)
			h = append(h, l.Box.Height)
			if isClipped(l.Box) {
				res.Clipped++
			}
		}
	}
	res.CenterX = newValueStats(cx)
	res.CenterY = newValueStats(cy)
	res.Width = newValueStats(w)
	res.Height = newValueStats(h)
	return res, nil
}

func isClipped(b Box) bool {
	minX, minY := b.Min()
	maxX, maxY := b.Max()
	return minX < clipEpsilon || minY < clipEpsilon || maxX > 1-clipEpsilon ||
		maxY > 1-clipEpsilon
}

func listStems(dir, ext string) (map[string]bool, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	res := map[string]bool{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(name), ext) {
			continue
		}
		res[strings.TrimSuffix(name, filepath.Ext(name))] = true
	}
	return res, nil
}

func sortedKeys(m map[string]bool) []string {
	res := make([]string, 0, len(m))
	for k := range m {
		res = append(res, k)
	}
	sort.Strings(res)
	return res
}
