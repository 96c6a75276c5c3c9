package synth

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ImagesDir), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, LabelsDir), 0755))

	for _, i := range []int{0, 1, 3} {
		path := filepath.Join(dir, ImagesDir, ImageName(i))
		require.NoError(t, os.WriteFile(path, nil, 0644))
	}
	labels := map[int]Label{
		0: {ClassID: 0, Box: Box{CenterX: 0.5, CenterY: 0.5, Width: 0.2, Height: 0.4}},
		1: {ClassID: 0, Box: Box{CenterX: 0.1, CenterY: 0.3, Width: 0.2, Height: 0.2}},
		2: {ClassID: 2, Box: Box{CenterX: 0.3, CenterY: 0.7, Width: 0.2, Height: 0.1}},
	}
	for i, l := range labels {
		require.NoError(t, WriteLabelFile(filepath.Join(dir, LabelsDir, LabelName(i)), l))
	}

	stats, err := ComputeStats(dir)
	require.NoError(t, err)
	require.Equal(t, 3, stats.Images)
	require.Equal(t, 3, stats.Labels)
	require.Equal(t, 3, stats.Boxes)
	require.Equal(t, []string{"img_0003.png"}, stats.Unlabeled)
	require.Equal(t, []string{"img_0002.txt"}, stats.Orphans)
	require.Equal(t, map[int]int{0: 2, 2: 1}, stats.ClassCounts)

	// Only the second box touches the left edge.
	require.Equal(t, 1, stats.Clipped)

	require.InDelta(t, 0.3, stats.CenterX.Mean, 1e-9)
	require.InDelta(t, 0.1, stats.CenterX.Min, 1e-9)
	require.InDelta(t, 0.5, stats.CenterX.Max, 1e-9)
	require.InDelta(t, 0.2, stats.Width.Mean, 1e-9)
	require.InDelta(t, 0.0, stats.Width.StdDev, 1e-9)
	// Sample standard deviation of {0.4, 0.2, 0.1}.
	expectedStd := math.Sqrt((math.Pow(0.4-0.7/3, 2) + math.Pow(0.2-0.7/3, 2) +
		math.Pow(0.1-0.7/3, 2)) / 2)
	require.InDelta(t, expectedStd, stats.Height.StdDev, 1e-9)
}

func TestComputeStatsMissingDirs(t *testing.T) {
	_, err := ComputeStats(t.TempDir())
	require.Error(t, err)
}

func TestComputeStatsBadLabel(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ImagesDir), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, LabelsDir), 0755))
	path := filepath.Join(dir, LabelsDir, LabelName(0))
	require.NoError(t, os.WriteFile(path, []byte("0 0.5 0.5\n"), 0644))
	_, err := ComputeStats(dir)
	require.Error(t, err)
}
