package synth

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"
)

func TestDrawLabels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	labels := []Label{{ClassID: 1, Box: Box{CenterX: 0.5, CenterY: 0.5, Width: 0.5, Height: 0.5}}}
	out := DrawLabels(img, labels, TopLeft)

	red := color.NRGBA{R: 255, A: 255}
	require.Equal(t, red, out.NRGBAAt(5, 10), "left edge")
	require.Equal(t, red, out.NRGBAAt(14, 10), "right edge")
	require.Equal(t, red, out.NRGBAAt(13, 14), "bottom edge")
	require.Equal(t, color.NRGBA{}, out.NRGBAAt(2, 2), "outside of box")
	require.Equal(t, color.NRGBA{}, img.NRGBAAt(5, 10), "input must not be modified")
}

func TestDrawLabelsOrigin(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 40, 40))
	labels := []Label{{ClassID: 0, Box: Box{CenterX: 0.5, CenterY: 0.25, Width: 0.5, Height: 0.2}}}

	red := color.NRGBA{R: 255, A: 255}
	// With a bottom-left origin the box spans rows 26 through 33.
	bottom := DrawLabels(img, labels, BottomLeft)
	require.Equal(t, red, bottom.NRGBAAt(10, 30))
	require.NotEqual(t, red, bottom.NRGBAAt(10, 8))

	top := DrawLabels(img, labels, TopLeft)
	require.Equal(t, red, top.NRGBAAt(10, 8))
	require.NotEqual(t, red, top.NRGBAAt(10, 30))
}

func TestPreviewDataset(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ImagesDir), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, LabelsDir), 0755))
	for _, i := range []int{0, 2} {
		img := imaging.New(16, 16, color.NRGBA{B: 255, A: 255})
		require.NoError(t, imaging.Save(img, filepath.Join(dir, ImagesDir, ImageName(i))))
	}
	label := Label{Box: Box{CenterX: 0.5, CenterY: 0.5, Width: 0.5, Height: 0.5}}
	require.NoError(t, WriteLabelFile(filepath.Join(dir, LabelsDir, LabelName(0)), label))

	outDir := filepath.Join(dir, "preview")
	count, err := PreviewDataset(dir, outDir, BottomLeft)
	require.NoError(t, err)
	require.Equal(t, 2, count)

	labeled, err := imaging.Open(filepath.Join(outDir, ImageName(0)))
	require.NoError(t, err)
	r, g, b, _ := labeled.At(4, 8).RGBA()
	require.Equal(t, [3]uint32{0xffff, 0, 0}, [3]uint32{r, g, b})

	unlabeled, err := imaging.Open(filepath.Join(outDir, ImageName(2)))
	require.NoError(t, err)
	r, g, b, _ = unlabeled.At(4, 8).RGBA()
	require.Equal(t, [3]uint32{0, 0, 0xffff}, [3]uint32{r, g, b})
}
