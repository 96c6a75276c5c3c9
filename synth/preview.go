package synth

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	DefaultBoxColor  = color.NRGBA{R: 255, A: 255}
	DefaultTextColor = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// DrawLabels returns a copy of img with each label drawn as a rectangle
// outline with its class id above it.
//
// The origin specifies which corner label coordinates are measured from.
func DrawLabels(img image.Image, labels []Label, origin LabelOrigin) *image.NRGBA {
	res := imaging.Clone(img)
	bounds := res.Bounds()
	width, height := float64(bounds.Dx()), float64(bounds.Dy())
	for _, l := range labels {
		box := l.Box
		if origin == BottomLeft {
			box = box.FlipY()
		}
		minX, minY := box.Min()
		maxX, maxY := box.Max()
		x0 := bounds.Min.X + int(math.Round(minX*width))
		y0 := bounds.Min.Y + int(math.Round(minY*height))
		x1 := bounds.Min.X + int(math.Round(maxX*width)) - 1
		y1 := bounds.Min.Y + int(math.Round(maxY*height)) - 1
		drawRect(res, image.Rect(x0, y0, x1, y1), DefaultBoxColor)
		drawText(res, strconv.Itoa(l.ClassID), x0, y0)
	}
	return res
}

// drawRect outlines r, including its Max row and column. Pixels outside of
// img are dropped by Set.
func drawRect(img draw.Image, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x <= r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y, c)
	}
	for y := r.Min.Y; y <= r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X, y, c)
	}
}

func drawText(img draw.Image, text string, x, y int) {
	face := basicfont.Face7x13
	bounds := img.Bounds()
	if y-face.Height < bounds.Min.Y {
		// Draw inside the box when there is no room above it.
		y += face.Height
	}
	if x < bounds.Min.X {
		x = bounds.Min.X
	}
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(DefaultTextColor),
		Face: face,
		Dot:  fixed.P(x+1, y-2),
	}
	d.DrawString(text)
}

// PreviewDataset draws the labels of every image in a dataset directory and
// saves the results to outDir with the same file names.
//
// Images with no label file are copied unchanged. It returns the number of
// images written.
func PreviewDataset(datasetDir, outDir string, origin LabelOrigin) (int, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return 0, errors.Wrap(err, "preview dataset")
	}
	images, err := listStems(filepath.Join(datasetDir, ImagesDir), ".png")
	if err != nil {
		return 0, errors.Wrap(err, "preview dataset")
	}
	var count int
	for _, stem := range sortedKeys(images) {
		img, err := imaging.Open(filepath.Join(datasetDir, ImagesDir, stem+".png"))
		if err != nil {
			return count, errors.Wrap(err, "preview dataset")
		}
		var labels []Label
		labelPath := filepath.Join(datasetDir, LabelsDir, stem+".txt")
		if _, err := os.Stat(labelPath); err == nil {
			labels, err = ReadLabelFile(labelPath)
			if err != nil {
				return count, errors.Wrap(err, "preview dataset")
			}
		}
		out := DrawLabels(img, labels, origin)
		if err := imaging.Save(out, filepath.Join(outDir, stem+".png")); err != nil {
			return count, errors.Wrap(err, "preview dataset")
		}
		count++
	}
	return count, nil
}
