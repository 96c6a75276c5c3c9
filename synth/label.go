package synth

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	ImagesDir = "images"
	LabelsDir = "labels"
)

// ImageName returns the file name of the image for frame i.
func ImageName(i int) string {
	return fmt.Sprintf("img_%04d.png", i)
}

// LabelName returns the file name of the label file for frame i.
func LabelName(i int) string {
	return fmt.Sprintf("img_%04d.txt", i)
}

// A Label is one YOLO detection record.
type Label struct {
	ClassID int `json:"class_id"`
	Box     Box `json:"box"`
}

// String formats the label as a single newline-terminated YOLO line.
func (l Label) String() string {
	return fmt.Sprintf("%d %.6f %.6f %.6f %.6f\n", l.ClassID, l.Box.CenterX, l.Box.CenterY,
		l.Box.Width, l.Box.Height)
}

// WriteLabels writes one line per label.
func WriteLabels(w io.Writer, labels ...Label) error {
	for _, l := range labels {
		if _, err := io.WriteString(w, l.String()); err != nil {
			return errors.Wrap(err, "write labels")
		}
	}
	return nil
}

// WriteLabelFile creates (or truncates) path and writes the labels to it.
func WriteLabelFile(path string, labels ...Label) error {
	return Save(path, labels, func(w io.Writer, labels []Label) error {
		return WriteLabels(w, labels...)
	})
}

// ReadLabels parses YOLO label lines. Blank lines are ignored.
func ReadLabels(r io.Reader) ([]Label, error) {
	var res []Label
	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != 5 {
			return nil, errors.Errorf("read labels: line %d: expected 5 fields but got %d",
				lineNum, len(fields))
		}
		classID, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "read labels: line %d", lineNum)
		}
		var values [4]float64
		for i, field := range fields[1:] {
			values[i], err = strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "read labels: line %d", lineNum)
			}
		}
		res = append(res, Label{
			ClassID: classID,
			Box: Box{
				CenterX: values[0],
				CenterY: values[1],
				Width:   values[2],
				Height:  values[3],
			},
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read labels")
	}
	return res, nil
}

// ReadLabelFile reads all of the labels in a file.
func ReadLabelFile(path string) ([]Label, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "read labels")
	}
	defer f.Close()
	return ReadLabels(f)
}
