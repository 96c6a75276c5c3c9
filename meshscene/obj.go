package meshscene

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/unixpickle/model3d/model3d"
)

// ReadOBJ reads the triangles of a Wavefront OBJ file.
//
// Only vertex positions and faces are used. Polygons are triangulated as
// fans around their first vertex, and negative (relative) indices are
// supported.
func ReadOBJ(r io.Reader) ([]*model3d.Triangle, error) {
	var vertices []model3d.Coord3D
	var triangles []*model3d.Triangle

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, errors.Errorf("read obj: line %d: vertex needs 3 coordinates", lineNum)
			}
			var arr [3]float64
			for i := range arr {
				x, err := strconv.ParseFloat(fields[i+1], 64)
				if err != nil {
					return nil, errors.Wrapf(err, "read obj: line %d", lineNum)
				}
				arr[i] = x
			}
			vertices = append(vertices, model3d.NewCoord3DArray(arr))
		case "f":
			args := fields[1:]
			if len(args) < 3 {
				return nil, errors.Errorf("read obj: line %d: face needs 3 vertices", lineNum)
			}
			indices := make([]int, len(args))
			for i, arg := range args {
				idx, err := objIndex(arg, len(vertices))
				if err != nil {
					return nil, errors.Wrapf(err, "read obj: line %d", lineNum)
				}
				indices[i] = idx
			}
			for i := 1; i < len(indices)-1; i++ {
				triangles = append(triangles, &model3d.Triangle{
					vertices[indices[0]],
					vertices[indices[i]],
					vertices[indices[i+1]],
				})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "read obj")
	}
	return triangles, nil
}

// objIndex parses the position index of a face vertex such as "3",
// "3/1" or "-2//5" into a zero-based index.
func objIndex(arg string, numVertices int) (int, error) {
	s := arg
	if i := strings.IndexByte(s, '/'); i >= 0 {
		s = s[:i]
	}
	parsed, err := strconv.Atoi(s)
	if err != nil {
		return 0, err
	}
	var idx int
	if parsed < 0 {
		idx = numVertices + parsed
	} else {
		idx = parsed - 1
	}
	if idx < 0 || idx >= numVertices {
		return 0, errors.Errorf("vertex index %s out of range", arg)
	}
	return idx, nil
}
