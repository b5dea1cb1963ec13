package loaders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/df07/go-ao-raytracer/pkg/core"
	"github.com/samber/lo"
)

// OBJData contains the vertex and face data loaded from an OBJ file
type OBJData struct {
	Vertices []core.Vec3 // Vertex positions (x, y, z)
	Faces    []int       // 0-based triangle indices (3 per triangle)
}

// TriangleCount returns the number of faces
func (d *OBJData) TriangleCount() int {
	return len(d.Faces) / 3
}

// Transform returns a copy with every vertex scaled per axis and then translated
func (d *OBJData) Transform(scale, translate core.Vec3) *OBJData {
	return &OBJData{
		Vertices: lo.Map(d.Vertices, func(v core.Vec3, _ int) core.Vec3 {
			return v.MultiplyVec(scale).Add(translate)
		}),
		Faces: d.Faces,
	}
}

// LoadOBJ loads a triangles-only OBJ file
func LoadOBJ(filename string) (*OBJData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open OBJ file: %w", err)
	}
	defer file.Close()

	data, err := ParseOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filename, err)
	}
	return data, nil
}

// ParseOBJ reads "v x y z" and "f a b c" lines. Blank lines and # comments
// are skipped; anything else is an error. Face indices are 1-based in the
// file and converted to 0-based.
func ParseOBJ(r io.Reader) (*OBJData, error) {
	data := &OBJData{}
	var rawFaces []int

	scanner := bufio.NewScanner(r)
	lineNumber := 0

	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.Fields(line)
		if len(parts) != 4 {
			if parts[0] != "v" && parts[0] != "f" {
				return nil, fmt.Errorf("line %d: unexpected element %q", lineNumber, parts[0])
			}
			return nil, fmt.Errorf("line %d: expected 3 values after %q, got %d", lineNumber, parts[0], len(parts)-1)
		}

		switch parts[0] {
		case "v":
			var coords [3]float64
			for i, s := range parts[1:] {
				var err error
				coords[i], err = strconv.ParseFloat(s, 64)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid vertex coordinate %q: %w", lineNumber, s, err)
				}
			}
			data.Vertices = append(data.Vertices, core.NewVec3(coords[0], coords[1], coords[2]))
		case "f":
			for _, s := range parts[1:] {
				index, err := strconv.Atoi(s)
				if err != nil {
					return nil, fmt.Errorf("line %d: invalid face index %q: %w", lineNumber, s, err)
				}
				rawFaces = append(rawFaces, index)
			}
		default:
			return nil, fmt.Errorf("line %d: unexpected element %q", lineNumber, parts[0])
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read OBJ data: %w", err)
	}

	// Faces may reference vertices declared later, so validate at the end
	data.Faces = make([]int, len(rawFaces))
	for i, index := range rawFaces {
		if index < 1 || index > len(data.Vertices) {
			return nil, fmt.Errorf("face %d: vertex index %d out of range [1, %d]", i/3+1, index, len(data.Vertices))
		}
		data.Faces[i] = index - 1
	}

	return data, nil
}
