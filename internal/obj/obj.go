// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package obj parses a minimal subset of the Wavefront OBJ text format:
// vertex positions (`v`) and triangular faces (`f`). Texture coordinates,
// normals, materials, and every other directive are ignored. Faces with
// more than three vertices and vertices with other than three coordinates
// are rejected.
package obj

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pdiddy/meshconv/pkg/types"
)

// FormatError reports a structural violation of the supported OBJ subset:
// a vertex line without exactly three coordinates or a face line without
// exactly three vertex references. Line is the 1-based input line number.
type FormatError struct {
	Line    int
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

// Parse reads OBJ text from r and accumulates a flat mesh document. The
// whole input is consumed before Parse returns; any error aborts the parse
// and discards the partial document.
func Parse(r io.Reader) (*types.Mesh, error) {
	mesh := &types.Mesh{
		Vertices: []float64{},
		Indices:  []int{},
	}

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := parseLine(scanner.Text(), lineNo, mesh); err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return mesh, nil
}

// parseLine classifies one line and appends its data to mesh. Everything
// from the first '#' is a comment; blank lines and unknown directives
// contribute nothing.
func parseLine(line string, lineNo int, mesh *types.Mesh) error {
	if i := strings.IndexByte(line, '#'); i != -1 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "v":
		return parseVertex(fields[1:], lineNo, mesh)
	case "f":
		return parseFace(fields[1:], lineNo, mesh)
	}
	return nil
}

func parseVertex(operands []string, lineNo int, mesh *types.Mesh) error {
	if len(operands) != 3 {
		return &FormatError{
			Line:    lineNo,
			Message: fmt.Sprintf("All vertices must be 3D, at least one vertex is %dD", len(operands)),
		}
	}
	for _, op := range operands {
		f, err := strconv.ParseFloat(op, 64)
		if err != nil {
			return fmt.Errorf("line %d: parsing coordinate %q: %w", lineNo, op, err)
		}
		mesh.Vertices = append(mesh.Vertices, f)
	}
	return nil
}

func parseFace(operands []string, lineNo int, mesh *types.Mesh) error {
	if len(operands) != 3 {
		return &FormatError{
			Line:    lineNo,
			Message: fmt.Sprintf("All faces must be triangles, at least one face has %d vertices", len(operands)),
		}
	}
	for _, op := range operands {
		// A reference may carry /-delimited texture and normal indices
		// (e.g. "7/2/3"); only the vertex index before the first slash
		// is significant.
		ref := op
		if i := strings.IndexByte(ref, '/'); i != -1 {
			ref = ref[:i]
		}
		n, err := strconv.Atoi(ref)
		if err != nil {
			return fmt.Errorf("line %d: parsing vertex reference %q: %w", lineNo, op, err)
		}
		// OBJ vertex numbering is 1-based.
		mesh.Indices = append(mesh.Indices, n-1)
	}
	return nil
}
