// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared data model for meshconv: the flat mesh
// document and the statuses reported by conversion runs.
package types

import "fmt"

// Mesh is the flat document produced by a conversion. Vertices holds the
// x, y, z coordinates of each vertex in order of appearance; Indices holds
// zero-based vertex numbers, three per triangle.
type Mesh struct {
	Vertices []float64 `json:"vertices" yaml:"vertices"`
	Indices  []int     `json:"indices" yaml:"indices"`
}

// VertexCount returns the number of vertices (coordinate triples).
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / 3
}

// TriangleCount returns the number of triangles (index triples).
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Validate checks that every index references an existing vertex. The
// converter does not run this by default; face indices outside the vertex
// list pass through unchecked unless the caller opts in.
func (m *Mesh) Validate() error {
	n := m.VertexCount()
	for i, idx := range m.Indices {
		if idx < 0 || idx >= n {
			return fmt.Errorf("index %d at position %d out of range [0, %d)", idx, i, n)
		}
	}
	return nil
}

// ConversionStatus indicates the outcome of converting one OBJ file.
type ConversionStatus string

const (
	ConversionNone   ConversionStatus = "skipped"
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)

// OutputFormat selects the serialization of the mesh document.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// ConvertConfig holds settings for the conversion stage.
type ConvertConfig struct {
	// Format is the output serialization, "json" (default) or "yaml".
	Format OutputFormat `json:"format" yaml:"format"`

	// Pretty enables indented output.
	Pretty bool `json:"pretty" yaml:"pretty"`

	// Validate enables the index-range check after parsing.
	Validate bool `json:"validate" yaml:"validate"`
}

// CatalogConfig holds settings for the conversion catalog.
type CatalogConfig struct {
	// DBPath is the SQLite database file recording conversion runs.
	DBPath string `json:"db_path" yaml:"db_path"`
}
