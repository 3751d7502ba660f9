// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert turns OBJ files into flat mesh documents on disk. It
// parses the whole input into memory first and only then writes the output
// file, so a failed conversion never leaves partial output behind.
package convert

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/meshconv/internal/obj"
	"github.com/pdiddy/meshconv/pkg/types"
)

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any files failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// ParseFile reads and parses one OBJ file, applying the index-range check
// when cfg.Validate is set.
func ParseFile(objPath string, cfg types.ConvertConfig) (*types.Mesh, error) {
	f, err := os.Open(objPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", objPath, err)
	}
	defer f.Close()

	mesh, err := obj.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", objPath, err)
	}
	if cfg.Validate {
		if err := mesh.Validate(); err != nil {
			return nil, fmt.Errorf("validating %s: %w", objPath, err)
		}
	}
	return mesh, nil
}

// Encode serializes the mesh document in the configured format.
func Encode(mesh *types.Mesh, cfg types.ConvertConfig) ([]byte, error) {
	switch cfg.Format {
	case types.FormatYAML:
		data, err := yaml.Marshal(mesh)
		if err != nil {
			return nil, fmt.Errorf("marshaling YAML: %w", err)
		}
		return data, nil
	case types.FormatJSON, "":
		var (
			data []byte
			err  error
		)
		if cfg.Pretty {
			data, err = json.MarshalIndent(mesh, "", "  ")
		} else {
			data, err = json.Marshal(mesh)
		}
		if err != nil {
			return nil, fmt.Errorf("marshaling JSON: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unknown output format %q", cfg.Format)
	}
}

// ConvertFile converts a single OBJ file, writing the document to outPath.
// The output file is created or truncated only after the parse succeeds.
func ConvertFile(objPath, outPath string, cfg types.ConvertConfig) (*types.Mesh, error) {
	mesh, err := ParseFile(objPath, cfg)
	if err != nil {
		return nil, err
	}

	data, err := Encode(mesh, cfg)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", outPath, err)
	}
	return mesh, nil
}

// ConvertBatch processes a list of OBJ files into outDir, printing per-file
// status to w and returning a summary. Files whose output already exists
// are skipped, so a batch can be resumed after fixing a bad input.
func ConvertBatch(objPaths []string, outDir string, cfg types.ConvertConfig, w io.Writer) (BatchResult, error) {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return BatchResult{}, fmt.Errorf("creating %s: %w", outDir, err)
	}

	var result BatchResult
	for _, p := range objPaths {
		base := strings.TrimSuffix(filepath.Base(p), filepath.Ext(p))
		outPath := filepath.Join(outDir, base+"."+string(format(cfg)))

		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", base)
			result.Skipped++
			continue
		}

		mesh, err := ConvertFile(p, outPath, cfg)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
			result.Failed++
			continue
		}
		fmt.Fprintf(w, "converted: %s (%d vertices, %d triangles)\n",
			base, mesh.VertexCount(), mesh.TriangleCount())
		result.Converted++
	}

	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result, nil
}

func format(cfg types.ConvertConfig) types.OutputFormat {
	if cfg.Format == "" {
		return types.FormatJSON
	}
	return cfg.Format
}
