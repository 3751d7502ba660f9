// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/meshconv/pkg/types"
)

// writeOBJ creates an OBJ file with the given content in a temp dir and
// returns its path.
func writeOBJ(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return p
}

const triangleOBJ = "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 3\n"

func TestConvertFile_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	objPath := writeOBJ(t, dir, "tri.obj", triangleOBJ)
	outPath := filepath.Join(dir, "tri.json")

	mesh, err := ConvertFile(objPath, outPath, types.ConvertConfig{})
	if err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	if mesh.VertexCount() != 3 || mesh.TriangleCount() != 1 {
		t.Errorf("got %d vertices, %d triangles, want 3 and 1",
			mesh.VertexCount(), mesh.TriangleCount())
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	want := `{"vertices":[0,0,0,1,0,0,0,1,0],"indices":[0,1,2]}`
	if string(data) != want {
		t.Errorf("output = %s, want %s", data, want)
	}
}

func TestConvertFile_ParseFailureWritesNothing(t *testing.T) {
	dir := t.TempDir()
	objPath := writeOBJ(t, dir, "bad.obj", "v 1.0 2.0\n")
	outPath := filepath.Join(dir, "bad.json")

	_, err := ConvertFile(objPath, outPath, types.ConvertConfig{})
	if err == nil {
		t.Fatal("expected error for 2D vertex")
	}
	if !strings.Contains(err.Error(), "2D") {
		t.Errorf("error %q does not mention the offending dimension", err)
	}
	if _, statErr := os.Stat(outPath); !os.IsNotExist(statErr) {
		t.Errorf("output file exists after failed conversion")
	}
}

func TestConvertFile_MissingInput(t *testing.T) {
	dir := t.TempDir()
	_, err := ConvertFile(filepath.Join(dir, "nope.obj"), filepath.Join(dir, "out.json"), types.ConvertConfig{})
	if err == nil {
		t.Fatal("expected error for missing input")
	}
}

func TestConvertFile_Pretty(t *testing.T) {
	dir := t.TempDir()
	objPath := writeOBJ(t, dir, "tri.obj", triangleOBJ)
	outPath := filepath.Join(dir, "tri.json")

	if _, err := ConvertFile(objPath, outPath, types.ConvertConfig{Pretty: true}); err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}
	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "\n  ") {
		t.Errorf("pretty output is not indented: %s", data)
	}
	var mesh types.Mesh
	if err := json.Unmarshal(data, &mesh); err != nil {
		t.Fatalf("pretty output is not valid JSON: %v", err)
	}
	if len(mesh.Vertices) != 9 || len(mesh.Indices) != 3 {
		t.Errorf("decoded %d vertices values, %d indices", len(mesh.Vertices), len(mesh.Indices))
	}
}

func TestConvertFile_YAMLFormat(t *testing.T) {
	dir := t.TempDir()
	objPath := writeOBJ(t, dir, "tri.obj", triangleOBJ)
	outPath := filepath.Join(dir, "tri.yaml")

	cfg := types.ConvertConfig{Format: types.FormatYAML}
	if _, err := ConvertFile(objPath, outPath, cfg); err != nil {
		t.Fatalf("ConvertFile: %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatal(err)
	}
	var mesh types.Mesh
	if err := yaml.Unmarshal(data, &mesh); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(mesh.Vertices) != 9 || len(mesh.Indices) != 3 {
		t.Errorf("decoded %d vertex values, %d indices", len(mesh.Vertices), len(mesh.Indices))
	}
}

func TestParseFile_Validate(t *testing.T) {
	dir := t.TempDir()
	// One vertex, face references vertex 5 which does not exist.
	objPath := writeOBJ(t, dir, "dangling.obj", "v 0 0 0\nf 1 1 5\n")

	if _, err := ParseFile(objPath, types.ConvertConfig{}); err != nil {
		t.Errorf("unvalidated parse should accept dangling references, got %v", err)
	}

	_, err := ParseFile(objPath, types.ConvertConfig{Validate: true})
	if err == nil {
		t.Fatal("validated parse should reject dangling references")
	}
	if !strings.Contains(err.Error(), "out of range") {
		t.Errorf("error %q does not mention range", err)
	}
}

func TestEncode_UnknownFormat(t *testing.T) {
	_, err := Encode(&types.Mesh{}, types.ConvertConfig{Format: "xml"})
	if err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestConvertBatch(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "out")

	good := writeOBJ(t, dir, "good.obj", triangleOBJ)
	bad := writeOBJ(t, dir, "bad.obj", "f 1 2 3 4\n")
	existing := writeOBJ(t, dir, "existing.obj", triangleOBJ)

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(outDir, "existing.json"), []byte("{}"), 0o644); err != nil {
		t.Fatal(err)
	}

	var log bytes.Buffer
	result, err := ConvertBatch([]string{good, bad, existing}, outDir, types.ConvertConfig{}, &log)
	if err != nil {
		t.Fatalf("ConvertBatch: %v", err)
	}

	if result.Converted != 1 || result.Failed != 1 || result.Skipped != 1 {
		t.Errorf("result = %+v, want 1 converted, 1 skipped, 1 failed", result)
	}
	if result.Total() != 3 {
		t.Errorf("Total() = %d, want 3", result.Total())
	}
	if !result.HasFailures() {
		t.Error("HasFailures() = false, want true")
	}

	out := log.String()
	for _, want := range []string{"converted: good", "failed:  bad", "skipped: existing", "Batch summary: 1 converted, 1 skipped, 1 failed"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q does not contain %q", out, want)
		}
	}
	if !strings.Contains(out, "4 vertices") {
		t.Errorf("failure line does not carry the format diagnostic: %q", out)
	}
}
