// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/meshconv/internal/catalog"
	"github.com/pdiddy/meshconv/internal/convert"
	"github.com/pdiddy/meshconv/pkg/types"
)

var convertCmd = &cobra.Command{
	Use:   "convert <in.obj> <out.json> | convert --batch --out-dir DIR <in.obj>...",
	Short: "Convert OBJ files to flat mesh documents",
	Long: `Convert reads an OBJ mesh description and writes a flat document with two
members: "vertices" (the x, y, z coordinates of each vertex in order) and
"indices" (zero-based vertex numbers, three per triangle).

Very simple! No support for texture coordinates, normals, materials, and any
other OBJ things. Vertex lines must have exactly three coordinates and face
lines exactly three vertex references; anything else aborts the conversion.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := convertConfig(cmd)

		batch, _ := cmd.Flags().GetBool("batch")
		if batch {
			return runConvertBatch(cmd, args, cfg)
		}

		if len(args) != 2 {
			return fmt.Errorf("expected input and output paths, got %d argument(s)", len(args))
		}
		mesh, err := convert.ConvertFile(args[0], args[1], cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "converted: %s (%d vertices, %d triangles)\n",
			args[1], mesh.VertexCount(), mesh.TriangleCount())

		if record, _ := cmd.Flags().GetBool("record"); record {
			return recordConversion(cmd.Context(), args[0], args[1], cfg.Format, mesh)
		}
		return nil
	},
}

func runConvertBatch(cmd *cobra.Command, args []string, cfg types.ConvertConfig) error {
	if len(args) == 0 {
		return fmt.Errorf("batch mode needs at least one OBJ file")
	}
	outDir, _ := cmd.Flags().GetString("out-dir")

	result, err := convert.ConvertBatch(args, outDir, cfg, os.Stderr)
	if err != nil {
		return err
	}
	if result.HasFailures() {
		return fmt.Errorf("%d of %d conversions failed", result.Failed, result.Total())
	}
	return nil
}

// recordConversion appends a catalog entry for a completed conversion.
func recordConversion(ctx context.Context, srcPath, outPath string, format types.OutputFormat, mesh *types.Mesh) error {
	store, err := catalog.NewStore(viper.GetString("catalog.db_path"))
	if err != nil {
		return err
	}
	defer store.Close()

	if format == "" {
		format = types.FormatJSON
	}
	_, err = store.Add(ctx, catalog.Record{
		SourcePath: srcPath,
		OutputPath: outPath,
		Format:     format,
		Vertices:   mesh.VertexCount(),
		Triangles:  mesh.TriangleCount(),
	})
	return err
}

// convertConfig resolves conversion settings from flags, falling back to
// the config file and environment for flags the user did not set.
func convertConfig(cmd *cobra.Command) types.ConvertConfig {
	cfg := types.ConvertConfig{
		Format:   types.OutputFormat(viper.GetString("convert.format")),
		Pretty:   viper.GetBool("convert.pretty"),
		Validate: viper.GetBool("convert.validate"),
	}
	if cmd.Flags().Changed("format") {
		f, _ := cmd.Flags().GetString("format")
		cfg.Format = types.OutputFormat(f)
	}
	if cmd.Flags().Changed("pretty") {
		cfg.Pretty, _ = cmd.Flags().GetBool("pretty")
	}
	if cmd.Flags().Changed("validate") {
		cfg.Validate, _ = cmd.Flags().GetBool("validate")
	}
	return cfg
}

func init() {
	convertCmd.Flags().String("format", "json", "output format: json or yaml")
	convertCmd.Flags().Bool("pretty", false, "indent the output document")
	convertCmd.Flags().Bool("validate", false, "reject face indices that reference missing vertices")
	convertCmd.Flags().Bool("record", false, "record the conversion in the catalog database")
	convertCmd.Flags().Bool("batch", false, "convert many OBJ files into --out-dir")
	convertCmd.Flags().String("out-dir", "converted", "output directory for batch mode")

	rootCmd.AddCommand(convertCmd)
}
