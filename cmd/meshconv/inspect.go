// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/meshconv/internal/convert"
	"github.com/pdiddy/meshconv/pkg/types"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <in.obj>",
	Short: "Parse an OBJ file and print its mesh statistics",
	Long: `Inspect parses an OBJ file with the same rules as convert but writes no
output file; it prints the vertex and triangle counts instead. Useful for
checking that a mesh is inside the supported subset before converting.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		validate, _ := cmd.Flags().GetBool("validate")
		mesh, err := convert.ParseFile(args[0], types.ConvertConfig{Validate: validate})
		if err != nil {
			return err
		}
		fmt.Printf("%s: %d vertices, %d triangles\n", args[0], mesh.VertexCount(), mesh.TriangleCount())
		return nil
	},
}

func init() {
	inspectCmd.Flags().Bool("validate", false, "also check that every face index references an existing vertex")

	rootCmd.AddCommand(inspectCmd)
}
