// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the meshconv CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the meshconv CLI.
var rootCmd = &cobra.Command{
	Use:   "meshconv",
	Short: "Convert OBJ mesh descriptions to flat JSON documents",
	Long: `meshconv converts text-based 3D mesh descriptions in the Wavefront OBJ
format into flat JSON documents for downstream renderers and tooling.

Only vertex positions (v) and triangular faces (f) are understood. There is
no support for texture coordinates, normals, materials, or other OBJ
directives: unrecognized directives are ignored, and slash-suffixed face
references keep only the vertex index.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./meshconv.yaml or ~/.config/meshconv/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("meshconv")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "meshconv"))
		}
	}

	viper.SetDefault("convert.format", "json")
	viper.SetDefault("convert.pretty", false)
	viper.SetDefault("convert.validate", false)
	viper.SetDefault("catalog.db_path", "meshconv.db")

	viper.SetEnvPrefix("MESHCONV")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
