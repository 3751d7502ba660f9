// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/meshconv/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List recorded conversions",
	Long: `Catalog lists conversions recorded with convert --record, newest first.
The catalog lives in a SQLite database (default meshconv.db, configurable
via catalog.db_path).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath := viper.GetString("catalog.db_path")
		if p, _ := cmd.Flags().GetString("db"); p != "" {
			dbPath = p
		}
		limit, _ := cmd.Flags().GetInt("limit")

		store, err := catalog.NewStore(dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		records, err := store.List(cmd.Context(), limit)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No conversions recorded.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSOURCE\tOUTPUT\tFORMAT\tVERTICES\tTRIANGLES\tCONVERTED")
		for _, r := range records {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%d\t%s\n",
				r.ID, r.SourcePath, r.OutputPath, r.Format,
				r.Vertices, r.Triangles, r.ConvertedAt.Format(time.RFC3339))
		}
		return w.Flush()
	},
}

func init() {
	catalogCmd.Flags().String("db", "", "catalog database file (overrides config)")
	catalogCmd.Flags().Int("limit", 20, "maximum records to list (0 for all)")

	rootCmd.AddCommand(catalogCmd)
}
