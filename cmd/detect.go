package main

import (
	"fmt"
	"sort"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/sire-cli/internal/fetcher"
	"github.com/sells-group/sire-cli/internal/sire"
)

var detectFile string

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the detected column mapping for a file without converting",
	RunE: func(_ *cobra.Command, _ []string) error {
		ds, err := fetcher.ReadFile(detectFile, fetcher.FileOptions{
			CSV: fetcher.CSVOptions{Encoding: cfg.Convert.Encoding},
		})
		if err != nil {
			return eris.Wrap(err, "read input")
		}

		columnMap := sire.DetectColumns(ds)
		if len(columnMap) == 0 {
			fmt.Println("No columns detected.")
			return nil
		}

		fields := make([]string, 0, len(columnMap))
		for field := range columnMap {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		fmt.Printf("Detected %d of %d columns:\n", len(columnMap), len(ds.Columns))
		for _, field := range fields {
			m := columnMap[field]
			fmt.Printf("  %-18s -> %-30q (%s)\n", field, m.Column, m.Confidence)
		}
		return nil
	},
}

func init() {
	detectCmd.Flags().StringVar(&detectFile, "file", "", "path to input file (required)")
	_ = detectCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(detectCmd)
}
