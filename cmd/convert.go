package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/sire-cli/internal/fetcher"
	"github.com/sells-group/sire-cli/internal/sire"
	"github.com/sells-group/sire-cli/internal/store"
)

var (
	convertFile     string
	convertMovement string
	convertHotel    string
	convertCity     string
	convertOut      string
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a registration export to a SIRE report file",
	RunE: func(cmd *cobra.Command, _ []string) error {
		ctx := cmd.Context()

		hotel, city, err := establishmentCodes()
		if err != nil {
			return err
		}
		direction, ok := sire.ParseMovementDirection(convertMovement)
		if !ok {
			return eris.Errorf("invalid movement %q (use E or S)", convertMovement)
		}

		ds, err := fetcher.ReadFile(convertFile, fetcher.FileOptions{
			CSV: fetcher.CSVOptions{Encoding: cfg.Convert.Encoding},
		})
		if err != nil {
			return eris.Wrap(err, "read input")
		}

		converter := sire.NewConverter(hotel, city)
		lines, stats := converter.Convert(ds, direction)

		fmt.Println(converter.Report())

		if len(lines) == 0 {
			zap.L().Warn("convert: no valid records produced",
				zap.String("file", convertFile),
			)
			return nil
		}

		outPath, err := writeReport(lines, outputDir(), "")
		if err != nil {
			return err
		}

		recordRun(ctx, convertFile, direction, len(lines), stats)

		zap.L().Info("convert: complete",
			zap.String("input", convertFile),
			zap.String("output", outPath),
			zap.Int("lines", len(lines)),
			zap.Int("skipped", stats.Skipped),
		)
		fmt.Printf("Report written: %s\n", outPath)
		return nil
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertFile, "file", "", "path to input file (required)")
	convertCmd.Flags().StringVar(&convertMovement, "movement", "E", "movement direction: E (entry) or S (exit)")
	convertCmd.Flags().StringVar(&convertHotel, "hotel", "", "establishment code (overrides config)")
	convertCmd.Flags().StringVar(&convertCity, "city", "", "city code (overrides config)")
	convertCmd.Flags().StringVar(&convertOut, "out", "", "output directory (overrides config)")
	_ = convertCmd.MarkFlagRequired("file")
	rootCmd.AddCommand(convertCmd)
}

func establishmentCodes() (hotel, city string, err error) {
	hotel = convertHotel
	if hotel == "" {
		hotel = cfg.Establishment.Code
	}
	if hotel == "" {
		return "", "", eris.New("establishment code is required (--hotel or SIRE_ESTABLISHMENT_CODE)")
	}
	city = convertCity
	if city == "" {
		city = cfg.Establishment.CityCode
	}
	return hotel, city, nil
}

func outputDir() string {
	if convertOut != "" {
		return convertOut
	}
	return cfg.Convert.OutputDir
}

// writeReport saves the accepted lines as a timestamped report file. A
// non-empty tag lands in the filename so concurrent batch outputs never
// collide.
func writeReport(lines []string, dir, tag string) (string, error) {
	stamp := time.Now().Format("2006-01-02_15-04")
	name := fmt.Sprintf("reporte_sire_%s.txt", stamp)
	if tag != "" {
		name = fmt.Sprintf("reporte_sire_%s_%s.txt", tag, stamp)
	}
	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		return "", eris.Wrap(err, "write report file")
	}
	return path, nil
}

// recordRun appends the pass to the local run history. History is best
// effort: a store failure logs a warning but never fails the conversion.
func recordRun(ctx context.Context, inputFile string, direction sire.MovementDirection, lines int, stats sire.Stats) {
	if cfg.Store.Path == "" {
		return
	}

	s, err := store.NewSQLite(cfg.Store.Path)
	if err != nil {
		zap.L().Warn("convert: open run history", zap.Error(err))
		return
	}
	defer s.Close()

	if err := s.Migrate(ctx); err != nil {
		zap.L().Warn("convert: migrate run history", zap.Error(err))
		return
	}
	if _, err := s.RecordRun(ctx, inputFile, string(direction), lines, stats); err != nil {
		zap.L().Warn("convert: record run", zap.Error(err))
	}
}
