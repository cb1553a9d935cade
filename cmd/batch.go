package main

import (
	"fmt"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/sire-cli/internal/fetcher"
	"github.com/sells-group/sire-cli/internal/sire"
)

var batchMovement string

var batchCmd = &cobra.Command{
	Use:   "batch [files...]",
	Short: "Convert multiple registration exports concurrently",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		hotel, city, err := establishmentCodes()
		if err != nil {
			return err
		}
		direction, ok := sire.ParseMovementDirection(batchMovement)
		if !ok {
			return eris.Errorf("invalid movement %q (use E or S)", batchMovement)
		}

		g, ctx := errgroup.WithContext(ctx)
		g.SetLimit(cfg.Batch.MaxConcurrentFiles)

		var mu sync.Mutex
		total := sire.Stats{}

		// Each file gets its own Converter: per-pass state (column map,
		// dedup set, counters) must never be shared across datasets.
		for _, file := range args {
			g.Go(func() error {
				if ctx.Err() != nil {
					return ctx.Err()
				}

				ds, err := fetcher.ReadFile(file, fetcher.FileOptions{
					CSV: fetcher.CSVOptions{Encoding: cfg.Convert.Encoding},
				})
				if err != nil {
					return eris.Wrapf(err, "read %s", file)
				}

				converter := sire.NewConverter(hotel, city)
				lines, stats := converter.Convert(ds, direction)

				if len(lines) > 0 {
					tag := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
					outPath, err := writeReport(lines, outputDir(), tag)
					if err != nil {
						return eris.Wrapf(err, "write report for %s", file)
					}
					recordRun(ctx, file, direction, len(lines), stats)
					zap.L().Info("batch: file converted",
						zap.String("input", file),
						zap.String("output", outPath),
						zap.Int("lines", len(lines)),
					)
				} else {
					zap.L().Warn("batch: no valid records", zap.String("input", file))
				}

				mu.Lock()
				total.Total += stats.Total
				total.Valid += stats.Valid
				total.Skipped += stats.Skipped
				total.Colombianos += stats.Colombianos
				total.Duplicados += stats.Duplicados
				total.Inferidos += stats.Inferidos
				mu.Unlock()
				return nil
			})
		}

		if err := g.Wait(); err != nil {
			return err
		}

		fmt.Printf("Batch complete: %d files, %d rows, %d valid, %d skipped, %d excluded, %d duplicates\n",
			len(args), total.Total, total.Valid, total.Skipped, total.Colombianos, total.Duplicados)
		return nil
	},
}

func init() {
	batchCmd.Flags().StringVar(&batchMovement, "movement", "E", "movement direction: E (entry) or S (exit)")
	rootCmd.AddCommand(batchCmd)
}
