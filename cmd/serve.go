package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/sire-cli/internal/dataset"
	"github.com/sells-group/sire-cli/internal/sire"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server accepting conversion requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		hotel, city, err := establishmentCodes()
		if err != nil {
			return err
		}

		mux := http.NewServeMux()

		mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
		})

		mux.HandleFunc("POST /convert", func(w http.ResponseWriter, r *http.Request) {
			var req struct {
				Columns  []string `json:"columns"`
				Rows     [][]any  `json:"rows"`
				Movement string   `json:"movement"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				http.Error(w, `{"error":"invalid request body"}`, http.StatusBadRequest)
				return
			}

			direction, ok := sire.ParseMovementDirection(req.Movement)
			if !ok {
				http.Error(w, `{"error":"movement must be E or S"}`, http.StatusBadRequest)
				return
			}
			if len(req.Columns) == 0 {
				http.Error(w, `{"error":"columns are required"}`, http.StatusBadRequest)
				return
			}

			ds := dataset.New(req.Columns)
			for _, row := range req.Rows {
				cells := make([]dataset.Cell, len(row))
				for i, v := range row {
					cells[i] = jsonCell(v)
				}
				ds.AppendRow(cells)
			}

			// One Converter per request: per-pass state is not shareable.
			converter := sire.NewConverter(hotel, city)
			lines, stats := converter.Convert(ds, direction)

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusOK)
			json.NewEncoder(w).Encode(map[string]any{
				"lines":    lines,
				"stats":    stats,
				"errors":   converter.Errors(),
				"warnings": converter.Warnings(),
			})
		})

		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", port()),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			zap.L().Info("serve: listening", zap.Int("port", port()))
			errCh <- server.ListenAndServe()
		}()

		select {
		case <-ctx.Done():
			zap.L().Info("serve: shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return eris.Wrap(server.Shutdown(shutdownCtx), "shutdown server")
		case err := <-errCh:
			if err != nil && err != http.ErrServerClosed {
				return eris.Wrap(err, "serve")
			}
			return nil
		}
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func port() int {
	if servePort != 0 {
		return servePort
	}
	return cfg.Server.Port
}

// jsonCell maps a decoded JSON value to a dataset cell. JSON numbers decode
// as float64; anything non-scalar renders through fmt.
func jsonCell(v any) dataset.Cell {
	switch val := v.(type) {
	case nil:
		return dataset.Empty()
	case string:
		return dataset.String(val)
	case float64:
		return dataset.Number(val)
	case bool:
		return dataset.String(fmt.Sprintf("%t", val))
	default:
		return dataset.String(fmt.Sprintf("%v", val))
	}
}
