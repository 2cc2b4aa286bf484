package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/konkred/valuation-cli/internal/badge"
	"github.com/konkred/valuation-cli/internal/valuation"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the valuation HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		engine := newEngine()
		mux := newServeMux(engine)

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           mux,
			ReadHeaderTimeout: 10 * time.Second,
		}

		// Graceful shutdown
		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			srv.Shutdown(ctx) //nolint:errcheck
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return eris.Wrap(err, "serve: listen")
		}

		return nil
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "listen port (default: config server.port)")
	rootCmd.AddCommand(serveCmd)
}

// appraisePayload is the serve request body: the engine's superset
// request plus a mode selector. JSON omission of a telemetry field maps
// onto the engine's omitted-vs-zero pointer semantics.
type appraisePayload struct {
	Mode string `json:"mode"`
	valuation.Request
}

// newServeMux wires the HTTP surface over the engine.
func newServeMux(engine *valuation.Engine) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	mux.HandleFunc("GET /v1/badges", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, badge.Catalog())
	})

	mux.HandleFunc("POST /v1/appraise", func(w http.ResponseWriter, r *http.Request) {
		var payload appraisePayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}
		if payload.Mode == "" {
			payload.Mode = string(valuation.ModeCORE)
		}

		mode, err := valuation.ParseMode(payload.Mode)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		if err := payload.Request.Validate(); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}

		reports, err := engine.Run(r.Context(), payload.Request, mode)
		if err != nil {
			zap.L().Error("appraisal failed",
				zap.String("mode", string(mode)),
				zap.Error(err),
			)
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "valuation failed"})
			return
		}

		writeJSON(w, http.StatusOK, reports)
	})

	return mux
}

// writeJSON writes a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("write response", zap.Error(err))
	}
}
