package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/JhonLaurens/medicion-del-servicio/internal/engine"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the read-only query surface over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		eng := engine.New(cfg)
		if err := eng.Load(ctx); err != nil {
			return err
		}

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: newRouter(eng),
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			zap.L().Info("starting query server", zap.Int("port", port))
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return eris.Wrap(err, "server listen")
			}
			return nil
		})
		g.Go(func() error {
			<-gctx.Done()
			zap.L().Info("shutting down query server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})

		return g.Wait()
	},
}

// newRouter wires the query surface. Every endpoint is a read of the
// memoized snapshot except reload, the single mutation entry point.
func newRouter(eng *engine.Engine) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST"},
	}))

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/distributions", handleQuery(eng.MetricDistributions))
		r.Get("/cities", handleQuery(eng.CityComparisons))
		r.Get("/suggestions", handleQuery(eng.SuggestionAnalyses))
		r.Get("/insights", handleQuery(eng.CategoryInsights))
		r.Get("/participation", func(w http.ResponseWriter, _ *http.Request) {
			respond(w)(eng.ParticipationSummaries())
		})
		r.Get("/nps", func(w http.ResponseWriter, _ *http.Request) {
			respond(w)(eng.NPSSummary())
		})
		r.Get("/ratings", handleQuery(eng.RatingDistribution))
		r.Get("/agencies", handleQuery(eng.AgencyPerformance))
		r.Get("/technical", func(w http.ResponseWriter, _ *http.Request) {
			respond(w)(eng.TechnicalInfo())
		})
		r.Get("/warnings", handleQuery(eng.Warnings))

		r.Post("/reload", func(w http.ResponseWriter, req *http.Request) {
			if err := eng.Reload(req.Context()); err != nil {
				zap.L().Error("reload failed", zap.Error(err))
				writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "reload failed"})
				return
			}
			writeJSON(w, http.StatusOK, map[string]string{"status": "reloaded"})
		})
	})

	return r
}

// handleQuery adapts a slice-returning engine query to an HTTP handler.
func handleQuery[T any](query func() ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		respond(w)(query())
	}
}

// respond writes the query result, mapping not-loaded to 503.
func respond(w http.ResponseWriter) func(data any, err error) {
	return func(data any, err error) {
		if err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": err.Error()})
			return
		}
		writeJSON(w, http.StatusOK, data)
	}
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("write response", zap.Error(err))
	}
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
