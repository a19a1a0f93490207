package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/assessly/autograde/internal/api/http"
	"github.com/assessly/autograde/internal/config"
	"github.com/assessly/autograde/internal/grading"
)

func main() {
	cfg := config.FromEnv()
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	opts := []grading.Option{
		grading.WithLengthPenalty(cfg.MinWordFloor, cfg.LengthRatio),
		grading.WithFeedbackTiers(grading.FeedbackTiers{
			Excellent: cfg.TierExcellent,
			Good:      cfg.TierGood,
			Partial:   cfg.TierPartial,
		}),
	}
	if len(cfg.StopWords) > 0 {
		opts = append(opts, grading.WithStopWords(cfg.StopWords))
	}
	svc := grading.NewService(opts...)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	api.Mount(r, svc, cfg.PassThreshold)

	logger.Info("graderd listening", "addr", cfg.HTTPAddr, "pass_threshold", cfg.PassThreshold)
	if err := http.ListenAndServe(cfg.HTTPAddr, r); err != nil {
		log.Fatalf("server: %v", err)
	}
}
