// Package web serves the dashboard page and its JSON API.
package web

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/graziososalvare/shelterboard/internal/outcomes"
	"github.com/graziososalvare/shelterboard/internal/ports"
)

//go:embed static/*
var staticFiles embed.FS

type Server struct {
	router          *http.ServeMux
	addr            string
	shutdownTimeout time.Duration
	reader          ports.Reader
	metrics         ports.QueryMetrics
	logger          *zap.Logger

	// Baseline snapshot fetched once with the empty filter before the
	// server accepts traffic; read-only afterwards. Dropdown options
	// are derived from it.
	baseline outcomes.Dataset
	options  outcomes.Options
}

func NewServer(
	addr string,
	shutdownTimeout time.Duration,
	reader ports.Reader,
	metrics ports.QueryMetrics,
	logger *zap.Logger,
) *Server {
	s := &Server{
		router:          http.NewServeMux(),
		addr:            addr,
		shutdownTimeout: shutdownTimeout,
		reader:          reader,
		metrics:         metrics,
		logger:          logger,
	}
	s.loadBaseline()
	s.setupRoutes()
	return s
}

// loadBaseline performs the initial empty-filter fetch. On failure the
// baseline becomes the empty dataset with the expected columns; no
// retry, the error is only logged.
func (s *Server) loadBaseline() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	start := time.Now()
	records, err := s.reader.Read(ctx, outcomes.Filter{})
	s.metrics.RecordQuery(ctx, len(records), time.Since(start), err != nil)
	if err != nil {
		s.logger.Error("initial fetch failed", zap.Error(err))
		s.baseline = outcomes.EmptyDataset()
	} else {
		s.baseline = outcomes.Normalize(records)
		s.logger.Info("connected and fetched initial data",
			zap.Int("records", len(s.baseline.Records)))
	}
	s.options = outcomes.OptionsFrom(s.baseline)
}

func (s *Server) setupRoutes() {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to create static filesystem: %v", err))
	}
	s.router.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	s.router.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	s.router.HandleFunc("GET /{$}", s.handleIndex)

	s.router.HandleFunc("GET /api/records", s.handleRecords)
	s.router.HandleFunc("GET /api/options", s.handleOptions)
}

func (s *Server) Start(ctx context.Context) error {
	server := &http.Server{
		Addr:         s.addr,
		Handler:      requestID(s.router),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	s.logger.Info("starting server", zap.String("addr", s.addr))

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("server shutdown error", zap.Error(err))
		}
	}()

	err := server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
