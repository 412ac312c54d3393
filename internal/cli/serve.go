package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/graziososalvare/shelterboard/internal/adapters/memstore"
	"github.com/graziososalvare/shelterboard/internal/adapters/mongostore"
	"github.com/graziososalvare/shelterboard/internal/adapters/otelmetrics"
	"github.com/graziososalvare/shelterboard/internal/app"
	"github.com/graziososalvare/shelterboard/internal/platform/logger"
	"github.com/graziososalvare/shelterboard/internal/ports"
	"github.com/graziososalvare/shelterboard/internal/resolve"
	"github.com/graziososalvare/shelterboard/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the dashboard",
	Long: `Start the dashboard web server.

Examples:
  shelterboard serve                              # MongoDB backend, port 8050
  shelterboard serve --addr :3000                 # custom listen address
  shelterboard serve --memory --csv outcomes.csv  # in-memory dev mode`,
	RunE: runServe,
}

var (
	serveAddr   string
	serveMemory bool
	serveCSV    string
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (overrides SHELTERBOARD_ADDR)")
	serveCmd.Flags().BoolVar(&serveMemory, "memory", false, "Use the in-memory store instead of MongoDB")
	serveCmd.Flags().StringVar(&serveCSV, "csv", "", "CSV export to load into the in-memory store")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := app.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if serveAddr != "" {
		cfg.Addr = serveAddr
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Info("shutting down")
		cancel()
	}()

	client, cleanup, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	// Adapt whatever the store exposes to the single read contract.
	reader, err := resolve.Reader(client)
	if err != nil {
		return err
	}

	metrics := openMetrics(ctx, log)
	defer func() { _ = metrics.Close(context.Background()) }()

	server := web.NewServer(cfg.Addr, cfg.ShutdownTimeout, reader, metrics, log)
	return server.Start(ctx)
}

// openStore picks the backing store. The returned value is handed to
// the capability resolver untyped.
func openStore(ctx context.Context, cfg *app.Config, log *zap.Logger) (any, func(), error) {
	if serveMemory {
		store := memstore.New()
		if serveCSV != "" {
			n, err := store.LoadCSV(serveCSV)
			if err != nil {
				return nil, nil, fmt.Errorf("load %s: %w", serveCSV, err)
			}
			log.Info("loaded csv into memory store",
				zap.String("file", serveCSV),
				zap.Int("records", n))
		}
		return store, func() {}, nil
	}

	store, err := mongostore.Connect(ctx, mongostore.Config{
		URI:        cfg.MongoURI,
		Database:   cfg.MongoDatabase,
		Collection: cfg.MongoCollection,
		Username:   cfg.Username,
		Password:   cfg.Password,
	}, log)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to store: %w", err)
	}
	return store, func() { _ = store.Close() }, nil
}

func openMetrics(ctx context.Context, log *zap.Logger) ports.QueryMetrics {
	mcfg := otelmetrics.LoadConfig()
	if !mcfg.Enabled {
		return otelmetrics.NewNoOpExporter()
	}
	exp, err := otelmetrics.NewExporter(ctx, mcfg)
	if err != nil {
		log.Warn("metrics exporter unavailable, continuing without", zap.Error(err))
		return otelmetrics.NewNoOpExporter()
	}
	return exp
}
