package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/graziososalvare/shelterboard/internal/adapters/memstore"
	"github.com/graziososalvare/shelterboard/internal/adapters/mongostore"
	"github.com/graziososalvare/shelterboard/internal/app"
	"github.com/graziososalvare/shelterboard/internal/outcomes"
	"github.com/graziososalvare/shelterboard/internal/platform/logger"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Import a CSV export into the outcomes collection",
	Long: `Bulk-import an Austin Animal Center style CSV export into the
configured MongoDB collection.

Example:
  shelterboard seed --file aac_shelter_outcomes.csv`,
	RunE: runSeed,
}

var (
	seedFile  string
	seedBatch int
)

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "", "CSV file to import (required)")
	seedCmd.Flags().IntVar(&seedBatch, "batch", 1000, "Insert batch size")
	_ = seedCmd.MarkFlagRequired("file")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, err := app.New()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx := cmd.Context()
	store, err := mongostore.Connect(ctx, mongostore.Config{
		URI:        cfg.MongoURI,
		Database:   cfg.MongoDatabase,
		Collection: cfg.MongoCollection,
		Username:   cfg.Username,
		Password:   cfg.Password,
	}, log)
	if err != nil {
		return fmt.Errorf("connect to store: %w", err)
	}
	defer func() { _ = store.Close() }()

	// Decode and insert concurrently: the parser feeds batches to a
	// single inserter goroutine.
	batches := make(chan []outcomes.Record, 4)
	var inserted int

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(batches)
		records, err := memstore.DecodeCSV(seedFile)
		if err != nil {
			return err
		}
		for start := 0; start < len(records); start += seedBatch {
			end := min(start+seedBatch, len(records))
			select {
			case batches <- records[start:end]:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})
	g.Go(func() error {
		for batch := range batches {
			n, err := store.Insert(gctx, batch)
			if err != nil {
				return err
			}
			inserted += n
			log.Debug("inserted batch", zap.Int("records", n))
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("seed from %s: %w", seedFile, err)
	}

	log.Info("seed completed",
		zap.String("file", seedFile),
		zap.Int("records", inserted))
	return nil
}
