// Command sync runs a migration from the legacy storefront (or a saved
// feed document) against the target database, without the HTTP server.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	syncapp "github.com/nickborrello/BayStateApp-sub000/internal/application/sync"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/legacy"
	"github.com/nickborrello/BayStateApp-sub000/internal/domain/migration"
	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/config"
	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/legacystore"
	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/logger"
	"github.com/nickborrello/BayStateApp-sub000/internal/infrastructure/persistence"
)

const triggeredByCLI = "cli"

var (
	flagLimit      int
	flagFile       string
	flagStartOrder string
	flagEndOrder   string
	flagStartDate  string
	flagEndDate    string
)

func main() {
	root := &cobra.Command{
		Use:           "sync",
		Short:         "Run a one-way migration from the legacy storefront",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	products := &cobra.Command{
		Use:   "products",
		Short: "Sync the product feed into the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), migration.SyncTypeProducts)
		},
	}
	products.Flags().IntVar(&flagLimit, "limit", 0, "Stop after roughly this many records (0 = full feed)")
	products.Flags().StringVar(&flagFile, "file", "", "Sync a saved feed document instead of downloading")

	customers := &cobra.Command{
		Use:   "customers",
		Short: "Sync the customer feed into profiles",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), migration.SyncTypeCustomers)
		},
	}
	customers.Flags().IntVar(&flagLimit, "limit", 0, "Stop after this many records (0 = full feed)")
	customers.Flags().StringVar(&flagFile, "file", "", "Sync a saved feed document instead of downloading")

	orders := &cobra.Command{
		Use:   "orders",
		Short: "Sync historical orders into the trade store",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), migration.SyncTypeOrders)
		},
	}
	orders.Flags().IntVar(&flagLimit, "limit", 0, "Maximum number of orders to request (0 = no limit)")
	orders.Flags().StringVar(&flagFile, "file", "", "Sync a saved feed document instead of downloading")
	orders.Flags().StringVar(&flagStartOrder, "start-order", "", "First order number to include")
	orders.Flags().StringVar(&flagEndOrder, "end-order", "", "Last order number to include")
	orders.Flags().StringVar(&flagStartDate, "start-date", "", "Earliest order date (MM/DD/YYYY)")
	orders.Flags().StringVar(&flagEndDate, "end-date", "", "Latest order date (MM/DD/YYYY)")

	test := &cobra.Command{
		Use:   "test",
		Short: "Probe the legacy storefront connection",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTest(cmd.Context())
		},
	}

	root.AddCommand(products, customers, orders, test)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runTest(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	client, err := legacystore.NewClient(legacystore.Config{
		BaseURL:        cfg.LegacyStore.BaseURL,
		MerchantID:     cfg.LegacyStore.MerchantID,
		Password:       cfg.LegacyStore.Password,
		TimeoutSeconds: cfg.LegacyStore.TimeoutSeconds,
	}, log)
	if err != nil {
		return fmt.Errorf("invalid legacy store configuration: %w", err)
	}

	ok, message := client.TestConnection(ctx)
	if !ok {
		return fmt.Errorf("connection failed: %s", message)
	}
	fmt.Println("Connection OK:", message)
	return nil
}

func run(ctx context.Context, syncType migration.SyncType) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	client, err := legacystore.NewClient(legacystore.Config{
		BaseURL:        cfg.LegacyStore.BaseURL,
		MerchantID:     cfg.LegacyStore.MerchantID,
		Password:       cfg.LegacyStore.Password,
		TimeoutSeconds: cfg.LegacyStore.TimeoutSeconds,
	}, log)
	if err != nil && flagFile == "" {
		return fmt.Errorf("invalid legacy store configuration: %w", err)
	}

	productRepo := persistence.NewGormProductRepository(db.DB)
	profileRepo := persistence.NewGormProfileRepository(db.DB)
	orderRepo := persistence.NewGormOrderRepository(db.DB)
	logRepo := persistence.NewGormMigrationLogRepository(db.DB)

	syncCfg := syncapp.Config{
		BatchSize:        cfg.Sync.BatchSize,
		ProgressInterval: cfg.Sync.ProgressInterval,
		MaxErrorEntries:  cfg.Sync.MaxErrorEntries,
	}
	dispatcher := syncapp.NewDispatcher(
		syncapp.NewProductSyncService(client, productRepo, logRepo, log, syncCfg),
		syncapp.NewCustomerSyncService(client, profileRepo, logRepo, log, syncCfg),
		syncapp.NewOrderSyncService(client, orderRepo, productRepo, profileRepo, logRepo, log, syncCfg),
	)

	var summary *syncapp.Summary
	if flagFile != "" {
		raw, err := os.ReadFile(flagFile)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", flagFile, err)
		}
		summary, err = dispatcher.RunDocument(ctx, syncType, string(raw), triggeredByCLI)
		if err != nil {
			return err
		}
	} else {
		summary, err = dispatcher.Run(ctx, syncType, syncapp.RunRequest{
			Limit: flagLimit,
			Query: legacy.OrderQuery{
				StartOrder: flagStartOrder,
				EndOrder:   flagEndOrder,
				StartDate:  flagStartDate,
				EndDate:    flagEndDate,
				Limit:      flagLimit,
			},
			TriggeredBy: triggeredByCLI,
		})
		if err != nil {
			return err
		}
	}

	printSummary(summary)
	return nil
}

func printSummary(s *syncapp.Summary) {
	fmt.Printf("Sync %s finished: %s\n", s.SyncType, s.Status)
	fmt.Printf("  Log ID:    %s\n", s.LogID)
	fmt.Printf("  Processed: %d\n", s.Processed)
	fmt.Printf("  Created:   %d\n", s.Created)
	fmt.Printf("  Updated:   %d\n", s.Updated)
	fmt.Printf("  Skipped:   %d\n", s.Skipped)
	fmt.Printf("  Failed:    %d\n", s.Failed)
	fmt.Printf("  Duration:  %s\n", s.Duration)
	if len(s.Errors) > 0 {
		fmt.Printf("  Errors (%d):\n", len(s.Errors))
		for _, e := range s.Errors {
			if e.RecordID != "" {
				fmt.Printf("    [%s] %s\n", e.RecordID, e.Message)
			} else {
				fmt.Printf("    %s\n", e.Message)
			}
		}
	}
}
