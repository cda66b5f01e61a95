package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/wealthboard/internal/asset"
	assetStore "github.com/MrJamesThe3rd/wealthboard/internal/asset/store"
	"github.com/MrJamesThe3rd/wealthboard/internal/auth"
	"github.com/MrJamesThe3rd/wealthboard/internal/config"
	"github.com/MrJamesThe3rd/wealthboard/internal/database"
	"github.com/MrJamesThe3rd/wealthboard/internal/export"
	"github.com/MrJamesThe3rd/wealthboard/internal/goal"
	goalStore "github.com/MrJamesThe3rd/wealthboard/internal/goal/store"
	wbHttp "github.com/MrJamesThe3rd/wealthboard/internal/http"
	assetHandler "github.com/MrJamesThe3rd/wealthboard/internal/http/asset"
	authHandler "github.com/MrJamesThe3rd/wealthboard/internal/http/auth"
	exportHandler "github.com/MrJamesThe3rd/wealthboard/internal/http/export"
	goalHandler "github.com/MrJamesThe3rd/wealthboard/internal/http/goal"
	importHandler "github.com/MrJamesThe3rd/wealthboard/internal/http/importcsv"
	insightHandler "github.com/MrJamesThe3rd/wealthboard/internal/http/insight"
	liabilityHandler "github.com/MrJamesThe3rd/wealthboard/internal/http/liability"
	matchingHandler "github.com/MrJamesThe3rd/wealthboard/internal/http/matching"
	recurringHandler "github.com/MrJamesThe3rd/wealthboard/internal/http/recurring"
	referenceHandler "github.com/MrJamesThe3rd/wealthboard/internal/http/reference"
	reportHandler "github.com/MrJamesThe3rd/wealthboard/internal/http/report"
	stockHandler "github.com/MrJamesThe3rd/wealthboard/internal/http/stock"
	txHandler "github.com/MrJamesThe3rd/wealthboard/internal/http/transaction"
	"github.com/MrJamesThe3rd/wealthboard/internal/importer"
	"github.com/MrJamesThe3rd/wealthboard/internal/insight"
	"github.com/MrJamesThe3rd/wealthboard/internal/liability"
	liabilityStore "github.com/MrJamesThe3rd/wealthboard/internal/liability/store"
	"github.com/MrJamesThe3rd/wealthboard/internal/matching"
	matchingStore "github.com/MrJamesThe3rd/wealthboard/internal/matching/store"
	"github.com/MrJamesThe3rd/wealthboard/internal/recurring"
	recurringStore "github.com/MrJamesThe3rd/wealthboard/internal/recurring/store"
	"github.com/MrJamesThe3rd/wealthboard/internal/reference"
	referenceStore "github.com/MrJamesThe3rd/wealthboard/internal/reference/store"
	"github.com/MrJamesThe3rd/wealthboard/internal/report"
	"github.com/MrJamesThe3rd/wealthboard/internal/stock"
	"github.com/MrJamesThe3rd/wealthboard/internal/transaction"
	txStore "github.com/MrJamesThe3rd/wealthboard/internal/transaction/store"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) > 1 && os.Args[1] == "hash-password" {
		if err := hashPassword(os.Args[2:]); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		return
	}

	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

// hashPassword prints a bcrypt hash suitable for AUTH_PASSWORD_HASH.
func hashPassword(args []string) error {
	if len(args) != 1 {
		return errors.New("usage: api hash-password <password>")
	}

	hash, err := auth.HashPassword(args[0])
	if err != nil {
		return err
	}

	fmt.Println(hash)

	return nil
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer db.Close()

	if cfg.DB.Migrate {
		if err := database.Migrate(ctx, db); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
	}

	catalog, err := stock.LoadCatalog()
	if err != nil {
		return fmt.Errorf("loading stock catalog: %w", err)
	}

	var (
		transactionService = transaction.NewService(txStore.New(db))
		recurringService   = recurring.NewService(recurringStore.New(db), transactionService)
		liabilityService   = liability.NewService(liabilityStore.New(db))
		goalService        = goal.NewService(goalStore.New(db))
		assetService       = asset.NewService(assetStore.New(db))
		referenceService   = reference.NewService(referenceStore.New(db))
		matchingService    = matching.NewService(matchingStore.New(db))
		reportService      = report.NewService(transactionService, recurringService, cfg.App.OpeningBalance)
		insightService     = insight.NewService(transactionService, cfg.Insights.HistoryMonths)
		importService      = importer.NewService(transactionService, matchingService)
		exportService      = export.NewService(transactionService)
		authService        = auth.NewService(auth.Config{
			Username:     cfg.Auth.Username,
			Password:     cfg.Auth.Password,
			PasswordHash: cfg.Auth.PasswordHash,
			Secret:       cfg.Auth.JWTSecret,
			TTL:          cfg.Auth.TokenTTL,
		})
	)

	handlers := wbHttp.Handlers{
		Auth:         authHandler.NewHandler(authService),
		Transactions: txHandler.NewHandler(transactionService, recurringService),
		Recurring:    recurringHandler.NewHandler(recurringService),
		Liabilities:  liabilityHandler.NewHandler(liabilityService),
		Goals:        goalHandler.NewHandler(goalService),
		Assets:       assetHandler.NewHandler(assetService),
		Reference:    referenceHandler.NewHandler(referenceService),
		Reports:      reportHandler.NewHandler(reportService),
		Insights:     insightHandler.NewHandler(insightService),
		Stocks:       stockHandler.NewHandler(catalog),
		Import:       importHandler.NewHandler(importService),
		Matching:     matchingHandler.NewHandler(matchingService),
		Export:       exportHandler.NewHandler(exportService),
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      wbHttp.New(handlers, authService, cfg.App.AllowedOrigins),
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)

	go func() {
		slog.Info("starting server", "app", cfg.App.Name, "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		slog.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down: %w", err)
		}
	}

	return nil
}
