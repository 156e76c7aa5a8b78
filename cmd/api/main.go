package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"supermarket/internal/config"
	"supermarket/internal/database"
	"supermarket/internal/handler"
	"supermarket/internal/metrics"
	"supermarket/internal/pricelist"
	"supermarket/internal/printer"
	"supermarket/internal/repository"
	"supermarket/internal/router"
	"supermarket/internal/service"
	"supermarket/internal/teller"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting supermarket API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to prepare database schema: %w", err)
	}

	// Initialize repositories
	productRepo := repository.NewProductRepository(pool, logger)
	receiptRepo := repository.NewReceiptRepository(pool, logger)

	// The teller prices against the stored catalog
	tl, err := teller.New(productRepo, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize teller: %w", err)
	}
	sharedTeller := service.NewSharedTeller(tl)

	// Initialize services
	productService := service.NewProductService(productRepo, logger)
	offerService := service.NewOfferService(sharedTeller, logger)

	// Seed catalog and offers from price lists (S3 with local fallback)
	sheet, err := pricelist.LoadAll(ctx, newPricelistLoader(ctx, cfg, logger), cfg.Pricelist.Files, logger)
	if err != nil {
		return fmt.Errorf("failed to load price lists: %w", err)
	}
	if err := productService.Import(ctx, sheet.Products); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	if err := offerService.Import(ctx, sheet.Offers); err != nil {
		return fmt.Errorf("failed to seed offers: %w", err)
	}

	m := metrics.New("supermarket", prometheus.DefaultRegisterer)
	checkoutService := service.NewCheckoutService(
		sharedTeller,
		receiptRepo,
		printer.New(cfg.Printer.Columns),
		m,
		logger,
	)

	// Initialize HTTP handlers
	handlers := router.Handlers{
		Product:  handler.NewProductHandler(productService, logger),
		Offer:    handler.NewOfferHandler(offerService, logger),
		Checkout: handler.NewCheckoutHandler(checkoutService, logger),
		Receipt:  handler.NewReceiptHandler(checkoutService, logger),
	}

	// Initialize router
	mux := router.New(handlers, m, prometheus.DefaultGatherer, cfg.Auth.APIKey, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}

// newPricelistLoader builds the price-list loader: S3 with local fallback
// when S3 is enabled, otherwise the local file system only.
func newPricelistLoader(ctx context.Context, cfg *config.Config, logger zerolog.Logger) pricelist.Loader {
	fileLoader := pricelist.NewFileLoader(logger)
	if !cfg.S3.Enabled {
		logger.Info().Msg("using local file system for price lists (S3 disabled)")
		return fileLoader
	}

	s3Loader, err := pricelist.NewS3Loader(ctx, cfg.S3.Bucket, cfg.S3.Region, logger)
	if err != nil {
		logger.Warn().
			Err(err).
			Msg("failed to initialise S3 loader, falling back to local file system only")
		return fileLoader
	}

	return pricelist.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, true, logger)
}
