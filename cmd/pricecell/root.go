package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aescanero/pricecell/internal/application/pricing"
	"github.com/aescanero/pricecell/internal/config"
	"github.com/aescanero/pricecell/pkg/adapters/metrics/prometheus"
	"github.com/aescanero/pricecell/pkg/adapters/storage/memory"
	"github.com/aescanero/pricecell/pkg/api/http"

	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var rootCmd = &cobra.Command{
	Use:   "pricecell",
	Short: "Serve a single shared price over HTTP",
	Long: `pricecell keeps one optional unsigned price in memory and serves it at /price.
GET reads it, PATCH {"price": N} sets it, DELETE clears it.

Configuration is read from the environment (PRICECELL_HTTP_HOST,
PRICECELL_HTTP_PORT, PRICECELL_ADMIN_HOST, PRICECELL_ADMIN_PORT, LOG_LEVEL,
GIN_MODE, TIMEOUT_READ_HEADER, TIMEOUT_SHUTDOWN).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		return run(cfg)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "pricecell %s (built %s)\n", Version, BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func run(cfg *config.Config) error {
	// Initialize logger
	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting pricecell",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	registry := promclient.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	// Initialize application components
	cell := memory.NewPriceCell()
	pricingSvc := pricing.NewService(
		cell,
		prometheus.NewCollector(registry, cell),
		logger,
	)

	serverCfg := &http.Config{
		Addr:              cfg.GetHTTPAddr(),
		ReadHeaderTimeout: cfg.Timeouts.ReadHeaderTimeout,
		Mode:              cfg.GinMode,
		Pricing:           pricingSvc,
		Registry:          registry,
		Logger:            logger,
	}
	apiServer := http.NewServer(serverCfg)

	var adminServer *http.Server
	if cfg.AdminEnabled() {
		adminCfg := *serverCfg
		adminCfg.Addr = cfg.GetAdminAddr()
		adminServer = http.NewAdminServer(&adminCfg)
	}

	// Start servers
	go func() {
		if err := apiServer.Start(); err != nil {
			logger.Fatal("API server failed", zap.Error(err))
		}
	}()

	if adminServer != nil {
		go func() {
			if err := adminServer.Start(); err != nil {
				logger.Fatal("admin server failed", zap.Error(err))
			}
		}()
	}

	logger.Info("pricecell started",
		zap.String("http_addr", cfg.GetHTTPAddr()),
		zap.Bool("admin_enabled", cfg.AdminEnabled()))

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Timeouts.ShutdownTimeout)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("API server shutdown error", zap.Error(err))
	}

	if adminServer != nil {
		if err := adminServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("admin server shutdown error", zap.Error(err))
		}
	}

	logger.Info("pricecell shut down complete")
	return nil
}

// initLogger initializes the logger based on log level
func initLogger(level string) *zap.Logger {
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zapLevel)
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	logger, err := config.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}

	return logger
}
