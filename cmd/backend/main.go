package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/snitil/bsm-discovery-backend/internal/config"
	"github.com/snitil/bsm-discovery-backend/internal/graph"
	"github.com/snitil/bsm-discovery-backend/pkg/adapters/metrics/prometheus"
	"github.com/snitil/bsm-discovery-backend/pkg/api/http"
)

var (
	// Version is set by build flags
	Version   = "dev"
	BuildTime = "unknown"
)

func main() {
	// A .env file is optional; environment wins if both are present.
	_ = godotenv.Load()

	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the backend and serves until an interrupt. Configuration or
// startup failures are returned before any socket is bound; main turns
// them into an exit code of 1.
func run(args []string, stdout io.Writer) error {
	cfg, err := config.Load(args)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger := initLogger(cfg.LogLevel)
	defer logger.Sync()

	logger.Info("starting discovery backend",
		zap.String("version", Version),
		zap.String("build_time", BuildTime))

	baseDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to resolve base directory: %w", err)
	}

	// The static root must exist before anything binds a socket.
	staticRoot := cfg.ResolveStaticRoot(baseDir)
	if info, err := os.Stat(staticRoot); err != nil || !info.IsDir() {
		return fmt.Errorf("static root not found: %s", staticRoot)
	}

	graphStore := graph.NewStore(cfg.ResolveSampleGraphPath(baseDir), logger)
	collector := prometheus.NewCollector()

	httpServer := http.NewServer(&http.Config{
		Addr:       cfg.Addr(),
		StaticRoot: staticRoot,
		Graphs:     graphStore,
		Metrics:    collector,
		Logger:     logger,
	})

	fmt.Fprintf(stdout, "Backend serving on %s\n", cfg.URL())
	fmt.Fprintf(stdout, "Static root: %s\n", staticRoot)
	fmt.Fprintln(stdout, "API endpoints:")
	fmt.Fprintln(stdout, "  - GET /api/health")
	fmt.Fprintln(stdout, "  - GET /api/sample-graph")

	go func() {
		if err := httpServer.Start(); err != nil {
			logger.Fatal("HTTP server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	logger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("discovery backend shut down complete")
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
