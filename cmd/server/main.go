package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/BerylCAtieno/marketing-decision-agent/internal/api"
	"github.com/BerylCAtieno/marketing-decision-agent/internal/config"
	"github.com/BerylCAtieno/marketing-decision-agent/internal/logging"
	"github.com/BerylCAtieno/marketing-decision-agent/internal/profiler"
)

func main() {
	rootCmd := &cobra.Command{
		Use:           "marketing-agent",
		Short:         "Quantum marketing decision API",
		Long:          "Serves simulated customer segmentation and campaign budget recommendations over HTTP.",
		Version:       api.ServiceVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServer,
	}

	flags := rootCmd.Flags()
	flags.String("port", "3000", "HTTP port")
	flags.String("app-env", "development", "Environment (development, production)")
	flags.String("allowed-origins", "*", "Comma separated CORS origins")
	flags.String("static-dir", "public", "Static site served for unknown GET routes in production")
	flags.String("log-level", "info", "Log level (debug, info, warn, error)")
	flags.Bool("simulate-latency", true, "Delay responses to mimic model processing time")
	flags.Duration("shutdown-timeout", 10*time.Second, "Grace period for in-flight requests on shutdown")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.New(cfg.Env, cfg.LogLevel)

	if cfg.Env == api.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := profiler.NewEngine(profiler.Options{SimulateLatency: cfg.SimulateLatency})

	router, err := api.NewRouter(api.RouterConfig{
		Environment:    cfg.Env,
		AllowedOrigins: cfg.AllowedOrigins,
		StaticDir:      cfg.StaticDir,
		Logger:         logger,
	}, engine)
	if err != nil {
		return fmt.Errorf("failed to build router: %w", err)
	}

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		printBanner(cfg.Port)
		logger.Info().Str("addr", server.Addr).Str("env", cfg.Env).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		return fmt.Errorf("server failed to start: %w", err)
	case sig := <-quit:
		logger.Info().Str("signal", sig.String()).Msg("shutting down gracefully")
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error during server shutdown: %w", err)
	}

	logger.Info().Msg("server exited")
	return nil
}

func printBanner(port string) {
	base := "http://localhost:" + port
	fmt.Printf(`
    ==========================================================
                   QUANTUM MARKETING SERVER v%s
    ==========================================================
      Server running on port %s
      Health:        %s/health
      API Test:      %s/api/test
      Customer API:  %s/api/analyze-customer
      Budget API:    %s/api/predict-budget
      Quantum API:   %s/api/quantum-predictions
      Metrics API:   %s/api/real-time-metrics
    ==========================================================

`, api.ServiceVersion, port, base, base, base, base, base, base)
}
