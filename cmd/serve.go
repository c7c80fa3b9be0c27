package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tayloree/voicecart/internal/api"
	"github.com/tayloree/voicecart/internal/catalog"
	"github.com/tayloree/voicecart/internal/display"
	"github.com/tayloree/voicecart/internal/logger"
	"github.com/tayloree/voicecart/internal/metrics"
	"github.com/tayloree/voicecart/internal/server"
)

var (
	flagAddr     string
	flagFallback bool
	flagSeed     int64
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Run or check the catalog service",
	Example: `  voicecart catalog serve --addr :8080
  voicecart catalog health --catalog-url http://localhost:8080`,
}

var catalogServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the built-in catalog over HTTP",
	Long: "Serves the built-in product catalog at " + api.ProductsPath + " and " + api.CategoriesPath + ",\n" +
		"with Prometheus metrics at " + api.MetricsPath + ". Point other voicecart runs at it with\n" +
		"--catalog-url. With --fallback, queries the catalog cannot answer get estimated products.",
	Example: `  voicecart catalog serve
  voicecart catalog serve --addr 127.0.0.1:9000 --fallback --seed 42`,
	Args: cobra.NoArgs,
	RunE: runCatalogServe,
}

var catalogHealthCmd = &cobra.Command{
	Use:     "health",
	Short:   "Check a remote catalog service",
	Example: `  voicecart catalog health --catalog-url http://localhost:8080`,
	Args:    cobra.NoArgs,
	RunE:    runCatalogHealth,
}

func init() {
	f := catalogServeCmd.Flags()
	f.StringVar(&flagAddr, "addr", ":8080", "Listen address")
	f.BoolVar(&flagFallback, "fallback", false, "Invent estimated products for unknown queries")
	f.Int64Var(&flagSeed, "seed", 0, "Random seed for estimated products (default: time based)")

	catalogCmd.AddCommand(catalogServeCmd, catalogHealthCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log, err := logger.NewLogger(cfg.LogLevel)
	if err != nil {
		return invalidArgsError(fmt.Sprintf("invalid log level %q", cfg.LogLevel))
	}
	defer log.Sync()

	opts := []server.Option{
		server.WithMetrics(metrics.New(true)),
		server.WithLogger(log),
	}
	if flagFallback {
		seed := flagSeed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}
		opts = append(opts, server.WithFallback(catalog.NewFallback(rand.New(rand.NewSource(seed)))))
	}
	srv := server.New(catalog.NewBuiltin(cfg.CatalogLatency), opts...)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	display.PrintSuccess(cmd.ErrOrStderr(), fmt.Sprintf("Serving catalog on %s (Ctrl+C to stop)", flagAddr))
	if err := srv.Serve(ctx, flagAddr); err != nil {
		return internalError("running catalog service", err)
	}
	return nil
}

func runCatalogHealth(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.CatalogURL == "" {
		return invalidArgsError(
			"no catalog service configured",
			"voicecart catalog health --catalog-url http://localhost:8080",
		)
	}

	client := api.NewClient(cfg.CatalogURL)
	health, err := client.Health(cmd.Context())
	if err != nil {
		return upstreamError("checking health", err)
	}
	if flagJSON {
		return printJSON(cmd, health)
	}
	display.PrintSuccess(cmd.OutOrStdout(),
		fmt.Sprintf("%s is %s with %d products", client.BaseURL(), health.Status, health.Products))
	return nil
}
