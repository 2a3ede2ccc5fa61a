package main

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagPromEnable  bool
	flagPromListen  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the snake SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection plays its own game, named after the SSH user.
All connections share the score store, so the leaderboard is shared.
Use a redis:// or postgres:// store to share it across servers.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.snake/host_key

Examples:
  snake serve                                # Listen on :23234
  snake serve --ssh :2222                    # Listen on port 2222
  snake serve --db redis://localhost:6379/0  # Shared Redis leaderboard

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagPromEnable, "prometheus", false, "Expose Prometheus metrics")
	serveCmd.Flags().StringVar(&flagPromListen, "prometheus-listen", ":9000", "Prometheus metrics HTTP address")
}

func runServe(cmd *cobra.Command, _ []string) error {
	gameCfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.DSN = flagDB
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Game = gameCfg
	cfg.TickRate = gameCfg.TickRate

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	startMetricsExporter()

	fmt.Printf("Starting snake SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	return server.ListenAndServe()
}

// startMetricsExporter serves /metrics in the background when enabled.
func startMetricsExporter() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake-metrics",
	})
	if !flagPromEnable {
		logger.Debug("prometheus exporter not enabled")
		return
	}

	logger.Info("starting prometheus exporter", "address", flagPromListen)
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		if err := http.ListenAndServe(flagPromListen, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Warn("prometheus exporter stopped", "error", err)
		}
	}()
}
