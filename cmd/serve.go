package cmd

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/unitconv-cli/unitconv/icon"
	"github.com/unitconv-cli/unitconv/internal/api"
	"github.com/unitconv-cli/unitconv/key"
	"github.com/unitconv-cli/unitconv/log"
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringP("addr", "a", "", "Address to listen on, e.g. :8080")
	lo.Must0(viper.BindPFlag(key.ServeAddr, serveCmd.Flags().Lookup("addr")))

	serveCmd.Flags().IntP("shutdown-timeout", "s", 0, "Seconds to wait for in-flight requests on shutdown")
	lo.Must0(viper.BindPFlag(key.ServeShutdownTimeout, serveCmd.Flags().Lookup("shutdown-timeout")))
}

// serveCmd exposes the conversion engine over HTTP.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve conversions, unit listings and metrics over HTTP",
	Long: `Start an HTTP server exposing

  GET /convert?category=Length&value=1&from=Kilometer&to=Meter
  GET /units
  GET /healthz
  GET /metrics

The server stops gracefully on SIGINT or SIGTERM.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		registry := prometheus.NewRegistry()
		server := api.NewServer(viper.GetString(key.ServeAddr), registry, registry)

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start()
		}()

		cmd.Printf("%s listening on %s\n", icon.Get(icon.Progress), viper.GetString(key.ServeAddr))

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				handleErr(err)
			}
			return
		case <-ctx.Done():
		}

		log.Info("shutdown signal received")
		timeout := time.Duration(viper.GetInt(key.ServeShutdownTimeout)) * time.Second
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Errorf("graceful shutdown failed: %v", err)
			handleErr(err)
		}

		cmd.Printf("%s server stopped\n", icon.Get(icon.Success))
	},
}
