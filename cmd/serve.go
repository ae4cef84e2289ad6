package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mamchoi/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve round generation over HTTP",
	Long: `Start the HTTP API. The API is stateless: clients send their unlocked
sets and icon history with each request and keep their own progress.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr)")
}

func runServe(cmd *cobra.Command, args []string) error {
	addr := cfg.Server.Addr
	if a, _ := cmd.Flags().GetString("addr"); a != "" {
		addr = a
	}

	srv := api.NewServer(newGenerator(),
		api.WithLogger(log.Named("api")),
		api.WithAllowedOrigins(cfg.Server.AllowedOrigins...))
	server := &http.Server{
		Addr:              addr,
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.String("addr", addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var serveErr error
	select {
	case <-ctx.Done():
	case err := <-errCh:
		serveErr = fmt.Errorf("serve: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("shutdown", zap.Error(err))
	}
	log.Info("server stopped")
	return serveErr
}
