package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/roivaz/courtlistener-mcp/internal/config"
	"github.com/roivaz/courtlistener-mcp/internal/mcp"
)

func main() {
	root := &cobra.Command{
		Use:          "mcp-server",
		Short:        "CourtListener legal research MCP server",
		SilenceUsage: true,
		RunE:         run,
	}

	root.PersistentFlags().String("transport", "stdio", "MCP transport: stdio or http")
	root.PersistentFlags().String("host", "0.0.0.0", "HTTP host")
	root.PersistentFlags().Int("port", 8000, "HTTP port")
	root.PersistentFlags().String("endpoint-path", "/mcp", "HTTP path of the MCP endpoint")
	root.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("courtlistener-base-url", "", "CourtListener API root (default "+config.DefaultBaseURL+")")
	root.PersistentFlags().String("request-timeout", "", "Per-request timeout, e.g. 30s")

	config.Init(root)

	if err := root.Execute(); err != nil {
		log.Fatalf("command failed: %v", err)
	}
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := mcp.DefaultConfig()
	if err != nil {
		return err
	}
	srv := mcp.New(cfg)

	switch config.Transport() {
	case "stdio":
		cfg.Logger.Info("serving MCP over stdio")
		return srv.ServeStdio()
	case "http":
		return serveHTTP(cmd.Context(), srv, cfg)
	default:
		return fmt.Errorf("unknown transport %q (want stdio or http)", config.Transport())
	}
}

func serveHTTP(ctx context.Context, srv *mcp.Server, cfg mcp.Config) error {
	addr := config.Host() + ":" + strconv.Itoa(config.Port())
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.Handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		cfg.Logger.Info("MCP server listening", "addr", addr, "endpoint", cfg.EndpointPath)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}
