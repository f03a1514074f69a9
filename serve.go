package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ztrade/launchweek/auth"
	"github.com/ztrade/launchweek/prompts"
	"github.com/ztrade/launchweek/resources"
	"github.com/ztrade/launchweek/tools"
	"github.com/ztrade/launchweek/web"
)

func serveCmd() *cobra.Command {
	var (
		transport string
		listen    string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server (stdio or http) and the web dashboard",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(transport, listen)
		},
	}
	cmd.Flags().StringVar(&transport, "transport", "stdio", "transport mode: stdio, http")
	cmd.Flags().StringVar(&listen, "listen", ":8080", "listen address for http transport")
	return cmd
}

func runServe(transport, listen string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	svc, closeStore, err := openService(cfg)
	if err != nil {
		log.Warnf("%s (launch tools may not work)", err.Error())
	} else {
		defer closeStore()
	}

	gen := newGenerator(ctx, cfg)

	authCfg := auth.LoadConfig(cfg)

	serverOpts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
	}

	if authCfg.Enabled {
		serverOpts = append(serverOpts, server.WithToolHandlerMiddleware(auth.ToolAuthMiddleware(authCfg)))
	}

	mcpServer := server.NewMCPServer("launchweek", Version, serverOpts...)

	tools.RegisterAll(mcpServer, svc, gen)
	resources.RegisterAll(mcpServer)
	prompts.RegisterAll(mcpServer)

	switch transport {
	case "stdio":
		log.Info("Starting launchweek MCP server in stdio mode")
		if err := server.ServeStdio(mcpServer); err != nil {
			return fmt.Errorf("stdio server error: %w", err)
		}
		return nil

	case "http":
		addr := cfg.GetString("mcp.listen")
		if addr == "" {
			addr = listen
		}

		opts := []server.StreamableHTTPOption{
			server.WithEndpointPath("/mcp"),
		}
		if authCfg.Enabled {
			opts = append(opts, server.WithHTTPContextFunc(auth.HTTPContextFunc(authCfg)))
		}
		httpServer := server.NewStreamableHTTPServer(mcpServer, opts...)

		mux := http.NewServeMux()
		mux.Handle("/mcp", httpServer)
		mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]string{
				"status":  "ok",
				"version": Version,
			})
		})
		if cfg.GetBool("web.enabled") {
			gin.SetMode(gin.ReleaseMode)
			mux.Handle("/", web.NewServer(svc, gen, authCfg).Handler())
		}

		srv := &http.Server{Addr: addr, Handler: auth.HTTPMiddleware(authCfg)(mux)}
		if authCfg.Enabled {
			log.Infof("Starting launchweek server on %s with auth enabled (type: %s)", addr, authCfg.Type)
		} else {
			log.Infof("Starting launchweek server on %s (no auth)", addr)
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- srv.ListenAndServe()
		}()
		select {
		case err := <-errCh:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return fmt.Errorf("http server error: %w", err)
		case <-ctx.Done():
			log.Info("Shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		}

	default:
		return fmt.Errorf("unknown transport: %s", transport)
	}
}
