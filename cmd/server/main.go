package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/casd/showcase/internal/config"
	"github.com/casd/showcase/internal/domain/catalog"
	"github.com/casd/showcase/internal/domain/comment"
	"github.com/casd/showcase/internal/jsonstore"
	"github.com/casd/showcase/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	projects, err := jsonstore.NewProjectRepository(cfg.Store.ProjectsPath()).LoadAll()
	if err != nil {
		logger.Error("failed to load project snapshot", "error", err)
		os.Exit(1)
	}

	commentStore, err := jsonstore.NewCommentStore(cfg.Store.CommentsPath())
	if err != nil {
		logger.Error("failed to open comment store", "error", err)
		os.Exit(1)
	}

	catalogSvc := catalog.NewService(projects, logger)
	commentSvc := comment.NewService(commentStore, logger)

	router := transport.NewServer(catalogSvc, commentSvc, logger)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	httpServer := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		logger.Info("server listening", "addr", addr, "projects", len(projects))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
		}
	}()

	waitForShutdown(logger, httpServer)
}

func waitForShutdown(logger *slog.Logger, server *http.Server) {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	logger.Info("shutting down")
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("shutdown error", "error", err)
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
