package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "recipes_api/docs"
	"recipes_api/internal/config"
	"recipes_api/internal/handlers"
	"recipes_api/internal/logger"
	"recipes_api/internal/repository"
	"recipes_api/internal/server"
	"recipes_api/internal/service"

	"github.com/spf13/pflag"
)

// @title                       Recipes API
// @version                     1.0
// @description                 CRUD API for recipes with token-protected writes.
// @BasePath                    /
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	fs := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	config.RegisterFlags(fs)
	_ = fs.Parse(os.Args[1:])

	cfg, err := config.Load(fs)
	if err != nil {
		logger.Get(logger.InfoLevel).Fatalw("error reading config", "err", err)
	}

	// init logger
	log := logger.Get(cfg.Log.Level)
	defer func() { _ = log.Sync() }()

	// open store
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	repos, closeStore, err := repository.Open(ctx, cfg.DB)
	cancel()
	if err != nil {
		log.Fatalw("failed to open store", "driver", cfg.DB.Driver, "err", err)
	}
	defer func() {
		if cerr := closeStore(context.Background()); cerr != nil {
			log.Errorw("failed to close store", "err", cerr)
		}
	}()
	log.Infow("store opened", "driver", cfg.DB.Driver)

	// wire dependencies
	services := service.NewService(repos, service.AuthConfig{
		SigningKey: cfg.Auth.SigningKey,
		TokenTTL:   cfg.Auth.TokenTTL,
	})
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := server.New(server.Timeouts{
		ReadHeader: cfg.Server.ReadHeaderTimeout,
		Write:      cfg.Server.WriteTimeout,
		Idle:       cfg.Server.IdleTimeout,
	})
	runHTTPServer(srv, cfg.Port, apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, cfg, log)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		log.Infow("http server listening", "port", port)
		if err := srv.Run(port, handler.InitRoutes()); err != nil {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, cfg *config.Config, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("server forced to shutdown", "err", err)
	}
}
