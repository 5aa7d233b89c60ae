package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/database"
	httpctx "github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/api/http/context"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/api/http/router"
	httpServer "github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/api/http/server"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/config"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/logger"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/model"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/repository/postgres"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/server"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/service"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().String("port", "", "HTTP port, overrides HTTP_PORT")
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetString("port"); port != "" {
		cfg.HTTP.Port = port
	}
	logger := logger.New(cfg.LogLevel)
	database.SetLogger(logger)

	db, err := postgres.NewConnection(ctx, cfg.Database.URL, postgres.Options{
		AccessKey:    cfg.Database.AccessKey,
		MaxConns:     cfg.Database.MaxConns,
		QueryTimeout: cfg.Database.QueryTimeout,
		Migrate:      cfg.Database.MigrateOnStart,
	})
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	queries, err := postgres.LoadQueries()
	if err != nil {
		logger.Fatal("failed to load queries", "error", err)
	}

	userRepo := postgres.NewUserRepository(db, queries)
	userService := service.NewUser(userRepo, logger)

	httpSrv, err := registerHTTPServer(logger, userService, db, cfg)
	if err != nil {
		logger.Fatal("failed to initialize http server", "error", err)
	}

	var sl model.SecurityLayer
	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address(), "https", cfg.HTTP.EnableHTTPS)
		if err := s.Start(sl); err != nil {
			logger.Error("failed to start server", "error", err)
			stop()
		}
	}(httpSrv)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := httpSrv.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpSrv.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
	return nil
}

func registerHTTPServer(
	logger *logger.Logger,
	userService *service.User,
	db *postgres.Connection,
	cfg *config.Config,
) (*httpServer.HTTPServer, error) {
	r := router.New(userService, db, httpctx.NewManager(), logger, router.Options{
		Version:     buildVersion,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		BodyLimit:   cfg.HTTP.BodyLimit,
	})
	app, err := r.Register()
	if err != nil {
		return nil, err
	}

	return httpServer.NewHTTPServer(app, fmt.Sprintf(":%s", cfg.HTTP.Port)), nil
}
