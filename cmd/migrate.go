package main

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/database"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/config"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/logger"
	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/repository/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Manage the database schema",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	RunE: withMigrationDB(func(cmd *cobra.Command, db *sql.DB, logger *logger.Logger) error {
		if err := database.Migrate(cmd.Context(), db); err != nil {
			return err
		}
		logger.Info("migrations applied")
		return nil
	}),
}

var migrateDownCmd = &cobra.Command{
	Use:   "down",
	Short: "Roll back the most recent migration",
	RunE: withMigrationDB(func(cmd *cobra.Command, db *sql.DB, logger *logger.Logger) error {
		if err := database.Rollback(cmd.Context(), db); err != nil {
			return err
		}
		logger.Info("migration rolled back")
		return nil
	}),
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of every migration",
	RunE: withMigrationDB(func(cmd *cobra.Command, db *sql.DB, _ *logger.Logger) error {
		return database.Status(cmd.Context(), db)
	}),
}

var migrateVersionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the current schema version",
	RunE: withMigrationDB(func(cmd *cobra.Command, db *sql.DB, _ *logger.Logger) error {
		version, err := database.Version(cmd.Context(), db)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), version)
		return nil
	}),
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd, migrateDownCmd, migrateStatusCmd, migrateVersionCmd)
	rootCmd.AddCommand(migrateCmd)
}

type migrationFunc func(cmd *cobra.Command, db *sql.DB, logger *logger.Logger) error

func withMigrationDB(fn migrationFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.NewConfig()
		if err != nil {
			return err
		}
		logger := logger.New(cfg.LogLevel)
		database.SetLogger(logger)

		db, err := postgres.OpenSQL(cfg.Database.URL, cfg.Database.AccessKey)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := fn(cmd, db, logger); err != nil {
			logger.Error("migration command failed", "command", cmd.Name(), "error", err)
			return err
		}
		return nil
	}
}
