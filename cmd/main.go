package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/TGrooves-208/react-typescript-shadcn-tanstack-demo/internal/config"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

var envFiles []string

var rootCmd = &cobra.Command{
	Use:   "users-api",
	Short: "Users API with REST (v1) and GraphQL (v2) endpoints",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return config.LoadDotEnv(envFiles...)
	},
	SilenceUsage: true,
	// Running without a subcommand starts the server.
	RunE: runServe,
}

func init() {
	rootCmd.PersistentFlags().StringSliceVar(&envFiles, "env-file", []string{".env"}, "dotenv files loaded before reading the environment")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
