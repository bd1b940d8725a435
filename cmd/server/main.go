package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/yigit/academia/internal/bootstrap"
	"github.com/yigit/academia/internal/pkg/logger"
	"github.com/yigit/academia/internal/seed"
	"github.com/yigit/academia/internal/server"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "academia-server",
	Short: "Academia record server",
	Long:  "Multi-role academic records server: admins, faculty and students connect over TCP and manage shared student, course and enrollment records.",
	RunE: func(cmd *cobra.Command, args []string) error {
		srv, err := server.NewServer(configPath)
		if err != nil {
			logger.Error().Err(err).Msg("Failed to initialize server")
			return err
		}
		return srv.Run()
	},
	SilenceUsage: true,
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load sample faculty, student and course records",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(configPath)
		if err != nil {
			return err
		}
		deps, err := bootstrap.BuildDependencies(cfg, lgr)
		if err != nil {
			return err
		}
		return seed.CreateSampleData(deps.Repos, lgr)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config",
		filepath.Join("configs", "config.yaml"), "path to the YAML config file")
	rootCmd.AddCommand(seedCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
