package main

import (
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JhonLaurens/medicion-del-servicio/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "medicion",
	Short: "Survey analytics aggregation engine",
	Long:  "Ingests delimited survey exports, validates Likert responses, computes segmented distributions, matches the executive roster, benchmarks cities, and classifies free-text suggestions.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "cmd: load config")
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "cmd: init logger")
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
