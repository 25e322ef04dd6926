package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JhonLaurens/medicion-del-servicio/internal/engine"
)

var (
	analyzeSurveyPath string
	analyzeRosterPath string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Run the full batch computation and log a summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		if analyzeSurveyPath != "" {
			cfg.Data.SurveyPath = analyzeSurveyPath
		}
		if analyzeRosterPath != "" {
			cfg.Data.RosterPath = analyzeRosterPath
		}

		eng := engine.New(cfg)
		if err := eng.Load(cmd.Context()); err != nil {
			return err
		}

		nps, _ := eng.NPSSummary()
		warnings, _ := eng.Warnings()
		insights, _ := eng.CategoryInsights()
		participation, _ := eng.ParticipationSummaries()

		zap.L().Info("analysis complete",
			zap.Int("records", eng.TotalResponses()),
			zap.Int("warnings", len(warnings)),
			zap.Int("nps_score", nps.Score),
			zap.Int("categories", len(insights)),
			zap.Int("roster_entries", len(participation.Summaries)),
			zap.Int("unmatched_records", participation.Unmatched),
		)

		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeSurveyPath, "survey", "", "survey file path (default from config)")
	analyzeCmd.Flags().StringVar(&analyzeRosterPath, "roster", "", "roster file path (default from config)")
	rootCmd.AddCommand(analyzeCmd)
}
