package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JhonLaurens/medicion-del-servicio/internal/engine"
	"github.com/JhonLaurens/medicion-del-servicio/internal/export"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run the batch computation and write an XLSX report",
	RunE: func(cmd *cobra.Command, args []string) error {
		eng := engine.New(cfg)
		if err := eng.Load(cmd.Context()); err != nil {
			return err
		}

		if err := export.Write(eng, exportOut); err != nil {
			return err
		}

		zap.L().Info("export complete",
			zap.String("path", exportOut),
			zap.Int("records", eng.TotalResponses()),
		)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVar(&exportOut, "out", "medicion.xlsx", "output workbook path")
	rootCmd.AddCommand(exportCmd)
}
