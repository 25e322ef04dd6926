// Package export writes the engine's query outputs to an XLSX workbook.
package export

import (
	"fmt"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/zap"

	"github.com/JhonLaurens/medicion-del-servicio/internal/engine"
	"github.com/JhonLaurens/medicion-del-servicio/internal/model"
)

// Write renders one workbook with a sheet per query surface item.
// The engine must already be loaded.
func Write(eng *engine.Engine, path string) error {
	f := xlsx.NewFile()

	if err := writeDistributions(f, eng); err != nil {
		return err
	}
	if err := writeCities(f, eng); err != nil {
		return err
	}
	if err := writeNPS(f, eng); err != nil {
		return err
	}
	if err := writeParticipation(f, eng); err != nil {
		return err
	}
	if err := writeInsights(f, eng); err != nil {
		return err
	}

	if err := f.Save(path); err != nil {
		return eris.Wrapf(err, "export: save workbook %s", path)
	}

	zap.L().Info("export: workbook written", zap.String("path", path))
	return nil
}

func addHeader(sheet *xlsx.Sheet, cols ...string) {
	row := sheet.AddRow()
	for _, c := range cols {
		row.AddCell().SetString(c)
	}
}

func writeDistributions(f *xlsx.File, eng *engine.Engine) error {
	dists, err := eng.MetricDistributions()
	if err != nil {
		return err
	}

	sheet, err := f.AddSheet("Distribuciones")
	if err != nil {
		return eris.Wrap(err, "export: add distributions sheet")
	}

	addHeader(sheet, "Métrica", "Alcance", "Valor", "Respuestas", "Promedio", "% Rating 5", "% Rating 4", "% Rating 1-3")
	for _, d := range dists {
		row := sheet.AddRow()
		row.AddCell().SetString(d.Metric.DisplayName())
		row.AddCell().SetString(string(d.Scope))
		row.AddCell().SetString(d.ScopeValue)
		row.AddCell().SetInt(d.Count)
		row.AddCell().SetFloat(d.Average)
		row.AddCell().SetFloat(d.Rating5Pct)
		row.AddCell().SetFloat(d.Rating4Pct)
		row.AddCell().SetFloat(d.Rating123Pct)
	}
	return nil
}

func writeCities(f *xlsx.File, eng *engine.Engine) error {
	comparisons, err := eng.CityComparisons()
	if err != nil {
		return err
	}

	sheet, err := f.AddSheet("Ciudades")
	if err != nil {
		return eris.Wrap(err, "export: add cities sheet")
	}

	cols := []string{"Ciudad", "Encuestados"}
	for _, m := range model.Metrics {
		cols = append(cols, m.DisplayName(), fmt.Sprintf("%s vs nacional", m.DisplayName()))
	}
	addHeader(sheet, cols...)

	for _, c := range comparisons {
		row := sheet.AddRow()
		row.AddCell().SetString(c.City)
		row.AddCell().SetInt(c.Respondents)
		for _, m := range model.Metrics {
			row.AddCell().SetFloat(c.Averages[m])
			row.AddCell().SetString(string(c.Verdicts[m]))
		}
	}
	return nil
}

func writeNPS(f *xlsx.File, eng *engine.Engine) error {
	nps, err := eng.NPSSummary()
	if err != nil {
		return err
	}

	sheet, err := f.AddSheet("NPS")
	if err != nil {
		return eris.Wrap(err, "export: add NPS sheet")
	}

	addHeader(sheet, "Promotores", "Pasivos", "Detractores", "NPS")
	row := sheet.AddRow()
	row.AddCell().SetInt(nps.Promoters)
	row.AddCell().SetInt(nps.Passives)
	row.AddCell().SetInt(nps.Detractors)
	row.AddCell().SetInt(nps.Score)
	return nil
}

func writeParticipation(f *xlsx.File, eng *engine.Engine) error {
	participation, err := eng.ParticipationSummaries()
	if err != nil {
		return err
	}

	sheet, err := f.AddSheet("Participación")
	if err != nil {
		return eris.Wrap(err, "export: add participation sheet")
	}

	addHeader(sheet, "Ejecutivo", "Segmento", "Ciudad", "Agencia", "Encuestas", "Universo", "% Cobertura", "% del Total")
	for _, s := range participation.Summaries {
		row := sheet.AddRow()
		row.AddCell().SetString(s.Entry.Name)
		row.AddCell().SetString(string(s.Entry.Segment))
		row.AddCell().SetString(s.Entry.City)
		row.AddCell().SetString(s.Entry.Agency)
		row.AddCell().SetInt(s.MatchedCount)
		row.AddCell().SetInt(s.Entry.UniverseSize)
		row.AddCell().SetFloat(s.CoverageRate)
		row.AddCell().SetFloat(s.PctOfTotal)
	}

	footer := sheet.AddRow()
	footer.AddCell().SetString("Sin asignar")
	footer.AddCell().SetString("")
	footer.AddCell().SetString("")
	footer.AddCell().SetString("")
	footer.AddCell().SetInt(participation.Unmatched)
	return nil
}

func writeInsights(f *xlsx.File, eng *engine.Engine) error {
	insights, err := eng.CategoryInsights()
	if err != nil {
		return err
	}

	sheet, err := f.AddSheet("Sugerencias")
	if err != nil {
		return eris.Wrap(err, "export: add suggestions sheet")
	}

	addHeader(sheet, "Categoría", "Cantidad", "% del Total", "% Positivo", "% Negativo", "% Neutral", "% Alta Prioridad")
	for _, ins := range insights {
		row := sheet.AddRow()
		row.AddCell().SetString(ins.Category)
		row.AddCell().SetInt(ins.Count)
		row.AddCell().SetInt(ins.Percentage)
		row.AddCell().SetInt(ins.Sentiment.Positive)
		row.AddCell().SetInt(ins.Sentiment.Negative)
		row.AddCell().SetInt(ins.Sentiment.Neutral)
		row.AddCell().SetInt(ins.Priority.High)
	}
	return nil
}
