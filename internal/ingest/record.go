package ingest

import (
	"go.uber.org/zap"

	"github.com/JhonLaurens/medicion-del-servicio/internal/model"
)

// Survey export column names after header mapping.
const (
	colID             = "ID"
	colDateModified   = "DATE_MODIFIED"
	colSegment        = "SEGMENTO"
	colCity           = "CIUDAD"
	colAgency         = "AGENCIA"
	colExecutiveType  = "TIPO_EJECUTIVO"
	colExecutive      = "EJECUTIVO"
	colExecutiveFinal = "EJECUTIVO_FINAL"
	colSuggestion     = "sugerencias"
)

// metricColumns lists the four scored columns in declaration order.
var metricColumns = []model.Metric{
	model.MetricClaridad,
	model.MetricRecomendacion,
	model.MetricSatisfaccion,
	model.MetricLealtad,
}

// ToSurveyRecords validates raw rows into typed survey records. A row is
// kept only when ID and SEGMENTO are present and at least one metric
// parses to a valid score; everything else is dropped with a warning.
// Invalid individual scores become nil and are warned about without
// dropping the row.
func ToSurveyRecords(raw []RawRecord) ([]model.SurveyRecord, []Warning) {
	var (
		records  []model.SurveyRecord
		warnings []Warning
	)

	for i, rr := range raw {
		rowNum := i + 2 // matches Reader numbering: 1-based after header

		rec := model.SurveyRecord{
			ID:            rr[colID],
			DateModified:  rr[colDateModified],
			Segment:       model.ParseSegment(rr[colSegment]),
			City:          rr[colCity],
			Agency:        rr[colAgency],
			ExecutiveType: rr[colExecutiveType],
			Executive:     executiveName(rr),
			Suggestion:    rr[colSuggestion],
		}

		for _, m := range metricColumns {
			score, reason := parseScore(rr[string(m)])
			if reason != "" {
				warnings = append(warnings, Warning{
					Row:    rowNum,
					Field:  string(m),
					Value:  rr[string(m)],
					Reason: reason,
				})
			}
			setScore(&rec, m, score)
		}

		if rr[colID] == "" || rr[colSegment] == "" || !rec.HasAnyScore() {
			warnings = append(warnings, Warning{Row: rowNum, Reason: ReasonDroppedRecord})
			continue
		}

		records = append(records, rec)
	}

	zap.L().Info("ingest: validated survey records",
		zap.Int("accepted", len(records)),
		zap.Int("raw_rows", len(raw)),
		zap.Int("warnings", len(warnings)),
	)

	return records, warnings
}

// executiveName prefers the curated EJECUTIVO_FINAL column, falling back
// to the raw EJECUTIVO field when the curated one is empty.
func executiveName(rr RawRecord) string {
	if name := rr[colExecutiveFinal]; name != "" {
		return name
	}
	return rr[colExecutive]
}

func setScore(rec *model.SurveyRecord, m model.Metric, score *int) {
	switch m {
	case model.MetricClaridad:
		rec.Claridad = score
	case model.MetricRecomendacion:
		rec.Recomendacion = score
	case model.MetricSatisfaccion:
		rec.Satisfaccion = score
	case model.MetricLealtad:
		rec.Lealtad = score
	}
}
