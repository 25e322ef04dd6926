// Package model defines the typed entities shared across the analytics engine.
package model

import "strings"

// Segment identifies the customer segment a survey response belongs to.
type Segment string

// Known segments. The source export only carries these two values.
const (
	SegmentPersonas    Segment = "PERSONAS"
	SegmentEmpresarial Segment = "EMPRESARIAL"
)

// ParseSegment maps a raw SEGMENTO cell onto a Segment. Anything that is
// not explicitly EMPRESARIAL counts as PERSONAS, matching the source export.
func ParseSegment(raw string) Segment {
	if strings.EqualFold(strings.TrimSpace(raw), string(SegmentEmpresarial)) {
		return SegmentEmpresarial
	}
	return SegmentPersonas
}

// Segments lists both segments in report order.
var Segments = []Segment{SegmentPersonas, SegmentEmpresarial}

// Metric identifies one of the four scored Likert questions.
type Metric string

// Metric keys. These are the normalized column names the long Spanish
// question headers are mapped onto at ingestion.
const (
	MetricClaridad      Metric = "claridad_informacion"
	MetricRecomendacion Metric = "recomendacion"
	MetricSatisfaccion  Metric = "satisfaccion_general"
	MetricLealtad       Metric = "lealtad"
)

// Metrics lists all scored metrics in report order.
var Metrics = []Metric{MetricClaridad, MetricRecomendacion, MetricSatisfaccion, MetricLealtad}

// metricNames maps metric keys to display names used in reports.
var metricNames = map[Metric]string{
	MetricClaridad:      "Claridad de Información",
	MetricRecomendacion: "Recomendación (NPS)",
	MetricSatisfaccion:  "Satisfacción General",
	MetricLealtad:       "Lealtad",
}

// DisplayName returns the human-readable name for a metric.
func (m Metric) DisplayName() string {
	if name, ok := metricNames[m]; ok {
		return name
	}
	return string(m)
}

// SurveyRecord is one validated survey response. Each metric score is
// either nil (absent or rejected at validation) or an integer in [1,5].
type SurveyRecord struct {
	ID            string  `json:"id"`
	DateModified  string  `json:"date_modified"`
	Segment       Segment `json:"segment"`
	City          string  `json:"city"`
	Agency        string  `json:"agency"`
	ExecutiveType string  `json:"executive_type"`
	Executive     string  `json:"executive"`
	Claridad      *int    `json:"claridad_informacion"`
	Recomendacion *int    `json:"recomendacion"`
	Satisfaccion  *int    `json:"satisfaccion_general"`
	Lealtad       *int    `json:"lealtad"`
	Suggestion    string  `json:"suggestion,omitempty"`
}

// Score returns the value for a metric, or nil when absent.
func (r *SurveyRecord) Score(m Metric) *int {
	switch m {
	case MetricClaridad:
		return r.Claridad
	case MetricRecomendacion:
		return r.Recomendacion
	case MetricSatisfaccion:
		return r.Satisfaccion
	case MetricLealtad:
		return r.Lealtad
	}
	return nil
}

// HasAnyScore reports whether at least one metric carries a valid value.
// Records without any valid score are dropped at ingestion.
func (r *SurveyRecord) HasAnyScore() bool {
	for _, m := range Metrics {
		if r.Score(m) != nil {
			return true
		}
	}
	return false
}
