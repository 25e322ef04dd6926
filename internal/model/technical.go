package model

// TechnicalInfo is the static study metadata sheet, combined with the
// respondent counts computed at load time.
type TechnicalInfo struct {
	GeneralObjective   string   `json:"general_objective"`
	UniverseTotal      int      `json:"universe_total"`
	TotalRespondents   int      `json:"total_respondents"`
	ResponseRate       float64  `json:"response_rate"`
	ConfidenceLevel    string   `json:"confidence_level"`
	MarginOfError      string   `json:"margin_of_error"`
	FieldPeriod        string   `json:"field_period"`
	CollectionMethod   string   `json:"collection_method"`
	EvaluatedMetrics   []string `json:"evaluated_metrics"`
	MeasuredPeriods    string   `json:"measured_periods"`
	MethodologicalNote string   `json:"methodological_note"`
}
