package engine

import (
	"github.com/rotisserie/eris"

	"github.com/JhonLaurens/medicion-del-servicio/internal/ingest"
	"github.com/JhonLaurens/medicion-del-servicio/internal/model"
	"github.com/JhonLaurens/medicion-del-servicio/internal/roster"
)

// ErrNotLoaded is returned by queries before the first successful Load.
var ErrNotLoaded = eris.New("engine: data not loaded")

// snapshot returns the memoized snapshot, or nil before the first Load.
func (e *Engine) snapshot() *Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.snap
}

// Loaded reports whether a computation pass has completed.
func (e *Engine) Loaded() bool {
	return e.snapshot() != nil
}

// MetricDistributions returns every metric distribution at every scope.
func (e *Engine) MetricDistributions() ([]model.MetricDistribution, error) {
	snap := e.snapshot()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return append([]model.MetricDistribution(nil), snap.Distributions...), nil
}

// CityComparisons returns the per-city benchmarks against the
// consolidated averages.
func (e *Engine) CityComparisons() ([]model.CityComparison, error) {
	snap := e.snapshot()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return append([]model.CityComparison(nil), snap.CityComparisons...), nil
}

// SuggestionAnalyses returns the per-item classifier output.
func (e *Engine) SuggestionAnalyses() ([]model.SuggestionAnalysis, error) {
	snap := e.snapshot()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return append([]model.SuggestionAnalysis(nil), snap.Analyses...), nil
}

// CategoryInsights returns the per-category suggestion rollups.
func (e *Engine) CategoryInsights() ([]model.CategoryInsight, error) {
	snap := e.snapshot()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return append([]model.CategoryInsight(nil), snap.Insights...), nil
}

// ParticipationSummaries returns the roster coverage statistics.
func (e *Engine) ParticipationSummaries() (roster.MatchResult, error) {
	snap := e.snapshot()
	if snap == nil {
		return roster.MatchResult{}, ErrNotLoaded
	}
	out := roster.MatchResult{
		Summaries: append([]model.ParticipationSummary(nil), snap.Participation.Summaries...),
		Unmatched: snap.Participation.Unmatched,
	}
	return out, nil
}

// NPSSummary returns the loyalty buckets and composite score.
func (e *Engine) NPSSummary() (model.NPSSummary, error) {
	snap := e.snapshot()
	if snap == nil {
		return model.NPSSummary{}, ErrNotLoaded
	}
	return snap.NPS, nil
}

// RatingDistribution returns the raw 1..5 respondent counts for the
// general-satisfaction metric.
func (e *Engine) RatingDistribution() ([]model.RatingCount, error) {
	snap := e.snapshot()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return append([]model.RatingCount(nil), snap.RatingDistribution...), nil
}

// AgencyPerformance returns the per-agency satisfaction rollup.
func (e *Engine) AgencyPerformance() ([]model.AgencyPerformance, error) {
	snap := e.snapshot()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return append([]model.AgencyPerformance(nil), snap.AgencyPerformance...), nil
}

// TechnicalInfo returns the study metadata sheet.
func (e *Engine) TechnicalInfo() (model.TechnicalInfo, error) {
	snap := e.snapshot()
	if snap == nil {
		return model.TechnicalInfo{}, ErrNotLoaded
	}
	return snap.Technical, nil
}

// Warnings returns the recoverable problems recorded during ingestion,
// for callers that want to audit skipped rows and rejected values.
func (e *Engine) Warnings() ([]ingest.Warning, error) {
	snap := e.snapshot()
	if snap == nil {
		return nil, ErrNotLoaded
	}
	return append([]ingest.Warning(nil), snap.Warnings...), nil
}

// TotalResponses returns the count of validated survey records.
func (e *Engine) TotalResponses() int {
	snap := e.snapshot()
	if snap == nil {
		return 0
	}
	return len(snap.Records)
}
