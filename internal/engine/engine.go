// Package engine runs the full-batch survey computation and memoizes
// the derived structures behind a read-only query surface.
package engine

import (
	"context"
	"math"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/JhonLaurens/medicion-del-servicio/internal/config"
	"github.com/JhonLaurens/medicion-del-servicio/internal/ingest"
	"github.com/JhonLaurens/medicion-del-servicio/internal/model"
	"github.com/JhonLaurens/medicion-del-servicio/internal/roster"
	"github.com/JhonLaurens/medicion-del-servicio/internal/stats"
	"github.com/JhonLaurens/medicion-del-servicio/internal/suggest"
)

// Engine owns the loaded survey data and every derived structure.
// Construct one at startup and share the reference; tests construct
// independent instances instead of reaching for global state.
type Engine struct {
	cfg        *config.Config
	classifier *suggest.Classifier

	mu   sync.RWMutex
	snap *Snapshot
}

// Snapshot is the memoized result of one computation pass. All fields
// are computed in full during Load; queries only read.
type Snapshot struct {
	LoadID   string    `json:"load_id"`
	LoadedAt time.Time `json:"loaded_at"`

	Records            []model.SurveyRecord       `json:"-"`
	Warnings           []ingest.Warning           `json:"warnings"`
	Distributions      []model.MetricDistribution `json:"distributions"`
	CityComparisons    []model.CityComparison     `json:"city_comparisons"`
	NPS                model.NPSSummary           `json:"nps"`
	Participation      roster.MatchResult         `json:"participation"`
	Analyses           []model.SuggestionAnalysis `json:"analyses"`
	Insights           []model.CategoryInsight    `json:"insights"`
	RatingDistribution []model.RatingCount        `json:"rating_distribution"`
	AgencyPerformance  []model.AgencyPerformance  `json:"agency_performance"`
	Technical          model.TechnicalInfo        `json:"technical"`
}

// New creates an Engine. Nothing is read until Load.
func New(cfg *config.Config) *Engine {
	return &Engine{
		cfg:        cfg,
		classifier: suggest.NewClassifier(),
	}
}

// Load runs the batch computation once and memoizes the result.
// Subsequent calls return immediately; use Reload to recompute.
// The only fatal condition is an unreadable or empty survey file.
func (e *Engine) Load(ctx context.Context) error {
	e.mu.RLock()
	loaded := e.snap != nil
	e.mu.RUnlock()
	if loaded {
		return nil
	}
	return e.Reload(ctx)
}

// Reload discards any memoized state and recomputes everything from the
// source files. There is no incremental path: any change to the sources
// requires this full pass.
func (e *Engine) Reload(ctx context.Context) error {
	snap, err := e.compute(ctx)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.snap = snap
	e.mu.Unlock()
	return nil
}

func (e *Engine) compute(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	loadID := uuid.New().String()
	log := zap.L().With(zap.String("component", "engine"), zap.String("load_id", loadID))
	start := time.Now()

	records, warnings, err := e.loadSurvey()
	if err != nil {
		return nil, err
	}

	entries := e.loadRoster(log)

	snap := &Snapshot{
		LoadID:             loadID,
		LoadedAt:           start.UTC(),
		Records:            records,
		Warnings:           warnings,
		Distributions:      stats.AllDistributions(records),
		CityComparisons:    stats.CityComparisons(records, e.cfg.Stats.ComparisonTolerance),
		NPS:                stats.NPS(records),
		Participation:      roster.Match(records, entries),
		RatingDistribution: stats.RatingDistribution(records),
		AgencyPerformance:  stats.AgencyPerformance(records),
		Technical:          e.technicalInfo(len(records)),
	}

	snap.Analyses = e.classifier.AnalyzeAll(suggestionTexts(records))
	snap.Insights = e.classifier.Insights(snap.Analyses, suggest.InsightOptions{
		TopKeywords: e.cfg.Suggest.TopKeywords,
		TopThemes:   e.cfg.Suggest.TopThemes,
		MaxExamples: e.cfg.Suggest.MaxExamples,
	})

	log.Info("engine: computation pass complete",
		zap.Int("records", len(records)),
		zap.Int("warnings", len(warnings)),
		zap.Int("cities", len(snap.CityComparisons)),
		zap.Int("suggestions", len(snap.Analyses)),
		zap.Duration("elapsed", time.Since(start)),
	)

	return snap, nil
}

// loadSurvey reads and validates the primary survey file. Failure here
// is fatal: no meaningful computation is possible without it.
func (e *Engine) loadSurvey() ([]model.SurveyRecord, []ingest.Warning, error) {
	f, err := os.Open(e.cfg.Data.SurveyPath)
	if err != nil {
		return nil, nil, eris.Wrapf(err, "engine: open survey file %s", e.cfg.Data.SurveyPath)
	}
	defer f.Close()

	raw, readWarnings, err := ingest.NewReader(e.cfg.Data.SurveyDelimiter).Read(f)
	if err != nil {
		return nil, nil, eris.Wrap(err, "engine: parse survey file")
	}

	records, recordWarnings := ingest.ToSurveyRecords(raw)
	if len(records) == 0 {
		return nil, nil, eris.New("engine: survey file contains no valid records")
	}

	return records, append(readWarnings, recordWarnings...), nil
}

// loadRoster reads the roster file. A missing or unreadable roster
// degrades to zero coverage for every entry instead of failing the run.
func (e *Engine) loadRoster(log *zap.Logger) []model.RosterEntry {
	entries, err := roster.LoadFile(e.cfg.Data.RosterPath, e.cfg.Data.RosterDelimiter)
	if err != nil {
		log.Warn("engine: roster unavailable, coverage degraded to zero",
			zap.String("path", e.cfg.Data.RosterPath),
			zap.Error(err),
		)
		return nil
	}
	return entries
}

func suggestionTexts(records []model.SurveyRecord) []string {
	var texts []string
	for i := range records {
		if records[i].Suggestion != "" {
			texts = append(texts, records[i].Suggestion)
		}
	}
	return texts
}

// generalObjective is the study description carried on the technical
// sheet, verbatim from the study documentation.
const generalObjective = "Evaluar de manera integral la satisfacción de los clientes de Coltefinanciera " +
	"en los segmentos Personas y Empresarial durante los períodos 2024-2 y 2025-1, mediante la medición " +
	"de indicadores clave como claridad de la información en atención, satisfacción general del servicio, " +
	"nivel de recomendación (NPS) y lealtad del cliente. Este estudio busca identificar fortalezas y " +
	"oportunidades de mejora en la experiencia del cliente, proporcionando insights estratégicos para la " +
	"toma de decisiones orientadas al fortalecimiento de la relación comercial y la optimización de los " +
	"procesos de atención al cliente en todas las agencias a nivel nacional."

func (e *Engine) technicalInfo(respondents int) model.TechnicalInfo {
	universe := e.cfg.Stats.UniverseTotal
	rate := 0.0
	if universe > 0 {
		rate = math.Round(float64(respondents)/float64(universe)*100*100) / 100
	}

	names := make([]string, 0, len(model.Metrics))
	for _, m := range model.Metrics {
		names = append(names, m.DisplayName())
	}

	return model.TechnicalInfo{
		GeneralObjective:   generalObjective,
		UniverseTotal:      universe,
		TotalRespondents:   respondents,
		ResponseRate:       rate,
		ConfidenceLevel:    "95%",
		MarginOfError:      "2,50%",
		FieldPeriod:        "15 de abril al 01 de junio de 2025",
		CollectionMethod:   "Web, mediante SurveyMonkey",
		EvaluatedMetrics:   names,
		MeasuredPeriods:    "2024-2 y 2025-1",
		MethodologicalNote: "La encuesta se realizó en 2025-1 pero representa la medición de los períodos 2024-2 y 2025-1",
	}
}
