package engine

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JhonLaurens/medicion-del-servicio/internal/config"
	"github.com/JhonLaurens/medicion-del-servicio/internal/model"
)

const surveyFixture = "ID;SEGMENTO;CIUDAD;AGENCIA;EJECUTIVO_FINAL;satisfaccion_general;recomendacion;sugerencias\n" +
	"1;PERSONAS;MEDELLIN;SAN DIEGO;MARIA FERNANDA LOPEZ;5;5;excelente servicio, gracias\n" +
	"2;PERSONAS;MEDELLIN;SAN DIEGO;MARIA FERNANDA LOPEZ;4;4;\n" +
	"3;EMPRESARIAL;BOGOTA D.C.;BOGOTA PRINCIPAL;CARLOS RUIZ;3;2;mucha demora en la atención\n"

const rosterFixture = "EJECUTIVO_FINAL;SEGMENTO;CIUDAD;AGENCIA;UNIVERSO\n" +
	"MARIA FERNANDA LOPEZ;PERSONAS;MEDELLIN;SAN DIEGO;100\n" +
	"CARLOS RUIZ;EMPRESARIAL;BOGOTA D.C.;BOGOTA PRINCIPAL;50\n"

func writeFixture(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	return &config.Config{
		Data: config.DataConfig{
			SurveyPath:      writeFixture(t, dir, "datos.csv", surveyFixture),
			RosterPath:      writeFixture(t, dir, "ejecutivos.csv", rosterFixture),
			SurveyDelimiter: ";",
			RosterDelimiter: ";",
		},
		Stats:   config.StatsConfig{ComparisonTolerance: 0.1, UniverseTotal: 24067},
		Suggest: config.SuggestConfig{TopKeywords: 5, TopThemes: 3, MaxExamples: 3},
	}
}

func TestEngineLoadEndToEnd(t *testing.T) {
	eng := New(testConfig(t))
	require.NoError(t, eng.Load(context.Background()))

	assert.Equal(t, 3, eng.TotalResponses())

	dists, err := eng.MetricDistributions()
	require.NoError(t, err)
	assert.NotEmpty(t, dists)

	nps, err := eng.NPSSummary()
	require.NoError(t, err)
	assert.Equal(t, 1, nps.Promoters)
	assert.Equal(t, 1, nps.Passives)
	assert.Equal(t, 1, nps.Detractors)
	assert.Equal(t, 0, nps.Score)

	part, err := eng.ParticipationSummaries()
	require.NoError(t, err)
	require.Len(t, part.Summaries, 2)
	assert.Equal(t, 2, part.Summaries[0].MatchedCount)
	assert.InDelta(t, 2.0, part.Summaries[0].CoverageRate, 0.001)
	assert.Equal(t, 1, part.Summaries[1].MatchedCount)
	assert.Equal(t, 0, part.Unmatched)

	analyses, err := eng.SuggestionAnalyses()
	require.NoError(t, err)
	assert.Len(t, analyses, 2)

	cities, err := eng.CityComparisons()
	require.NoError(t, err)
	require.Len(t, cities, 2)
	assert.Equal(t, "MEDELLIN", cities[0].City)

	tech, err := eng.TechnicalInfo()
	require.NoError(t, err)
	assert.Equal(t, 24067, tech.UniverseTotal)
	assert.Equal(t, 3, tech.TotalRespondents)
	assert.InDelta(t, 0.01, tech.ResponseRate, 0.001)
}

func TestEngineQueriesBeforeLoad(t *testing.T) {
	eng := New(testConfig(t))

	assert.False(t, eng.Loaded())
	assert.Zero(t, eng.TotalResponses())

	_, err := eng.MetricDistributions()
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = eng.NPSSummary()
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = eng.Warnings()
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestEngineLoadIsMemoized(t *testing.T) {
	eng := New(testConfig(t))
	ctx := context.Background()

	require.NoError(t, eng.Load(ctx))
	first := eng.snapshot().LoadID

	require.NoError(t, eng.Load(ctx))
	assert.Equal(t, first, eng.snapshot().LoadID)

	require.NoError(t, eng.Reload(ctx))
	assert.NotEqual(t, first, eng.snapshot().LoadID)
}

func TestEngineMissingSurveyIsFatal(t *testing.T) {
	cfg := testConfig(t)
	cfg.Data.SurveyPath = filepath.Join(t.TempDir(), "nope.csv")

	eng := New(cfg)
	assert.Error(t, eng.Load(context.Background()))
	assert.False(t, eng.Loaded())
}

func TestEngineMissingRosterDegrades(t *testing.T) {
	cfg := testConfig(t)
	cfg.Data.RosterPath = filepath.Join(t.TempDir(), "nope.csv")

	eng := New(cfg)
	require.NoError(t, eng.Load(context.Background()))

	part, err := eng.ParticipationSummaries()
	require.NoError(t, err)
	assert.Empty(t, part.Summaries)
	assert.Equal(t, 3, part.Unmatched)
}

func TestEngineSurveyWithNoValidRecords(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	cfg.Data.SurveyPath = writeFixture(t, dir, "datos.csv",
		"ID;SEGMENTO;satisfaccion_general\n1;PERSONAS;\n")

	eng := New(cfg)
	assert.Error(t, eng.Load(context.Background()))
}

func TestEngineCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	eng := New(testConfig(t))
	assert.Error(t, eng.Load(ctx))
}

func TestEngineWarningsSurface(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	cfg.Data.SurveyPath = writeFixture(t, dir, "datos.csv",
		"ID;SEGMENTO;satisfaccion_general\n"+
			"1;PERSONAS;5\n"+
			"2;PERSONAS;9\n")

	eng := New(cfg)
	require.NoError(t, eng.Load(context.Background()))

	warnings, err := eng.Warnings()
	require.NoError(t, err)
	assert.Len(t, warnings, 2)
	assert.Equal(t, 1, eng.TotalResponses())
}

func TestEngineRatingDistribution(t *testing.T) {
	eng := New(testConfig(t))
	require.NoError(t, eng.Load(context.Background()))

	counts, err := eng.RatingDistribution()
	require.NoError(t, err)
	require.Len(t, counts, 5)
	assert.Equal(t, 1, counts[4].Count)
	assert.Equal(t, 1, counts[3].Count)
	assert.Equal(t, 1, counts[2].Count)
}

func TestEngineAgencyPerformance(t *testing.T) {
	eng := New(testConfig(t))
	require.NoError(t, eng.Load(context.Background()))

	perf, err := eng.AgencyPerformance()
	require.NoError(t, err)
	require.Len(t, perf, 2)
	assert.Equal(t, "BOGOTA PRINCIPAL", perf[0].Agency)
	assert.InDelta(t, 3.0, perf[0].AverageRating, 0.001)
	assert.Equal(t, "SAN DIEGO", perf[1].Agency)
	assert.InDelta(t, 4.5, perf[1].AverageRating, 0.001)
}

func TestEngineInsights(t *testing.T) {
	eng := New(testConfig(t))
	require.NoError(t, eng.Load(context.Background()))

	insights, err := eng.CategoryInsights()
	require.NoError(t, err)
	assert.NotEmpty(t, insights)
	for _, in := range insights {
		assert.NotEmpty(t, in.Category)
		assert.Positive(t, in.Count)
	}
}

func TestEngineSegmentParsing(t *testing.T) {
	eng := New(testConfig(t))
	require.NoError(t, eng.Load(context.Background()))

	dists, err := eng.MetricDistributions()
	require.NoError(t, err)

	var personas, empresarial int
	for _, d := range dists {
		if d.Metric != model.MetricSatisfaccion || d.Scope != model.ScopeSegment {
			continue
		}
		switch model.Segment(d.ScopeValue) {
		case model.SegmentPersonas:
			personas = d.Count
		case model.SegmentEmpresarial:
			empresarial = d.Count
		}
	}
	assert.Equal(t, 2, personas)
	assert.Equal(t, 1, empresarial)
}
