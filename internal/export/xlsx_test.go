package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/JhonLaurens/medicion-del-servicio/internal/config"
	"github.com/JhonLaurens/medicion-del-servicio/internal/engine"
)

func loadedEngine(t *testing.T) *engine.Engine {
	t.Helper()
	dir := t.TempDir()

	survey := "ID;SEGMENTO;CIUDAD;AGENCIA;EJECUTIVO_FINAL;satisfaccion_general;recomendacion;sugerencias\n" +
		"1;PERSONAS;MEDELLIN;SAN DIEGO;MARIA FERNANDA LOPEZ;5;5;excelente servicio\n" +
		"2;EMPRESARIAL;CALI;CALI NORTE;CARLOS RUIZ;3;2;mucha demora\n"
	roster := "EJECUTIVO_FINAL;SEGMENTO;CIUDAD;AGENCIA;UNIVERSO\n" +
		"MARIA FERNANDA LOPEZ;PERSONAS;MEDELLIN;SAN DIEGO;100\n"

	surveyPath := filepath.Join(dir, "datos.csv")
	rosterPath := filepath.Join(dir, "ejecutivos.csv")
	require.NoError(t, os.WriteFile(surveyPath, []byte(survey), 0o644))
	require.NoError(t, os.WriteFile(rosterPath, []byte(roster), 0o644))

	cfg := &config.Config{
		Data: config.DataConfig{
			SurveyPath:      surveyPath,
			RosterPath:      rosterPath,
			SurveyDelimiter: ";",
			RosterDelimiter: ";",
		},
		Stats:   config.StatsConfig{ComparisonTolerance: 0.1, UniverseTotal: 24067},
		Suggest: config.SuggestConfig{TopKeywords: 5, TopThemes: 3, MaxExamples: 3},
	}

	eng := engine.New(cfg)
	require.NoError(t, eng.Load(context.Background()))
	return eng
}

func TestWriteWorkbook(t *testing.T) {
	eng := loadedEngine(t)
	path := filepath.Join(t.TempDir(), "reporte.xlsx")

	require.NoError(t, Write(eng, path))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)

	names := make([]string, 0, len(f.Sheets))
	for _, s := range f.Sheets {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"Distribuciones", "Ciudades", "NPS", "Participación", "Sugerencias"}, names)

	nps := f.Sheet["NPS"]
	require.NotNil(t, nps)
	require.Len(t, nps.Rows, 2)
}

func TestWriteRequiresLoadedEngine(t *testing.T) {
	eng := engine.New(&config.Config{})
	path := filepath.Join(t.TempDir(), "reporte.xlsx")

	err := Write(eng, path)
	assert.ErrorIs(t, err, engine.ErrNotLoaded)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestWriteBadPath(t *testing.T) {
	eng := loadedEngine(t)
	err := Write(eng, filepath.Join(t.TempDir(), "missing", "deep", "reporte.xlsx"))
	assert.Error(t, err)
}
