package suggest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JhonLaurens/medicion-del-servicio/internal/model"
)

func TestAnalyzePositiveSatisfaction(t *testing.T) {
	a := NewClassifier().Analyze("el servicio fue excelente, gracias")

	assert.Equal(t, "satisfaccion_general", a.Category)
	assert.Equal(t, model.SentimentPositive, a.Sentiment)
	assert.Equal(t, model.PriorityLow, a.Priority)
	// Two category keywords hit out of nine: 2/9 + 2*0.1.
	assert.InDelta(t, 0.4222, a.Confidence, 0.001)
	assert.Equal(t, []string{"servicio", "excelente", "gracias"}, a.Keywords)
}

func TestAnalyzeNegativeComplaint(t *testing.T) {
	a := NewClassifier().Analyze("tengo una queja, el sistema presenta error tras error")

	assert.Equal(t, "quejas_problemas", a.Category)
	assert.Equal(t, model.SentimentNegative, a.Sentiment)
	assert.Equal(t, model.PriorityHigh, a.Priority)
}

func TestAnalyzeTrivialText(t *testing.T) {
	for _, text := range []string{"", "ok", "  a  ", `""""`} {
		a := NewClassifier().Analyze(text)

		assert.Equal(t, "satisfaccion_general", a.Category, "text %q", text)
		assert.Equal(t, model.SentimentNeutral, a.Sentiment)
		assert.Equal(t, model.PriorityLow, a.Priority)
		assert.InDelta(t, 0.1, a.Confidence, 0.0001)
		assert.Empty(t, a.Keywords)
		assert.Empty(t, a.Themes)
	}
}

func TestAnalyzeNoMatchFallsBackToDefault(t *testing.T) {
	a := NewClassifier().Analyze("xyzw qwerty asdf")

	assert.Equal(t, "satisfaccion_general", a.Category)
	assert.Equal(t, model.SentimentNeutral, a.Sentiment)
	assert.InDelta(t, 0.1, a.Confidence, 0.0001)
}

func TestAnalyzeConfidenceCapped(t *testing.T) {
	a := NewClassifier().Analyze("malo problema queja error falla inconveniente molesto disgusto insatisfecho")

	assert.Equal(t, "quejas_problemas", a.Category)
	assert.InDelta(t, 0.95, a.Confidence, 0.0001)
}

func TestAnalyzeTieKeepsEarlierCategory(t *testing.T) {
	// One hit each in two ten-keyword categories scores identically;
	// the earlier declaration keeps the classification.
	a := NewClassifier().Analyze("espera del sistema")

	assert.Equal(t, "tiempos_respuesta", a.Category)
	assert.InDelta(t, 0.2, a.Confidence, 0.001)
}

func TestAnalyzeThemes(t *testing.T) {
	a := NewClassifier().Analyze("la atención del asesor fue excelente")

	assert.Equal(t, "atencion_servicio", a.Category)
	assert.Contains(t, a.Themes, "Atención Personal")
}

func TestAnalyzeVeryLongText(t *testing.T) {
	text := strings.Repeat("mejorar la plataforma digital porque presenta demoras constantes ", 200)
	a := NewClassifier().Analyze(text)

	assert.NotEmpty(t, a.Category)
	assert.LessOrEqual(t, len(a.Keywords), 5)
	assert.LessOrEqual(t, a.Confidence, 0.95)
}

func TestAnalyzeMediumPriorityForLongNeutralText(t *testing.T) {
	a := NewClassifier().Analyze("sería interesante revisar nuevas alternativas durante las visitas presenciales programadas")

	assert.Equal(t, model.SentimentNeutral, a.Sentiment)
	assert.Equal(t, model.PriorityMedium, a.Priority)
}

func TestCleanTextStripsQuoteArtifacts(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: `"excelente atención"`, expected: "excelente atención"},
		{input: `"""excelente atención"""`, expected: "excelente atención"},
		{input: "  sin quejas  ", expected: "sin quejas"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, cleanText(tt.input))
	}
}

func TestAnalyzeAllSkipsBlankTexts(t *testing.T) {
	out := NewClassifier().AnalyzeAll([]string{"excelente servicio", "", "   ", "mucha demora"})

	require.Len(t, out, 2)
	assert.Equal(t, "excelente servicio", out[0].OriginalText)
	assert.Equal(t, "mucha demora", out[1].OriginalText)
}

func TestKeywordsDropStopwordsAndShortTokens(t *testing.T) {
	a := NewClassifier().Analyze("que la cita sea mucho mejor para todos los clientes")

	assert.NotContains(t, a.Keywords, "que")
	assert.NotContains(t, a.Keywords, "para")
	assert.NotContains(t, a.Keywords, "sea")
	assert.Contains(t, a.Keywords, "clientes")
}

func TestKeywordsOrderedByFrequency(t *testing.T) {
	a := NewClassifier().Analyze("demora demora demora atención atención horario")

	require.NotEmpty(t, a.Keywords)
	assert.Equal(t, "demora", a.Keywords[0])
	assert.Equal(t, "atención", a.Keywords[1])
}
