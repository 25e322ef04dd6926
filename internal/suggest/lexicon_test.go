package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLexicon(t *testing.T) {
	lex := DefaultLexicon()

	require.Len(t, lex.Categories, 10)
	require.Len(t, lex.Themes, 7)
	assert.NotEmpty(t, lex.Sentiment.Positive)
	assert.NotEmpty(t, lex.Sentiment.Negative)
	assert.NotEmpty(t, lex.Urgency)
	assert.NotEmpty(t, lex.Stopwords)

	// The fallback category must exist in the lexicon.
	found := false
	for _, c := range lex.Categories {
		assert.NotEmpty(t, c.ID)
		assert.NotEmpty(t, c.Name)
		assert.NotEmpty(t, c.Keywords)
		if c.ID == defaultCategoryID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCategoryName(t *testing.T) {
	lex := DefaultLexicon()

	assert.Equal(t, "Satisfacción General", lex.CategoryName("satisfaccion_general"))
	assert.Equal(t, "Quejas y Problemas", lex.CategoryName("quejas_problemas"))
	assert.Equal(t, "unknown_id", lex.CategoryName("unknown_id"))
}
