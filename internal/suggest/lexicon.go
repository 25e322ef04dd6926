// Package suggest classifies free-text survey suggestions into
// categories with sentiment and priority signals, and rolls the results
// up into per-category insights. Classification is deterministic
// rule/keyword scoring; there is no trained model anywhere in here.
package suggest

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed lexicon.yaml
var lexiconYAML []byte

// Category is one classification target defined by a keyword list.
// Declaration order is the tiebreak for equal scores.
type Category struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
}

// Theme is a cross-cutting topic matched by keyword substrings.
type Theme struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// SentimentLexicon holds the positive and negative term lists.
type SentimentLexicon struct {
	Positive []string `yaml:"positive"`
	Negative []string `yaml:"negative"`
}

// Lexicon bundles every word list the classifier consults.
type Lexicon struct {
	Categories []Category       `yaml:"categories"`
	Themes     []Theme          `yaml:"themes"`
	Sentiment  SentimentLexicon `yaml:"sentiment"`
	Urgency    []string         `yaml:"urgency"`
	Stopwords  []string         `yaml:"stopwords"`
}

// defaultCategoryID is the fallback when no category scores above the
// floor, and the short-circuit category for trivial texts.
const defaultCategoryID = "satisfaccion_general"

// DefaultLexicon returns the embedded lexicon.
func DefaultLexicon() Lexicon {
	return defaultLexicon
}

var defaultLexicon = mustLoadLexicon()

func mustLoadLexicon() Lexicon {
	var lex Lexicon
	if err := yaml.Unmarshal(lexiconYAML, &lex); err != nil {
		panic("suggest: embedded lexicon.yaml is invalid: " + err.Error())
	}
	return lex
}

// CategoryName resolves a category ID to its display name, falling back
// to the ID itself for unknown categories.
func (l Lexicon) CategoryName(id string) string {
	for _, c := range l.Categories {
		if c.ID == id {
			return c.Name
		}
	}
	return id
}
