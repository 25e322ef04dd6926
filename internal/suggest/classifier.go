package suggest

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/JhonLaurens/medicion-del-servicio/internal/model"
)

// Scoring constants. The confidence formula is observable by end users,
// so the cap, floor, and per-keyword bonus must not change.
const (
	confidenceCap   = 0.95
	confidenceFloor = 0.1
	keywordBonus    = 0.1

	minTextLength      = 3
	mediumPriorityLen  = 50
	topKeywordsPerItem = 5
)

var quoteRuns = regexp.MustCompile(`"{2,}`)

// Classifier runs the rule-based suggestion pipeline. The zero value is
// not usable; construct one with NewClassifier.
type Classifier struct {
	lex Lexicon
}

// NewClassifier creates a Classifier over the embedded default lexicon.
func NewClassifier() *Classifier {
	return &Classifier{lex: DefaultLexicon()}
}

// NewClassifierWithLexicon creates a Classifier over a custom lexicon.
func NewClassifierWithLexicon(lex Lexicon) *Classifier {
	return &Classifier{lex: lex}
}

// Analyze classifies one free-text suggestion. It never fails: trivial
// or degenerate input resolves to the default category with neutral
// sentiment, low priority, and minimum confidence.
func (c *Classifier) Analyze(text string) model.SuggestionAnalysis {
	cleaned := cleanText(text)

	if utf8.RuneCountInString(cleaned) < minTextLength {
		return model.SuggestionAnalysis{
			OriginalText: text,
			CleanedText:  cleaned,
			Category:     defaultCategoryID,
			Sentiment:    model.SentimentNeutral,
			Priority:     model.PriorityLow,
			Keywords:     []string{},
			Themes:       []string{},
			Confidence:   confidenceFloor,
		}
	}

	sentiment := c.sentiment(cleaned)
	category, confidence := c.categorize(cleaned)

	return model.SuggestionAnalysis{
		OriginalText: text,
		CleanedText:  cleaned,
		Category:     category,
		Sentiment:    sentiment,
		Priority:     c.priority(cleaned, sentiment),
		Keywords:     c.keywords(cleaned),
		Themes:       c.themes(cleaned),
		Confidence:   confidence,
	}
}

// AnalyzeAll classifies every non-blank suggestion text.
func (c *Classifier) AnalyzeAll(texts []string) []model.SuggestionAnalysis {
	var out []model.SuggestionAnalysis
	for _, t := range texts {
		if strings.TrimSpace(t) == "" {
			continue
		}
		out = append(out, c.Analyze(t))
	}
	return out
}

// cleanText strips one pair of wrapping quotes, removes repeated-quote
// export artifacts, and trims.
func cleanText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, `"`)
	s = strings.TrimSuffix(s, `"`)
	s = quoteRuns.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// sentiment counts positive vs negative term occurrences; the majority
// wins and ties are neutral.
func (c *Classifier) sentiment(cleaned string) model.Sentiment {
	lower := strings.ToLower(cleaned)

	positive := 0
	for _, w := range c.lex.Sentiment.Positive {
		if strings.Contains(lower, w) {
			positive++
		}
	}
	negative := 0
	for _, w := range c.lex.Sentiment.Negative {
		if strings.Contains(lower, w) {
			negative++
		}
	}

	switch {
	case positive > negative:
		return model.SentimentPositive
	case negative > positive:
		return model.SentimentNegative
	default:
		return model.SentimentNeutral
	}
}

// keywords tokenizes the text and keeps the top 5 tokens by frequency,
// dropping stopwords and tokens of three runes or fewer. Frequency ties
// break by first appearance.
func (c *Classifier) keywords(cleaned string) []string {
	tokens := tokenize(cleaned)

	counts := make(map[string]int)
	var order []string
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) <= minTextLength || c.isStopword(tok) {
			continue
		}
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > topKeywordsPerItem {
		order = order[:topKeywordsPerItem]
	}
	if order == nil {
		order = []string{}
	}
	return order
}

// tokenize lowercases and splits on any run of non-word characters.
func tokenize(s string) []string {
	lower := strings.ToLower(s)
	return strings.FieldsFunc(lower, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_'
	})
}

func (c *Classifier) isStopword(tok string) bool {
	for _, w := range c.lex.Stopwords {
		if tok == w {
			return true
		}
	}
	return false
}

// themes returns every theme with at least one keyword appearing as a
// substring of the cleaned text.
func (c *Classifier) themes(cleaned string) []string {
	lower := strings.ToLower(cleaned)

	matched := []string{}
	for _, theme := range c.lex.Themes {
		for _, kw := range theme.Keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, theme.Name)
				break
			}
		}
	}
	return matched
}

// categorize scores every category and picks the best. The score is
// min(0.95, hits/len(keywords) + hits*0.1); anything at or below the
// 0.1 floor falls back to the default category. Earlier declarations
// win ties because only a strictly greater score replaces the best.
func (c *Classifier) categorize(cleaned string) (string, float64) {
	lower := strings.ToLower(cleaned)

	bestID := defaultCategoryID
	bestConfidence := confidenceFloor

	for _, cat := range c.lex.Categories {
		if len(cat.Keywords) == 0 {
			continue
		}

		hits := 0
		for _, kw := range cat.Keywords {
			if strings.Contains(lower, kw) {
				hits++
			}
		}

		confidence := float64(hits)/float64(len(cat.Keywords)) + float64(hits)*keywordBonus
		if confidence > confidenceCap {
			confidence = confidenceCap
		}

		if confidence > bestConfidence {
			bestID = cat.ID
			bestConfidence = confidence
		}
	}

	return bestID, bestConfidence
}

// priority is high for negative sentiment or urgency keywords, medium
// for neutral sentiment on longer texts, low otherwise.
func (c *Classifier) priority(cleaned string, sentiment model.Sentiment) model.Priority {
	if sentiment == model.SentimentNegative {
		return model.PriorityHigh
	}

	lower := strings.ToLower(cleaned)
	for _, w := range c.lex.Urgency {
		if strings.Contains(lower, w) {
			return model.PriorityHigh
		}
	}

	if sentiment == model.SentimentNeutral && utf8.RuneCountInString(cleaned) > mediumPriorityLen {
		return model.PriorityMedium
	}
	return model.PriorityLow
}
