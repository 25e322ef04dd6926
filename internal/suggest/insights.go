package suggest

import (
	"math"
	"sort"

	"github.com/JhonLaurens/medicion-del-servicio/internal/model"
)

// InsightOptions bounds the per-category rollup lists.
type InsightOptions struct {
	TopKeywords int
	TopThemes   int
	MaxExamples int
}

// DefaultInsightOptions matches the report defaults.
func DefaultInsightOptions() InsightOptions {
	return InsightOptions{TopKeywords: 5, TopThemes: 3, MaxExamples: 3}
}

// Insights groups analyzed suggestions by category and computes the
// per-category rollup: counts, percentage of total, sentiment and
// priority mixes, top keywords and themes, and representative examples.
// Output is sorted by count descending; categories keep lexicon
// declaration order on ties so repeated runs are identical.
func (c *Classifier) Insights(analyses []model.SuggestionAnalysis, opts InsightOptions) []model.CategoryInsight {
	if opts.TopKeywords <= 0 {
		opts.TopKeywords = 5
	}
	if opts.TopThemes <= 0 {
		opts.TopThemes = 3
	}
	if opts.MaxExamples <= 0 {
		opts.MaxExamples = 3
	}

	groups := make(map[string][]model.SuggestionAnalysis)
	for _, a := range analyses {
		groups[a.Category] = append(groups[a.Category], a)
	}

	total := len(analyses)

	var insights []model.CategoryInsight
	for _, cat := range c.lex.Categories {
		group, ok := groups[cat.ID]
		if !ok {
			continue
		}
		insights = append(insights, buildInsight(cat.Name, group, total, opts))
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Count > insights[j].Count
	})
	return insights
}

func buildInsight(name string, group []model.SuggestionAnalysis, total int, opts InsightOptions) model.CategoryInsight {
	n := len(group)

	var sentiment model.SentimentMix
	var priority model.PriorityMix
	for _, a := range group {
		switch a.Sentiment {
		case model.SentimentPositive:
			sentiment.Positive++
		case model.SentimentNegative:
			sentiment.Negative++
		default:
			sentiment.Neutral++
		}
		switch a.Priority {
		case model.PriorityHigh:
			priority.High++
		case model.PriorityMedium:
			priority.Medium++
		default:
			priority.Low++
		}
	}

	sentiment.Positive = roundPct(sentiment.Positive, n)
	sentiment.Negative = roundPct(sentiment.Negative, n)
	sentiment.Neutral = roundPct(sentiment.Neutral, n)
	priority.High = roundPct(priority.High, n)
	priority.Medium = roundPct(priority.Medium, n)
	priority.Low = roundPct(priority.Low, n)

	return model.CategoryInsight{
		Category:    name,
		Count:       n,
		Percentage:  roundPct(n, total),
		Sentiment:   sentiment,
		Priority:    priority,
		TopKeywords: topKeywords(group, opts.TopKeywords),
		TopThemes:   topThemes(group, opts.TopThemes),
		Examples:    examples(group, opts.MaxExamples),
	}
}

func roundPct(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

// topKeywords counts extracted keywords across the group and keeps the
// most frequent, ties broken by first appearance.
func topKeywords(group []model.SuggestionAnalysis, limit int) []model.KeywordFrequency {
	counts := make(map[string]int)
	var order []string
	for _, a := range group {
		for _, kw := range a.Keywords {
			if counts[kw] == 0 {
				order = append(order, kw)
			}
			counts[kw]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}

	out := make([]model.KeywordFrequency, 0, len(order))
	for _, kw := range order {
		out = append(out, model.KeywordFrequency{Keyword: kw, Frequency: counts[kw]})
	}
	return out
}

func topThemes(group []model.SuggestionAnalysis, limit int) []model.ThemeCount {
	counts := make(map[string]int)
	var order []string
	for _, a := range group {
		for _, th := range a.Themes {
			if counts[th] == 0 {
				order = append(order, th)
			}
			counts[th]++
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}

	out := make([]model.ThemeCount, 0, len(order))
	for _, th := range order {
		out = append(out, model.ThemeCount{Theme: th, Count: counts[th]})
	}
	return out
}

// examples picks the highest-confidence cleaned texts for the category.
func examples(group []model.SuggestionAnalysis, limit int) []string {
	sorted := make([]model.SuggestionAnalysis, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Confidence > sorted[j].Confidence
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	out := make([]string, 0, len(sorted))
	for _, a := range sorted {
		out = append(out, a.CleanedText)
	}
	return out
}
