package model

// Sentiment is the lexicon-derived polarity of a free-text suggestion.
type Sentiment string

// Sentiment values.
const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Priority is the follow-up urgency derived for a suggestion.
type Priority string

// Priority values.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// SuggestionAnalysis is the classifier output for one free-text item.
type SuggestionAnalysis struct {
	OriginalText string    `json:"original_text"`
	CleanedText  string    `json:"cleaned_text"`
	Category     string    `json:"category"`
	Sentiment    Sentiment `json:"sentiment"`
	Priority     Priority  `json:"priority"`
	Keywords     []string  `json:"keywords"`
	Themes       []string  `json:"themes"`
	Confidence   float64   `json:"confidence"`
}

// KeywordFrequency is a keyword with its cross-item occurrence count.
type KeywordFrequency struct {
	Keyword   string `json:"keyword"`
	Frequency int    `json:"frequency"`
}

// ThemeCount is a theme with its cross-item occurrence count.
type ThemeCount struct {
	Theme string `json:"theme"`
	Count int    `json:"count"`
}

// SentimentMix holds per-category sentiment percentages.
type SentimentMix struct {
	Positive int `json:"positive"`
	Negative int `json:"negative"`
	Neutral  int `json:"neutral"`
}

// PriorityMix holds per-category priority percentages.
type PriorityMix struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// CategoryInsight is the per-category rollup over all analyzed suggestions.
type CategoryInsight struct {
	Category    string             `json:"category"`
	Count       int                `json:"count"`
	Percentage  int                `json:"percentage"`
	Sentiment   SentimentMix       `json:"sentiment"`
	Priority    PriorityMix        `json:"priority"`
	TopKeywords []KeywordFrequency `json:"top_keywords"`
	TopThemes   []ThemeCount       `json:"top_themes"`
	Examples    []string           `json:"examples"`
}
