package model

// Scope identifies the aggregation level a distribution was computed at.
type Scope string

// Aggregation scopes.
const (
	ScopeConsolidated Scope = "consolidated"
	ScopeSegment      Scope = "segment"
	ScopeCity         Scope = "city"
)

// MetricDistribution holds the rating-band statistics for one metric at
// one scope. When Count is zero every other field is zero as well, never
// NaN; the three band percentages sum to 100 within 0.1 otherwise.
type MetricDistribution struct {
	Metric       Metric  `json:"metric"`
	Scope        Scope   `json:"scope"`
	ScopeValue   string  `json:"scope_value,omitempty"`
	Count        int     `json:"count"`
	Average      float64 `json:"average"`
	Rating5Pct   float64 `json:"rating5_pct"`
	Rating4Pct   float64 `json:"rating4_pct"`
	Rating123Pct float64 `json:"rating123_pct"`
}

// RatingCount is the respondent count for one raw rating value.
type RatingCount struct {
	Rating int `json:"rating"`
	Count  int `json:"count"`
}

// AgencyPerformance is the per-agency general-satisfaction rollup.
type AgencyPerformance struct {
	Agency        string  `json:"agency"`
	AverageRating float64 `json:"average_rating"`
	ResponseCount int     `json:"response_count"`
}

// Verdict is the tri-state outcome of comparing a city average against
// the consolidated average.
type Verdict string

// Comparison verdicts.
const (
	VerdictHigher Verdict = "higher"
	VerdictEqual  Verdict = "equal"
	VerdictLower  Verdict = "lower"
)

// CityComparison benchmarks one city against the consolidated averages.
type CityComparison struct {
	City        string             `json:"city"`
	Respondents int                `json:"respondents"`
	Averages    map[Metric]float64 `json:"averages"`
	Verdicts    map[Metric]Verdict `json:"verdicts"`
}

// NPSSummary holds the loyalty buckets derived from the recommendation
// metric. Score is promoter% minus detractor%, rounded; it can be negative.
type NPSSummary struct {
	Promoters  int `json:"promoters"`
	Passives   int `json:"passives"`
	Detractors int `json:"detractors"`
	Score      int `json:"nps_score"`
}
