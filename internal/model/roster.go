package model

// RosterEntry is one accountable executive from the curated roster file.
// The roster is loaded once per session and immutable thereafter.
type RosterEntry struct {
	Name          string  `json:"name"`
	Segment       Segment `json:"segment"`
	City          string  `json:"city"`
	Agency        string  `json:"agency"`
	ExecutiveType string  `json:"executive_type"`
	UniverseSize  int     `json:"universe_size"`
}

// ParticipationSummary attributes survey volume to one roster entry.
// CoverageRate is matched count over the entry's declared universe,
// expressed as a percentage; it is zero when the universe size is zero.
type ParticipationSummary struct {
	Entry        RosterEntry `json:"entry"`
	MatchedCount int         `json:"matched_count"`
	CoverageRate float64     `json:"coverage_rate"`
	PctOfTotal   float64     `json:"pct_of_total"`
}
