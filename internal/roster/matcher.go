package roster

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/JhonLaurens/medicion-del-servicio/internal/model"
)

// normalizeName lowercases and trims the ends of a name. Interior
// whitespace and diacritics are left alone: collapsing either would
// silently change attribution counts in manager scorecards.
func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// MatchResult holds the per-entry participation summaries plus the
// aggregate count of survey records no roster entry claimed.
type MatchResult struct {
	Summaries []model.ParticipationSummary `json:"summaries"`
	Unmatched int                          `json:"unmatched"`
}

// Match attributes each survey record to at most one roster entry.
// Exact normalized equality wins first; failing that, containment in
// either direction, with the first roster entry in file order taking
// the record. Records matching nothing only bump the unmatched count.
func Match(records []model.SurveyRecord, entries []model.RosterEntry) MatchResult {
	normalized := make([]string, len(entries))
	for i, e := range entries {
		normalized[i] = normalizeName(e.Name)
	}

	matched := make([]int, len(entries))
	unmatched := 0

	for i := range records {
		name := normalizeName(records[i].Executive)
		if name == "" {
			unmatched++
			continue
		}

		idx := matchEntry(name, normalized)
		if idx < 0 {
			unmatched++
			continue
		}
		matched[idx]++
	}

	total := len(records)
	summaries := make([]model.ParticipationSummary, len(entries))
	for i, e := range entries {
		summaries[i] = model.ParticipationSummary{
			Entry:        e,
			MatchedCount: matched[i],
			CoverageRate: coverageRate(matched[i], e.UniverseSize),
			PctOfTotal:   pctOfTotal(matched[i], total),
		}
	}

	zap.L().Info("roster: matched survey records",
		zap.Int("records", total),
		zap.Int("entries", len(entries)),
		zap.Int("unmatched", unmatched),
	)

	return MatchResult{Summaries: summaries, Unmatched: unmatched}
}

// matchEntry returns the index of the first roster entry claiming the
// name, or -1. Exact equality is checked across the whole roster before
// any containment fallback runs.
func matchEntry(name string, normalized []string) int {
	for i, n := range normalized {
		if n != "" && n == name {
			return i
		}
	}
	for i, n := range normalized {
		if n == "" {
			continue
		}
		if strings.Contains(name, n) || strings.Contains(n, name) {
			return i
		}
	}
	return -1
}

func coverageRate(matched, universe int) float64 {
	if universe == 0 {
		return 0
	}
	return math.Round(float64(matched)/float64(universe)*100*100) / 100
}

func pctOfTotal(matched, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(matched)/float64(total)*100*100) / 100
}
