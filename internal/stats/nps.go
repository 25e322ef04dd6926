package stats

import (
	"math"

	"github.com/JhonLaurens/medicion-del-servicio/internal/model"
)

// NPS derives the loyalty buckets from the recommendation metric.
// The rating bands double as the NPS proxy: 5 is a promoter, 4 a
// passive, 1-3 a detractor. Only valid scores enter the denominator;
// zero valid responses yields the zero summary.
func NPS(records []model.SurveyRecord) model.NPSSummary {
	var s model.NPSSummary
	for i := range records {
		score := records[i].Recomendacion
		if score == nil {
			continue
		}
		switch {
		case *score == 5:
			s.Promoters++
		case *score == 4:
			s.Passives++
		default:
			s.Detractors++
		}
	}

	total := s.Promoters + s.Passives + s.Detractors
	if total == 0 {
		return s
	}

	promoterPct := float64(s.Promoters) / float64(total) * 100
	detractorPct := float64(s.Detractors) / float64(total) * 100
	s.Score = int(math.Round(promoterPct - detractorPct))
	return s
}
