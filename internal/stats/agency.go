package stats

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/JhonLaurens/medicion-del-servicio/internal/model"
)

// RatingDistribution counts respondents per raw rating value (1..5) for
// the general-satisfaction metric.
func RatingDistribution(records []model.SurveyRecord) []model.RatingCount {
	counts := make([]model.RatingCount, 5)
	for i := range counts {
		counts[i].Rating = i + 1
	}
	for i := range records {
		if score := records[i].Satisfaccion; score != nil {
			counts[*score-1].Count++
		}
	}
	return counts
}

// AgencyPerformance averages general satisfaction per agency, sorted
// ascending by average so the weakest agencies lead the report.
func AgencyPerformance(records []model.SurveyRecord) []model.AgencyPerformance {
	type acc struct {
		sum   int
		count int
		total int
	}
	byAgency := make(map[string]*acc)
	for i := range records {
		agency := records[i].Agency
		if agency == "" {
			continue
		}
		a := byAgency[agency]
		if a == nil {
			a = &acc{}
			byAgency[agency] = a
		}
		a.total++
		if score := records[i].Satisfaccion; score != nil {
			a.sum += *score
			a.count++
		}
	}

	var out []model.AgencyPerformance
	for agency, a := range byAgency {
		avg := 0.0
		if a.count > 0 {
			avg = round2(float64(a.sum) / float64(a.count))
		}
		out = append(out, model.AgencyPerformance{
			Agency:        agency,
			AverageRating: avg,
			ResponseCount: a.total,
		})
	}

	c := collate.New(language.Spanish)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].AverageRating != out[j].AverageRating {
			return out[i].AverageRating < out[j].AverageRating
		}
		return c.CompareString(out[i].Agency, out[j].Agency) < 0
	})
	return out
}
