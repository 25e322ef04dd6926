// Package stats computes the metric distributions, loyalty score, and
// geographic comparisons over validated survey records.
package stats

import (
	"math"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/JhonLaurens/medicion-del-servicio/internal/model"
)

// round2 rounds to two decimal places (averages).
func round2(v float64) float64 { return math.Round(v*100) / 100 }

// round1 rounds to one decimal place (band percentages).
func round1(v float64) float64 { return math.Round(v*10) / 10 }

// Distribution computes the rating-band statistics for one metric over
// the given records. A zero denominator yields the zero distribution so
// downstream consumers never see NaN.
func Distribution(records []model.SurveyRecord, metric model.Metric) model.MetricDistribution {
	dist := model.MetricDistribution{Metric: metric}

	var (
		count    int
		sum      int
		count5   int
		count4   int
		count123 int
	)
	for i := range records {
		score := records[i].Score(metric)
		if score == nil {
			continue
		}
		v := *score
		count++
		sum += v
		switch {
		case v == 5:
			count5++
		case v == 4:
			count4++
		default:
			count123++
		}
	}

	if count == 0 {
		return dist
	}

	dist.Count = count
	dist.Average = round2(float64(sum) / float64(count))
	dist.Rating5Pct = round1(float64(count5) / float64(count) * 100)
	dist.Rating4Pct = round1(float64(count4) / float64(count) * 100)
	dist.Rating123Pct = round1(float64(count123) / float64(count) * 100)
	return dist
}

// AllDistributions computes every metric at every scope: consolidated,
// per segment, and per city. City scopes come out in Spanish collation
// order so repeated runs produce identical output.
func AllDistributions(records []model.SurveyRecord) []model.MetricDistribution {
	cities := Cities(records)

	var out []model.MetricDistribution
	for _, metric := range model.Metrics {
		d := Distribution(records, metric)
		d.Scope = model.ScopeConsolidated
		out = append(out, d)

		for _, seg := range model.Segments {
			d := Distribution(filterSegment(records, seg), metric)
			d.Scope = model.ScopeSegment
			d.ScopeValue = string(seg)
			out = append(out, d)
		}

		for _, city := range cities {
			d := Distribution(filterCity(records, city), metric)
			d.Scope = model.ScopeCity
			d.ScopeValue = city
			out = append(out, d)
		}
	}
	return out
}

// Cities returns the distinct non-empty cities in collation order.
func Cities(records []model.SurveyRecord) []string {
	seen := make(map[string]struct{})
	var cities []string
	for i := range records {
		city := records[i].City
		if city == "" {
			continue
		}
		if _, ok := seen[city]; !ok {
			seen[city] = struct{}{}
			cities = append(cities, city)
		}
	}

	c := collate.New(language.Spanish)
	sort.Slice(cities, func(i, j int) bool {
		return c.CompareString(cities[i], cities[j]) < 0
	})
	return cities
}

func filterSegment(records []model.SurveyRecord, seg model.Segment) []model.SurveyRecord {
	var out []model.SurveyRecord
	for i := range records {
		if records[i].Segment == seg {
			out = append(out, records[i])
		}
	}
	return out
}

func filterCity(records []model.SurveyRecord, city string) []model.SurveyRecord {
	var out []model.SurveyRecord
	for i := range records {
		if records[i].City == city {
			out = append(out, records[i])
		}
	}
	return out
}
