package stats

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/JhonLaurens/medicion-del-servicio/internal/model"
)

// DefaultComparisonTolerance is the band, in scale points, within which
// a city average counts as equal to the consolidated average.
const DefaultComparisonTolerance = 0.1

// Compare returns the tri-state verdict for a city average against the
// consolidated average. Differences inside the tolerance band are equal.
func Compare(cityAvg, nationalAvg, tolerance float64) model.Verdict {
	diff := cityAvg - nationalAvg
	switch {
	case diff > tolerance:
		return model.VerdictHigher
	case diff < -tolerance:
		return model.VerdictLower
	default:
		return model.VerdictEqual
	}
}

// CityComparisons benchmarks every city's per-metric average against
// the consolidated averages. Output is sorted by respondent count
// descending, then by collated city name, matching report order.
func CityComparisons(records []model.SurveyRecord, tolerance float64) []model.CityComparison {
	if tolerance <= 0 {
		tolerance = DefaultComparisonTolerance
	}

	national := make(map[model.Metric]float64, len(model.Metrics))
	for _, m := range model.Metrics {
		national[m] = Distribution(records, m).Average
	}

	var out []model.CityComparison
	for _, city := range Cities(records) {
		cityRecords := filterCity(records, city)

		cmp := model.CityComparison{
			City:        city,
			Respondents: len(cityRecords),
			Averages:    make(map[model.Metric]float64, len(model.Metrics)),
			Verdicts:    make(map[model.Metric]model.Verdict, len(model.Metrics)),
		}
		for _, m := range model.Metrics {
			avg := Distribution(cityRecords, m).Average
			cmp.Averages[m] = avg
			cmp.Verdicts[m] = Compare(avg, national[m], tolerance)
		}
		out = append(out, cmp)
	}

	c := collate.New(language.Spanish)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Respondents != out[j].Respondents {
			return out[i].Respondents > out[j].Respondents
		}
		return c.CompareString(out[i].City, out[j].City) < 0
	})
	return out
}

// agencyCityMap normalizes agency names onto their city. Agencies not
// listed pass through unchanged.
var agencyCityMap = map[string]string{
	"SAN DIEGO":                    "MEDELLIN",
	"MANIZALES":                    "MANIZALES",
	"BOGOTA PLAZA IMPERIAL":        "BOGOTA D.C.",
	"BARRANQUILLA":                 "BARRANQUILLA",
	"BOGOTA PRINCIPAL":             "BOGOTA D.C.",
	"BOGOTA GRAN ESTACION":         "BOGOTA D.C.",
	"COLTEJER PRINCIPAL":           "MEDELLIN",
	"BOGOTA SANTA FE":              "BOGOTA D.C.",
	"BUCARAMANGA":                  "BUCARAMANGA",
	"UNICENTRO":                    "MEDELLIN",
	"PEREIRA":                      "PEREIRA",
	"BOGOTA EL NOGAL":              "BOGOTA D.C.",
	"BOGOTA CENTRO MAYOR":          "BOGOTA D.C.",
	"BOGOTA CENTRO INTERNACIONAL":  "BOGOTA D.C.",
	"CALI NORTE":                   "CALI",
	"AGENCIA PRESTIGE":             "MEDELLIN",
	"OVIEDO":                       "MEDELLIN",
	"CUCUTA":                       "CUCUTA",
}

// CityForAgency maps an agency name to its city, falling back to the
// input when the agency is unknown.
func CityForAgency(agency string) string {
	key := strings.ToUpper(strings.TrimSpace(agency))
	if city, ok := agencyCityMap[key]; ok {
		return city
	}
	return agency
}
