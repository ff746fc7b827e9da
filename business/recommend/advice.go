package recommend

import (
	"fmt"
	"strconv"

	"brewjournal/domain"
)

// Human-readable phrasing per parameter. Parameters without an entry get
// no hint line.
var paramPhrasing = map[string]string{
	"amount_coffee_grams": "%s g of coffee",
	"amount_water_grams":  "%s g of water",
	"brew_ratio":          "a ratio of 1:%s",
	"brew_temperature_c":  "water at %s°C",
	"grinder_setting":     "grind setting %s",
	"bloom_time_seconds":  "a %s second bloom",
	"brew_time_seconds":   "a total brew time of %s",
	"recipe":              "the %s recipe",
	"grinder":             "the %s grinder",
	"filter":              "a %s filter",
}

// annotate fills in the lead-in advice sentence and per-parameter hints.
// Purely presentational; the tagged parameter data is the contract.
func annotate(method string, rec *domain.Recommendation) {
	switch rec.Type {
	case domain.RecommendationTemplate:
		rec.Advice = fmt.Sprintf(
			"Your best %s brew scored %s. Repeat it exactly:",
			method, formatScore(rec.SourceScore),
		)
	case domain.RecommendationAggregate:
		rec.Advice = fmt.Sprintf(
			"Based on %d good %s brews (average score %s):",
			rec.SessionsUsed, method, formatScore(rec.AvgScore),
		)
	}

	for name, sug := range rec.Parameters {
		sug.Hint = hintFor(name, sug)
		rec.Parameters[name] = sug
	}
}

func hintFor(name string, sug domain.ParamSuggestion) string {
	phrase, ok := paramPhrasing[name]
	if !ok {
		return ""
	}

	switch sug.Type {
	case domain.SuggestionExact:
		return "Use " + fmt.Sprintf(phrase, renderValue(name, sug.Value))
	case domain.SuggestionRange:
		if sug.Min == nil || sug.Max == nil || sug.Avg == nil {
			return ""
		}
		return fmt.Sprintf(
			"Aim for %s, between %s and %s",
			fmt.Sprintf(phrase, renderNumber(name, *sug.Avg)),
			renderNumber(name, *sug.Min),
			renderNumber(name, *sug.Max),
		)
	case domain.SuggestionFrequent:
		return fmt.Sprintf(
			"Use %s (worked in %d of %d brews)",
			fmt.Sprintf(phrase, renderValue(name, sug.Value)),
			sug.Frequency, sug.Total,
		)
	}
	return ""
}

func renderValue(name string, v any) string {
	switch t := v.(type) {
	case float64:
		return renderNumber(name, t)
	case string:
		return t
	default:
		return fmt.Sprintf("%v", v)
	}
}

func renderNumber(name string, v float64) string {
	if name == "brew_time_seconds" {
		return FormatBrewTime(v)
	}
	return trimFloat(v)
}

// FormatBrewTime renders seconds as M:SS.
func FormatBrewTime(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%d:%02d", total/60, total%60)
}

func formatScore(score *float64) string {
	if score == nil {
		return "?"
	}
	return trimFloat(*score)
}

// trimFloat keeps source precision without trailing zeros: 18 -> "18",
// 94.5 -> "94.5".
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
