package recommend

import "brewjournal/domain"

// ApplyRecommendation flattens a recommendation's parameters into form
// field values: exact and frequent suggestions contribute their value,
// ranges contribute their average. The chosen method is set alongside.
func ApplyRecommendation(method string, params map[string]domain.ParamSuggestion) map[string]any {
	fields := map[string]any{
		"brew_method": method,
	}

	for name, sug := range params {
		switch sug.Type {
		case domain.SuggestionExact, domain.SuggestionFrequent:
			fields[name] = sug.Value
		case domain.SuggestionRange:
			if sug.Avg != nil {
				fields[name] = *sug.Avg
			}
		}
	}

	return fields
}
