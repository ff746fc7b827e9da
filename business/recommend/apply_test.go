//go:build !integration

package recommend

import (
	"testing"

	"brewjournal/domain"
)

func TestApplyRecommendation_Flattens(t *testing.T) {
	min, max, avg := 93.0, 96.0, 94.5
	params := map[string]domain.ParamSuggestion{
		"amount_coffee_grams": {Type: domain.SuggestionExact, Value: 18.0},
		"brew_temperature_c":  {Type: domain.SuggestionRange, Min: &min, Max: &max, Avg: &avg},
		"filter":              {Type: domain.SuggestionFrequent, Value: "Cafec Abaca", Frequency: 2, Total: 3},
	}

	fields := ApplyRecommendation("V60", params)

	if fields["brew_method"] != "V60" {
		t.Errorf("expected brew_method V60, got %v", fields["brew_method"])
	}
	if fields["amount_coffee_grams"] != 18.0 {
		t.Errorf("exact should pass through, got %v", fields["amount_coffee_grams"])
	}
	if fields["brew_temperature_c"] != 94.5 {
		t.Errorf("range should apply the average, got %v", fields["brew_temperature_c"])
	}
	if fields["filter"] != "Cafec Abaca" {
		t.Errorf("frequent should pass through its value, got %v", fields["filter"])
	}
}

// Applying a template recommendation reproduces the source session's
// recorded values exactly.
func TestApplyRecommendation_TemplateRoundTrip(t *testing.T) {
	source := domain.BrewSession{
		ProductID:         1,
		BrewMethod:        "V60",
		Score:             fp(9),
		AmountCoffeeGrams: fp(18),
		AmountWaterGrams:  fp(288),
		BrewRatio:         fp(16),
		BrewTemperatureC:  fp(94),
		GrinderSetting:    "22 clicks",
		BloomTimeSeconds:  fp(45),
		BrewTimeSeconds:   fp(165),
		Recipe:            "Hoffmann",
		Grinder:           "Comandante",
		Filter:            "Hario tabbed",
	}

	rec := Derive([]domain.BrewSession{source}).Recommendations["V60"]
	if rec.Type != domain.RecommendationTemplate {
		t.Fatalf("expected template, got %q", rec.Type)
	}

	fields := ApplyRecommendation("V60", rec.Parameters)

	want := map[string]any{
		"brew_method":         "V60",
		"amount_coffee_grams": 18.0,
		"amount_water_grams":  288.0,
		"brew_ratio":          16.0,
		"brew_temperature_c":  94.0,
		"grinder_setting":     "22 clicks",
		"bloom_time_seconds":  45.0,
		"brew_time_seconds":   165.0,
		"recipe":              "Hoffmann",
		"grinder":             "Comandante",
		"filter":              "Hario tabbed",
	}

	for name, wantVal := range want {
		if got, ok := fields[name]; !ok || got != wantVal {
			t.Errorf("field %s: expected %v, got %v (present=%v)", name, wantVal, got, ok)
		}
	}
	if len(fields) != len(want) {
		t.Errorf("unexpected extra fields: %v", fields)
	}
}
