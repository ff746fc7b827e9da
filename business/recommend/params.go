package recommend

import "brewjournal/domain"

type paramKind int

const (
	kindNumeric paramKind = iota
	kindCategorical
)

// paramSpec describes one brewing parameter: its wire name, whether it
// aggregates as a numeric range or a categorical frequency, and how to
// read it off a session. Numeric readers return nil when the value was
// never recorded; categorical readers return "" for the same.
type paramSpec struct {
	name    string
	kind    paramKind
	numeric func(s domain.BrewSession) *float64
	text    func(s domain.BrewSession) string
}

// brewParams is the fixed parameter set. Recommendation output never
// contains a key outside this list, and the aggregator branches on kind
// instead of sniffing value types at runtime.
var brewParams = []paramSpec{
	{name: "amount_coffee_grams", kind: kindNumeric, numeric: func(s domain.BrewSession) *float64 { return s.AmountCoffeeGrams }},
	{name: "amount_water_grams", kind: kindNumeric, numeric: func(s domain.BrewSession) *float64 { return s.AmountWaterGrams }},
	{name: "brew_ratio", kind: kindNumeric, numeric: func(s domain.BrewSession) *float64 { return s.BrewRatio }},
	{name: "brew_temperature_c", kind: kindNumeric, numeric: func(s domain.BrewSession) *float64 { return s.BrewTemperatureC }},
	{name: "grinder_setting", kind: kindCategorical, text: func(s domain.BrewSession) string { return s.GrinderSetting }},
	{name: "bloom_time_seconds", kind: kindNumeric, numeric: func(s domain.BrewSession) *float64 { return s.BloomTimeSeconds }},
	{name: "brew_time_seconds", kind: kindNumeric, numeric: func(s domain.BrewSession) *float64 { return s.BrewTimeSeconds }},
	{name: "recipe", kind: kindCategorical, text: func(s domain.BrewSession) string { return s.Recipe }},
	{name: "grinder", kind: kindCategorical, text: func(s domain.BrewSession) string { return s.Grinder }},
	{name: "filter", kind: kindCategorical, text: func(s domain.BrewSession) string { return s.Filter }},
}
