//go:build !integration

package recommend

import (
	"reflect"
	"strings"
	"testing"

	"brewjournal/domain"
)

func fp(v float64) *float64 { return &v }

func v60Session(score float64, coffee float64, temp float64) domain.BrewSession {
	return domain.BrewSession{
		ProductID:         1,
		BrewMethod:        "V60",
		Score:             fp(score),
		AmountCoffeeGrams: fp(coffee),
		BrewTemperatureC:  fp(temp),
	}
}

func TestDerive_NoSessions(t *testing.T) {
	set := Derive(nil)

	if set.HasRecommendations {
		t.Fatalf("expected has_recommendations=false for empty corpus")
	}
	if set.Message == "" {
		t.Errorf("expected a non-empty message for empty corpus")
	}
	if set.Recommendations != nil {
		t.Errorf("expected no recommendations, got %v", set.Recommendations)
	}
}

func TestDerive_NoSurvivors(t *testing.T) {
	corpus := []domain.BrewSession{
		{ProductID: 1, BrewMethod: "V60", Score: fp(3.5)}, // threshold is strict
		{ProductID: 1, BrewMethod: "V60", Score: fp(2.0)},
		{ProductID: 1, BrewMethod: "V60"}, // unscored
	}

	set := Derive(corpus)
	if set.HasRecommendations {
		t.Fatalf("expected has_recommendations=false when nothing beats the threshold")
	}
	if set.Message == "" {
		t.Errorf("expected a non-empty message")
	}
}

func TestDerive_ThresholdInvariant(t *testing.T) {
	// Removing sub-threshold and unscored sessions never changes the output.
	qualifying := []domain.BrewSession{
		v60Session(8, 18, 93),
		v60Session(8.5, 18, 96),
	}
	noise := []domain.BrewSession{
		{ProductID: 1, BrewMethod: "V60", Score: fp(3.4), AmountCoffeeGrams: fp(25)},
		{ProductID: 1, BrewMethod: "V60", Score: fp(3.5), AmountCoffeeGrams: fp(30)},
		{ProductID: 1, BrewMethod: "V60", AmountCoffeeGrams: fp(40)},
	}

	clean := Derive(qualifying)
	noisy := Derive(append(append([]domain.BrewSession{}, qualifying...), noise...))

	if !reflect.DeepEqual(clean, noisy) {
		t.Errorf("sub-threshold sessions changed the output:\nclean: %+v\nnoisy: %+v", clean, noisy)
	}
}

func TestDerive_Determinism(t *testing.T) {
	corpus := []domain.BrewSession{
		v60Session(8, 18, 93),
		v60Session(9, 18, 96),
		v60Session(7.5, 19, 94),
		{ProductID: 1, BrewMethod: "Aeropress", Score: fp(6), Recipe: "inverted"},
		{ProductID: 1, BrewMethod: "Aeropress", Score: fp(6.5), Recipe: "standard"},
	}

	first := Derive(corpus)
	for i := 0; i < 10; i++ {
		if got := Derive(corpus); !reflect.DeepEqual(first, got) {
			t.Fatalf("run %d differed from first run:\nfirst: %+v\ngot:   %+v", i, first, got)
		}
	}
}

func TestDerive_PartitionInvariant(t *testing.T) {
	corpus := []domain.BrewSession{
		v60Session(8, 18, 93),
		v60Session(8.5, 18, 96),
		{ProductID: 1, BrewMethod: "Aeropress", Score: fp(7), AmountCoffeeGrams: fp(14)},
		{ProductID: 1, BrewMethod: "Aeropress", Score: fp(7.5), AmountCoffeeGrams: fp(15)},
	}

	before := Derive(corpus).Recommendations["Aeropress"]

	// Changing a V60 session's coffee dose must not touch Aeropress.
	corpus[0].AmountCoffeeGrams = fp(30)
	after := Derive(corpus).Recommendations["Aeropress"]

	if !reflect.DeepEqual(before, after) {
		t.Errorf("changing a V60 session affected the Aeropress recommendation:\nbefore: %+v\nafter:  %+v", before, after)
	}
}

// The concrete scenario from the engine's design: three V60 sessions
// scoring 8, 9 and 4.0; the 4.0 is excluded, the survivors agree on the
// dose and differ on temperature.
func TestDerive_AggregateScenario(t *testing.T) {
	corpus := []domain.BrewSession{
		v60Session(8, 18, 93),
		v60Session(9, 18, 96),
		v60Session(4.0, 20, 90),
	}

	set := Derive(corpus)
	if !set.HasRecommendations {
		t.Fatalf("expected recommendations, got message %q", set.Message)
	}

	rec, ok := set.Recommendations["V60"]
	if !ok {
		t.Fatalf("expected a V60 recommendation, got %v", set.Recommendations)
	}
	if rec.Type != domain.RecommendationAggregate {
		t.Fatalf("expected aggregate (8 vs 9 is no standout), got %q", rec.Type)
	}
	if rec.SessionsUsed != 2 {
		t.Errorf("expected 2 sessions used, got %d", rec.SessionsUsed)
	}
	if rec.AvgScore == nil || *rec.AvgScore != 8.5 {
		t.Errorf("expected avg_score 8.5, got %v", rec.AvgScore)
	}

	coffee := rec.Parameters["amount_coffee_grams"]
	if coffee.Type != domain.SuggestionExact {
		t.Errorf("expected exact coffee dose, got %+v", coffee)
	}
	if coffee.Value != 18.0 {
		t.Errorf("expected coffee value 18, got %v", coffee.Value)
	}

	temp := rec.Parameters["brew_temperature_c"]
	if temp.Type != domain.SuggestionRange {
		t.Fatalf("expected temperature range, got %+v", temp)
	}
	if *temp.Min != 93 || *temp.Max != 96 || *temp.Avg != 94.5 {
		t.Errorf("expected range 93..96 avg 94.5, got min=%v max=%v avg=%v", *temp.Min, *temp.Max, *temp.Avg)
	}
	if *temp.Min > *temp.Avg || *temp.Avg > *temp.Max {
		t.Errorf("range violates min <= avg <= max")
	}
}

func TestDerive_SingleSessionTemplate(t *testing.T) {
	corpus := []domain.BrewSession{
		{
			ProductID:         1,
			BrewMethod:        "Espresso",
			Score:             fp(9),
			AmountCoffeeGrams: fp(18),
			BrewTimeSeconds:   fp(28),
			GrinderSetting:    "2.5",
			Grinder:           "Niche Zero",
		},
	}

	set := Derive(corpus)
	rec, ok := set.Recommendations["Espresso"]
	if !ok {
		t.Fatalf("expected an Espresso recommendation")
	}
	if rec.Type != domain.RecommendationTemplate {
		t.Fatalf("expected template for a lone session, got %q", rec.Type)
	}
	if rec.SourceScore == nil || *rec.SourceScore != 9 {
		t.Errorf("expected source_score 9, got %v", rec.SourceScore)
	}

	for name, sug := range rec.Parameters {
		if sug.Type != domain.SuggestionExact {
			t.Errorf("template parameter %s should be exact, got %q", name, sug.Type)
		}
	}
	if rec.Parameters["amount_coffee_grams"].Value != 18.0 {
		t.Errorf("expected dose 18, got %v", rec.Parameters["amount_coffee_grams"].Value)
	}
	if rec.Parameters["grinder"].Value != "Niche Zero" {
		t.Errorf("expected grinder Niche Zero, got %v", rec.Parameters["grinder"].Value)
	}
	// Unset parameters stay out of the output entirely.
	if _, ok := rec.Parameters["amount_water_grams"]; ok {
		t.Errorf("unset water amount should be omitted")
	}
	if _, ok := rec.Parameters["filter"]; ok {
		t.Errorf("unset filter should be omitted")
	}
}

func TestDerive_TemplateMargin(t *testing.T) {
	cases := []struct {
		name     string
		top      float64
		runnerUp float64
		want     string
	}{
		{"clear standout", 9.0, 7.0, domain.RecommendationTemplate},
		{"exactly at margin", 9.0, 7.5, domain.RecommendationTemplate},
		{"inside margin", 9.0, 8.0, domain.RecommendationAggregate},
		{"tie at top", 9.0, 9.0, domain.RecommendationAggregate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			corpus := []domain.BrewSession{
				v60Session(tc.top, 18, 93),
				v60Session(tc.runnerUp, 20, 96),
			}
			rec := Derive(corpus).Recommendations["V60"]
			if rec.Type != tc.want {
				t.Errorf("top=%v runnerUp=%v: expected %q, got %q", tc.top, tc.runnerUp, tc.want, rec.Type)
			}
		})
	}
}

func TestDerive_FrequentCategorical(t *testing.T) {
	corpus := []domain.BrewSession{
		{ProductID: 1, BrewMethod: "V60", Score: fp(8), Filter: "Cafec Abaca"},
		{ProductID: 1, BrewMethod: "V60", Score: fp(8.2), Filter: "Cafec Abaca"},
		{ProductID: 1, BrewMethod: "V60", Score: fp(7.8), Filter: "Hario tabbed"},
	}

	rec := Derive(corpus).Recommendations["V60"]
	sug := rec.Parameters["filter"]
	if sug.Type != domain.SuggestionFrequent {
		t.Fatalf("expected frequent, got %+v", sug)
	}
	if sug.Value != "Cafec Abaca" || sug.Frequency != 2 || sug.Total != 3 {
		t.Errorf("expected Cafec Abaca 2/3, got %v %d/%d", sug.Value, sug.Frequency, sug.Total)
	}
}

func TestDerive_FrequentAllSingletons(t *testing.T) {
	// No real majority: report the first-encountered value with frequency 1.
	corpus := []domain.BrewSession{
		{ProductID: 1, BrewMethod: "V60", Score: fp(8), Recipe: "Hoffmann"},
		{ProductID: 1, BrewMethod: "V60", Score: fp(8.1), Recipe: "Kasuya 4:6"},
		{ProductID: 1, BrewMethod: "V60", Score: fp(7.9), Recipe: "Rao"},
	}

	rec := Derive(corpus).Recommendations["V60"]
	sug := rec.Parameters["recipe"]
	if sug.Type != domain.SuggestionFrequent {
		t.Fatalf("expected frequent, got %+v", sug)
	}
	if sug.Value != "Hoffmann" || sug.Frequency != 1 || sug.Total != 3 {
		t.Errorf("expected first-encountered Hoffmann 1/3, got %v %d/%d", sug.Value, sug.Frequency, sug.Total)
	}
}

func TestDerive_PartialSessionsDegradeGracefully(t *testing.T) {
	// A session missing a parameter is excluded from that parameter's
	// aggregate only; it still contributes everywhere else.
	corpus := []domain.BrewSession{
		{ProductID: 1, BrewMethod: "V60", Score: fp(8), AmountCoffeeGrams: fp(18), BrewTemperatureC: fp(93)},
		{ProductID: 1, BrewMethod: "V60", Score: fp(8.3), AmountCoffeeGrams: fp(18)}, // no temperature
	}

	rec := Derive(corpus).Recommendations["V60"]
	if rec.Type != domain.RecommendationAggregate {
		t.Fatalf("expected aggregate, got %q", rec.Type)
	}

	coffee := rec.Parameters["amount_coffee_grams"]
	if coffee.Type != domain.SuggestionExact || coffee.Value != 18.0 {
		t.Errorf("expected exact 18 coffee from both sessions, got %+v", coffee)
	}

	// Only one temperature recorded: a single distinct value is exact.
	temp := rec.Parameters["brew_temperature_c"]
	if temp.Type != domain.SuggestionExact || temp.Value != 93.0 {
		t.Errorf("expected exact 93 from the lone recorded temperature, got %+v", temp)
	}
}

func TestDerive_MethodlessSessionsSkipped(t *testing.T) {
	corpus := []domain.BrewSession{
		{ProductID: 1, Score: fp(9), AmountCoffeeGrams: fp(18)}, // no method
	}

	set := Derive(corpus)
	if set.HasRecommendations {
		t.Errorf("sessions without a method cannot produce a recommendation, got %+v", set.Recommendations)
	}
}

func TestDerive_AdviceText(t *testing.T) {
	corpus := []domain.BrewSession{
		{ProductID: 1, BrewMethod: "Espresso", Score: fp(9), AmountCoffeeGrams: fp(18), BrewTimeSeconds: fp(150)},
	}

	rec := Derive(corpus).Recommendations["Espresso"]
	if rec.Advice == "" {
		t.Errorf("expected a lead-in advice sentence")
	}

	hint := rec.Parameters["brew_time_seconds"].Hint
	if hint == "" {
		t.Fatalf("expected a brew time hint")
	}
	// 150 seconds renders as 2:30
	if want := "2:30"; !strings.Contains(hint, want) {
		t.Errorf("expected hint to contain %q, got %q", want, hint)
	}
}
