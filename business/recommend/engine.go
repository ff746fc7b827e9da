package recommend

import (
	"brewjournal/domain"
)

const (
	// Sessions at or below this score never inform a recommendation.
	scoreThreshold = 3.5

	// A method group's top session is replicated verbatim ("template")
	// when it beats the runner-up by at least this many score points.
	// Tunable; ties never qualify.
	templateMargin = 1.5
)

const notEnoughDataMessage = "Not enough information yet. Log a few brews with scores above " +
	"3.5 and recommendations will show up here."

// Derive computes the full recommendation set for one product's session
// corpus. Pure and deterministic: same corpus in, same set out. Missing
// or partial parameter values degrade by omission, never by error.
func Derive(sessions []domain.BrewSession) domain.RecommendationSet {
	pool := qualityFilter(sessions)
	if len(pool) == 0 {
		return domain.RecommendationSet{
			HasRecommendations: false,
			Message:            notEnoughDataMessage,
		}
	}

	groups, order := groupByMethod(pool)
	if len(order) == 0 {
		return domain.RecommendationSet{
			HasRecommendations: false,
			Message:            notEnoughDataMessage,
		}
	}

	recs := make(map[string]domain.Recommendation, len(order))
	for _, method := range order {
		rec := classifyGroup(groups[method])
		annotate(method, &rec)
		recs[method] = rec
	}

	return domain.RecommendationSet{
		HasRecommendations: true,
		Recommendations:    recs,
	}
}

// qualityFilter keeps sessions that can indicate success: scored, and
// strictly above the threshold. Unscored sessions are excluded entirely.
func qualityFilter(sessions []domain.BrewSession) []domain.BrewSession {
	pool := make([]domain.BrewSession, 0, len(sessions))
	for _, s := range sessions {
		if s.Score == nil {
			continue
		}
		if *s.Score > scoreThreshold {
			pool = append(pool, s)
		}
	}
	return pool
}

// groupByMethod partitions by exact brew-method string, preserving corpus
// order inside each group (first-encountered wins frequency ties later).
// Sessions without a method cannot be grouped and are skipped.
func groupByMethod(pool []domain.BrewSession) (map[string][]domain.BrewSession, []string) {
	groups := make(map[string][]domain.BrewSession)
	order := make([]string, 0)
	for _, s := range pool {
		if s.BrewMethod == "" {
			continue
		}
		if _, ok := groups[s.BrewMethod]; !ok {
			order = append(order, s.BrewMethod)
		}
		groups[s.BrewMethod] = append(groups[s.BrewMethod], s)
	}
	return groups, order
}

func classifyGroup(group []domain.BrewSession) domain.Recommendation {
	if best, ok := findTemplate(group); ok {
		return templateRecommendation(best)
	}
	return aggregateRecommendation(group)
}

// findTemplate decides whether one session dominates the group enough to
// replicate it exactly: a lone session always does; otherwise the top
// score must beat the runner-up by templateMargin. A tie at the top makes
// the runner-up equal to the top, so tied groups always fall through.
func findTemplate(group []domain.BrewSession) (domain.BrewSession, bool) {
	if len(group) == 1 {
		return group[0], true
	}

	var best domain.BrewSession
	topScore := -1.0
	runnerUp := -1.0
	for _, s := range group {
		score := *s.Score
		if score > topScore {
			runnerUp = topScore
			topScore = score
			best = s
		} else if score > runnerUp {
			runnerUp = score
		}
	}

	if topScore-runnerUp >= templateMargin {
		return best, true
	}
	return domain.BrewSession{}, false
}

// templateRecommendation replicates the standout session: every recorded
// parameter verbatim, tagged exact.
func templateRecommendation(best domain.BrewSession) domain.Recommendation {
	params := make(map[string]domain.ParamSuggestion)
	for _, p := range brewParams {
		switch p.kind {
		case kindNumeric:
			if v := p.numeric(best); v != nil {
				params[p.name] = domain.ParamSuggestion{
					Type:  domain.SuggestionExact,
					Value: *v,
				}
			}
		case kindCategorical:
			if v := p.text(best); v != "" {
				params[p.name] = domain.ParamSuggestion{
					Type:  domain.SuggestionExact,
					Value: v,
				}
			}
		}
	}

	score := *best.Score
	return domain.Recommendation{
		Type:        domain.RecommendationTemplate,
		SourceScore: &score,
		Parameters:  params,
	}
}

// aggregateRecommendation computes per-parameter statistics across the
// group. Parameters with zero recorded values are omitted.
func aggregateRecommendation(group []domain.BrewSession) domain.Recommendation {
	params := make(map[string]domain.ParamSuggestion)
	for _, p := range brewParams {
		switch p.kind {
		case kindNumeric:
			if sug, ok := aggregateNumeric(group, p); ok {
				params[p.name] = sug
			}
		case kindCategorical:
			if sug, ok := aggregateCategorical(group, p); ok {
				params[p.name] = sug
			}
		}
	}

	total := 0.0
	for _, s := range group {
		total += *s.Score
	}
	avg := total / float64(len(group))

	return domain.Recommendation{
		Type:         domain.RecommendationAggregate,
		SessionsUsed: len(group),
		AvgScore:     &avg,
		Parameters:   params,
	}
}

func aggregateNumeric(group []domain.BrewSession, p paramSpec) (domain.ParamSuggestion, bool) {
	vals := make([]float64, 0, len(group))
	for _, s := range group {
		if v := p.numeric(s); v != nil {
			vals = append(vals, *v)
		}
	}
	if len(vals) == 0 {
		return domain.ParamSuggestion{}, false
	}

	min, max, sum := vals[0], vals[0], 0.0
	allEqual := true
	for _, v := range vals {
		if v != vals[0] {
			allEqual = false
		}
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}

	if allEqual {
		return domain.ParamSuggestion{
			Type:  domain.SuggestionExact,
			Value: vals[0],
		}, true
	}

	avg := sum / float64(len(vals))
	return domain.ParamSuggestion{
		Type: domain.SuggestionRange,
		Min:  &min,
		Max:  &max,
		Avg:  &avg,
	}, true
}

func aggregateCategorical(group []domain.BrewSession, p paramSpec) (domain.ParamSuggestion, bool) {
	vals := make([]string, 0, len(group))
	for _, s := range group {
		if v := p.text(s); v != "" {
			vals = append(vals, v)
		}
	}
	if len(vals) == 0 {
		return domain.ParamSuggestion{}, false
	}

	counts := make(map[string]int, len(vals))
	allEqual := true
	for _, v := range vals {
		counts[v]++
		if v != vals[0] {
			allEqual = false
		}
	}

	if allEqual {
		return domain.ParamSuggestion{
			Type:  domain.SuggestionExact,
			Value: vals[0],
		}, true
	}

	// Most frequent value, first-encountered breaking ties. With all
	// frequencies at 1 this degenerates to the first value seen.
	bestVal := vals[0]
	bestCount := counts[bestVal]
	for _, v := range vals {
		if counts[v] > bestCount {
			bestVal = v
			bestCount = counts[v]
		}
	}

	return domain.ParamSuggestion{
		Type:      domain.SuggestionFrequent,
		Value:     bestVal,
		Frequency: bestCount,
		Total:     len(group),
	}, true
}
