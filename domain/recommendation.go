package domain

import (
	"time"

	"gorm.io/datatypes"
)

// Recommendation classification.
const (
	RecommendationTemplate  = "template"
	RecommendationAggregate = "aggregate"
)

// ParamSuggestion types.
const (
	SuggestionExact    = "exact"
	SuggestionRange    = "range"
	SuggestionFrequent = "frequent"
)

// ParamSuggestion is one suggested value for a single brewing parameter.
// Exactly one of the three shapes is populated, discriminated by Type:
//
//	exact:    Value
//	range:    Min, Max, Avg
//	frequent: Value, Frequency, Total
type ParamSuggestion struct {
	Type      string   `json:"type"`
	Value     any      `json:"value,omitempty"`
	Min       *float64 `json:"min,omitempty"`
	Max       *float64 `json:"max,omitempty"`
	Avg       *float64 `json:"avg,omitempty"`
	Frequency int      `json:"frequency,omitempty"`
	Total     int      `json:"total,omitempty"`
	Hint      string   `json:"hint,omitempty"`
}

// Recommendation is the derived suggestion for one brew method.
type Recommendation struct {
	Type         string                     `json:"type"`
	SourceScore  *float64                   `json:"source_score,omitempty"`
	SessionsUsed int                        `json:"sessions_used,omitempty"`
	AvgScore     *float64                   `json:"avg_score,omitempty"`
	Advice       string                     `json:"advice"`
	Parameters   map[string]ParamSuggestion `json:"parameters"`
}

// RecommendationSet is the full response for one product: a mapping from
// brew method name to its recommendation, or a "not enough data" message.
type RecommendationSet struct {
	HasRecommendations bool                      `json:"has_recommendations"`
	Message            string                    `json:"message,omitempty"`
	Recommendations    map[string]Recommendation `json:"recommendations,omitempty"`
}

// CREATE TABLE public.recommendation_events (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_id  BIGINT NOT NULL,
//     brew_method TEXT NOT NULL,
//     reco_type   TEXT NOT NULL,
//     applied     JSONB,
//     created_at  TIMESTAMPTZ DEFAULT NOW()
// );

// RecommendationEvent records that a user applied a recommendation to a new
// session form, together with the flattened parameter values they accepted.
type RecommendationEvent struct {
	ID         uint64            `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID  uint64            `gorm:"column:product_id;not null" json:"product_id"`
	BrewMethod string            `gorm:"column:brew_method;not null" json:"brew_method"`
	RecoType   string            `gorm:"column:reco_type;not null" json:"reco_type"`
	Applied    datatypes.JSONMap `gorm:"column:applied;type:jsonb" json:"applied"`
	CreatedAt  time.Time         `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (RecommendationEvent) TableName() string {
	return "recommendation_events"
}
