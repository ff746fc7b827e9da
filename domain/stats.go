package domain

import "time"

// MethodStats is one dashboard row: activity and quality per brew method.
type MethodStats struct {
	BrewMethod string   `json:"brew_method"`
	Sessions   int64    `json:"sessions"`
	AvgScore   *float64 `json:"avg_score"`
	BestScore  *float64 `json:"best_score"`
}

// ProductStats is one dashboard row per product.
type ProductStats struct {
	ProductID    uint64     `json:"product_id"`
	Name         string     `json:"name"`
	Sessions     int64      `json:"sessions"`
	AvgScore     *float64   `json:"avg_score"`
	LastBrewedAt *time.Time `json:"last_brewed_at"`
}

// OverviewStats is the top-level dashboard payload.
type OverviewStats struct {
	Products int64         `json:"products"`
	Batches  int64         `json:"batches"`
	Sessions int64         `json:"sessions"`
	Shots    int64         `json:"shots"`
	AvgScore *float64      `json:"avg_score"`
	Methods  []MethodStats `json:"methods"`
}
