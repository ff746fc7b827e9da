package domain

import (
	"time"
)

// CREATE TABLE public.brew_sessions (
//     id                  BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_id          BIGINT NOT NULL REFERENCES products(id),
//     batch_id            BIGINT REFERENCES roast_batches(id),
//     brew_method         TEXT,
//     score               NUMERIC,      -- 0..10, NULL = unscored
//     amount_coffee_grams NUMERIC,
//     amount_water_grams  NUMERIC,
//     brew_ratio          NUMERIC,      -- derived: water / coffee
//     brew_temperature_c  NUMERIC,
//     grinder_setting     TEXT,
//     bloom_time_seconds  NUMERIC,
//     brew_time_seconds   NUMERIC,
//     recipe              TEXT,
//     grinder             TEXT,
//     filter              TEXT,
//     vessel              TEXT,
//     notes               TEXT,
//     created_at          TIMESTAMPTZ DEFAULT NOW()
// );

// BrewSession is one logged brew attempt. A session belongs to exactly one
// product and has at most one brew method. Numeric parameters are pointers:
// nil means the value was never recorded, which is different from zero.
type BrewSession struct {
	ID                uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID         uint64    `gorm:"column:product_id;not null" json:"product_id"`
	BatchID           *uint64   `gorm:"column:batch_id" json:"batch_id"`
	BrewMethod        string    `gorm:"column:brew_method;type:text" json:"brew_method"`
	Score             *float64  `gorm:"column:score;type:numeric" json:"score"`
	AmountCoffeeGrams *float64  `gorm:"column:amount_coffee_grams;type:numeric" json:"amount_coffee_grams"`
	AmountWaterGrams  *float64  `gorm:"column:amount_water_grams;type:numeric" json:"amount_water_grams"`
	BrewRatio         *float64  `gorm:"column:brew_ratio;type:numeric" json:"brew_ratio"`
	BrewTemperatureC  *float64  `gorm:"column:brew_temperature_c;type:numeric" json:"brew_temperature_c"`
	GrinderSetting    string    `gorm:"column:grinder_setting;type:text" json:"grinder_setting"`
	BloomTimeSeconds  *float64  `gorm:"column:bloom_time_seconds;type:numeric" json:"bloom_time_seconds"`
	BrewTimeSeconds   *float64  `gorm:"column:brew_time_seconds;type:numeric" json:"brew_time_seconds"`
	Recipe            string    `gorm:"column:recipe;type:text" json:"recipe"`
	Grinder           string    `gorm:"column:grinder;type:text" json:"grinder"`
	Filter            string    `gorm:"column:filter;type:text" json:"filter"`
	Vessel            string    `gorm:"column:vessel;type:text" json:"vessel"`
	Notes             string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt         time.Time `gorm:"column:created_at" json:"created_at"`
}

func (BrewSession) TableName() string {
	return "brew_sessions"
}

// SessionFilter narrows session listings. Zero values mean "no filter".
type SessionFilter struct {
	ProductID uint64
	Method    string
}
