package domain

import (
	"time"
)

// CREATE TABLE public.espresso_shots (
//     id               BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_id       BIGINT NOT NULL REFERENCES products(id),
//     batch_id         BIGINT REFERENCES roast_batches(id),
//     dose_grams       NUMERIC,
//     yield_grams      NUMERIC,
//     brew_time_seconds NUMERIC,
//     temperature_c    NUMERIC,
//     grinder_setting  TEXT,
//     pressure_bar     NUMERIC,
//     score            NUMERIC,
//     notes            TEXT,
//     created_at       TIMESTAMPTZ DEFAULT NOW()
// );

type EspressoShot struct {
	ID              uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID       uint64    `gorm:"column:product_id;not null" json:"product_id"`
	BatchID         *uint64   `gorm:"column:batch_id" json:"batch_id"`
	DoseGrams       *float64  `gorm:"column:dose_grams;type:numeric" json:"dose_grams"`
	YieldGrams      *float64  `gorm:"column:yield_grams;type:numeric" json:"yield_grams"`
	BrewTimeSeconds *float64  `gorm:"column:brew_time_seconds;type:numeric" json:"brew_time_seconds"`
	TemperatureC    *float64  `gorm:"column:temperature_c;type:numeric" json:"temperature_c"`
	GrinderSetting  string    `gorm:"column:grinder_setting;type:text" json:"grinder_setting"`
	PressureBar     *float64  `gorm:"column:pressure_bar;type:numeric" json:"pressure_bar"`
	Score           *float64  `gorm:"column:score;type:numeric" json:"score"`
	Notes           string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt       time.Time `gorm:"column:created_at" json:"created_at"`
}

func (EspressoShot) TableName() string {
	return "espresso_shots"
}
