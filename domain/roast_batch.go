package domain

import (
	"time"
)

// CREATE TABLE public.roast_batches (
//     id            BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     product_id    BIGINT NOT NULL REFERENCES products(id),
//     roast_date    DATE,
//     purchase_date DATE,
//     amount_grams  NUMERIC,
//     price         NUMERIC,
//     seller        TEXT,
//     rating        NUMERIC,
//     notes         TEXT,
//     created_at    TIMESTAMPTZ DEFAULT NOW()
// );

type RoastBatch struct {
	ID           uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	ProductID    uint64     `gorm:"column:product_id;not null" json:"product_id"`
	RoastDate    *time.Time `gorm:"column:roast_date" json:"roast_date"`
	PurchaseDate *time.Time `gorm:"column:purchase_date" json:"purchase_date"`
	AmountGrams  *float64   `gorm:"column:amount_grams;type:numeric" json:"amount_grams"`
	Price        *float64   `gorm:"column:price;type:numeric" json:"price"`
	Seller       string     `gorm:"column:seller;type:text" json:"seller"`
	Rating       *float64   `gorm:"column:rating;type:numeric" json:"rating"`
	Notes        string     `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt    time.Time  `gorm:"column:created_at" json:"created_at"`
}

func (RoastBatch) TableName() string {
	return "roast_batches"
}
