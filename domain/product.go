package domain

import (
	"time"
)

// CREATE TABLE public.products (
//     id          BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name        TEXT NOT NULL,
//     roaster     TEXT,
//     country     TEXT,
//     region      TEXT,
//     process     TEXT,
//     roast_level TEXT,
//     decaf       BOOLEAN DEFAULT FALSE,
//     rating      NUMERIC,
//     archived    BOOLEAN DEFAULT FALSE,
//     notes       TEXT,
//     created_at  TIMESTAMPTZ DEFAULT NOW(),
//     updated_at  TIMESTAMPTZ
// );

type Product struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string    `gorm:"column:name;type:text;not null" json:"name"`
	Roaster    string    `gorm:"column:roaster;type:text" json:"roaster"`
	Country    string    `gorm:"column:country;type:text" json:"country"`
	Region     string    `gorm:"column:region;type:text" json:"region"`
	Process    string    `gorm:"column:process;type:text" json:"process"`
	RoastLevel string    `gorm:"column:roast_level;type:text" json:"roast_level"`
	Decaf      bool      `gorm:"column:decaf;default:false" json:"decaf"`
	Rating     *float64  `gorm:"column:rating;type:numeric" json:"rating"`
	Archived   bool      `gorm:"column:archived;default:false" json:"archived"`
	Notes      string    `gorm:"column:notes;type:text" json:"notes"`
	CreatedAt  time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (Product) TableName() string {
	return "products"
}
