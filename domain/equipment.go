package domain

import (
	"time"
)

// CREATE TABLE public.equipment (
//     id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     name       TEXT NOT NULL,
//     kind       TEXT NOT NULL,   -- brewer, grinder, kettle, scale, ...
//     notes      TEXT,
//     archived   BOOLEAN DEFAULT FALSE,
//     created_at TIMESTAMPTZ DEFAULT NOW()
// );

type Equipment struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;type:text;not null" json:"name"`
	Kind      string    `gorm:"column:kind;type:text;not null" json:"kind"`
	Notes     string    `gorm:"column:notes;type:text" json:"notes"`
	Archived  bool      `gorm:"column:archived;default:false" json:"archived"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Equipment) TableName() string {
	return "equipment"
}
