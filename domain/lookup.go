package domain

import (
	"time"
)

// CREATE TABLE public.lookup_values (
//     id         BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
//     kind       TEXT NOT NULL,   -- brew_method, roaster, grinder, filter, ...
//     value      TEXT NOT NULL,
//     created_at TIMESTAMPTZ DEFAULT NOW(),
//     UNIQUE (kind, value)
// );

// LookupValue is one entry of a managed value list (roasters, grinders,
// filters, recipes, brew methods, ...). The kind column discriminates.
type LookupValue struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Kind      string    `gorm:"column:kind;type:text;not null" json:"kind"`
	Value     string    `gorm:"column:value;type:text;not null" json:"value"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (LookupValue) TableName() string {
	return "lookup_values"
}

// LookupKinds is the closed set of managed lists.
var LookupKinds = map[string]bool{
	"brew_method": true,
	"roaster":     true,
	"grinder":     true,
	"filter":      true,
	"recipe":      true,
	"vessel":      true,
	"country":     true,
	"process":     true,
}
