package model

import "time"

type LocationType string

const (
	LocationWarehouse LocationType = "warehouse"
	LocationStore     LocationType = "store"
)

type Location struct {
	ID        string       `db:"id" json:"id"`
	Name      string       `db:"name" json:"name"`
	Type      LocationType `db:"type" json:"type"`
	Address   *string      `db:"address" json:"address"`
	Capacity  *int64       `db:"capacity" json:"capacity"` // Nullable, advisory only
	Manager   *string      `db:"manager" json:"manager"`
	Contact   *string      `db:"contact" json:"contact"`
	CreatedAt time.Time    `db:"created_at" json:"created_at"`
	UpdatedAt time.Time    `db:"updated_at" json:"updated_at"`
}
