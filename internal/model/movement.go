package model

import "time"

type MovementType string

const (
	MovementTransfer   MovementType = "transfer"
	MovementReturn     MovementType = "return"
	MovementAdjustment MovementType = "adjustment"
)

type MovementStatus string

const (
	MovementCompleted MovementStatus = "completed"
	MovementPending   MovementStatus = "pending"
	MovementRejected  MovementStatus = "rejected"
)

// Movement is a read-only history entry. From/To hold location display names;
// To is empty for adjustments.
type Movement struct {
	ID     string         `db:"id" json:"id"`
	Date   time.Time      `db:"date" json:"date"`
	Type   MovementType   `db:"type" json:"type"`
	From   string         `db:"from_location" json:"from"`
	To     string         `db:"to_location" json:"to"`
	Items  int            `db:"items" json:"items"`
	User   string         `db:"user_name" json:"user"`
	Status MovementStatus `db:"status" json:"status"`
}
