package dto

import "time"

type MovementFilters struct {
	Type      string
	Status    string
	StartDate *time.Time
	EndDate   *time.Time
	Page      int
	PageSize  int
}
