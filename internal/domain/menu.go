package domain

import "time"

type MenuItem struct {
	ID            string
	Name          string
	Description   string
	Price         int
	Category      string
	Available     bool
	AgeRestricted bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
