package domain

import "time"

// LoyaltyTier is a customer segment unlocked by cumulative points.
type LoyaltyTier struct {
	ID         string
	Name       string
	MinPoints  int
	Multiplier float64
	Benefits   []string
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

type Reward struct {
	ID          string
	Name        string
	Description string
	PointsCost  int
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// LoyaltyAccount tracks a customer's point balance, keyed by email.
// LifetimePoints only grows and drives tier placement; Points is spendable.
type LoyaltyAccount struct {
	Email          string
	Points         int
	LifetimePoints int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type Redemption struct {
	ID          string
	Email       string
	RewardID    string
	PointsSpent int
	CreatedAt   time.Time
}
