package loyalty

import "tavola/internal/domain"

type RedeemRequest struct {
	Email    string `json:"email" validate:"required,email"`
	RewardID string `json:"rewardId" validate:"required"`
}

type TierPayload struct {
	Name       string   `json:"name" validate:"required,max=100"`
	MinPoints  int      `json:"minPoints" validate:"gte=0"`
	Multiplier float64  `json:"multiplier" validate:"required,gt=0"`
	Benefits   []string `json:"benefits"`
	Active     bool     `json:"active"`
}

type RewardPayload struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
	PointsCost  int    `json:"pointsCost" validate:"required,gt=0"`
	Active      bool   `json:"active"`
}

type tierResponse struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	MinPoints  int      `json:"minPoints"`
	Multiplier float64  `json:"multiplier"`
	Benefits   []string `json:"benefits"`
	Active     bool     `json:"active"`
}

func toTierResponse(tier domain.LoyaltyTier) tierResponse {
	return tierResponse{
		ID:         tier.ID,
		Name:       tier.Name,
		MinPoints:  tier.MinPoints,
		Multiplier: tier.Multiplier,
		Benefits:   tier.Benefits,
		Active:     tier.Active,
	}
}

type rewardResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PointsCost  int    `json:"pointsCost"`
	Active      bool   `json:"active"`
}

func toRewardResponse(reward domain.Reward) rewardResponse {
	return rewardResponse{
		ID:          reward.ID,
		Name:        reward.Name,
		Description: reward.Description,
		PointsCost:  reward.PointsCost,
		Active:      reward.Active,
	}
}

type redemptionResponse struct {
	ID          string `json:"id"`
	RewardID    string `json:"rewardId"`
	PointsSpent int    `json:"pointsSpent"`
	CreatedAt   string `json:"createdAt"`
}

type balanceResponse struct {
	Email          string               `json:"email"`
	Points         int                  `json:"points"`
	LifetimePoints int                  `json:"lifetimePoints"`
	Tier           *tierResponse        `json:"tier,omitempty"`
	Redemptions    []redemptionResponse `json:"redemptions"`
}
