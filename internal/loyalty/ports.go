package loyalty

import (
	"context"

	"tavola/internal/domain"
)

type TierRepository interface {
	List(ctx context.Context) ([]domain.LoyaltyTier, error)
	ListActive(ctx context.Context) ([]domain.LoyaltyTier, error)
	GetByID(ctx context.Context, id string) (*domain.LoyaltyTier, error)
	Create(ctx context.Context, tier domain.LoyaltyTier) error
	Update(ctx context.Context, tier domain.LoyaltyTier) error
	Delete(ctx context.Context, id string) error
}

type RewardRepository interface {
	List(ctx context.Context) ([]domain.Reward, error)
	ListActive(ctx context.Context) ([]domain.Reward, error)
	GetByID(ctx context.Context, id string) (*domain.Reward, error)
	Create(ctx context.Context, reward domain.Reward) error
	Update(ctx context.Context, reward domain.Reward) error
	Delete(ctx context.Context, id string) error
}

type AccountRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.LoyaltyAccount, error)
	Save(ctx context.Context, account domain.LoyaltyAccount) error
}

type RedemptionRepository interface {
	Create(ctx context.Context, redemption domain.Redemption) error
	ListByEmail(ctx context.Context, email string) ([]domain.Redemption, error)
}
