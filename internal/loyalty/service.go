package loyalty

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tavola/internal/domain"
	"tavola/internal/errors"
)

// Service handles point accrual, balances and reward redemption.
type Service struct {
	tiers       TierRepository
	rewards     RewardRepository
	accounts    AccountRepository
	redemptions RedemptionRepository
	logger      *zap.Logger
}

func NewService(
	tiers TierRepository,
	rewards RewardRepository,
	accounts AccountRepository,
	redemptions RedemptionRepository,
	logger *zap.Logger,
) *Service {
	return &Service{
		tiers:       tiers,
		rewards:     rewards,
		accounts:    accounts,
		redemptions: redemptions,
		logger:      logger,
	}
}

// TierFor returns the highest active tier whose threshold the account's
// lifetime points reach, or nil when no tier applies.
func (s *Service) TierFor(ctx context.Context, account domain.LoyaltyAccount) (*domain.LoyaltyTier, error) {
	tiers, err := s.tiers.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	// Tiers come back ordered by minPoints ascending, so the last match wins.
	var current *domain.LoyaltyTier
	for i := range tiers {
		if account.LifetimePoints >= tiers[i].MinPoints {
			current = &tiers[i]
		}
	}

	return current, nil
}

// AccrueOnCompletion credits points for a completed order: one base point
// per whole currency unit spent, scaled by the customer's tier multiplier.
// Orders without a customer email accrue nothing.
func (s *Service) AccrueOnCompletion(ctx context.Context, order domain.Order) error {
	if order.CustomerEmail == "" {
		return nil
	}

	account, err := s.accounts.GetByEmail(ctx, order.CustomerEmail)
	if err != nil {
		if _, notFound := errors.IsNotFoundError(err); !notFound {
			return err
		}
		account = &domain.LoyaltyAccount{Email: order.CustomerEmail}
	}

	multiplier := 1.0
	tier, err := s.TierFor(ctx, *account)
	if err != nil {
		return err
	}
	if tier != nil {
		multiplier = tier.Multiplier
	}

	basePoints := order.Amount / 100
	earned := int(float64(basePoints) * multiplier)

	account.Points += earned
	account.LifetimePoints += earned

	if err := s.accounts.Save(ctx, *account); err != nil {
		return err
	}

	s.logger.Info("loyalty points accrued",
		zap.String("email", order.CustomerEmail),
		zap.String("orderId", order.ID),
		zap.Int("earned", earned),
		zap.Float64("multiplier", multiplier),
	)

	return nil
}

func (s *Service) ActiveRewards(ctx context.Context) ([]domain.Reward, error) {
	return s.rewards.ListActive(ctx)
}

// Balance describes an account together with its current tier and history.
type Balance struct {
	Account     domain.LoyaltyAccount
	Tier        *domain.LoyaltyTier
	Redemptions []domain.Redemption
}

func (s *Service) Balance(ctx context.Context, email string) (*Balance, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	tier, err := s.TierFor(ctx, *account)
	if err != nil {
		return nil, err
	}

	redemptions, err := s.redemptions.ListByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	return &Balance{Account: *account, Tier: tier, Redemptions: redemptions}, nil
}

// Redeem exchanges points for a reward. The balance decrement and the
// redemption record are two separate writes; a crash between them loses
// the record but never the points.
func (s *Service) Redeem(ctx context.Context, email, rewardID string) (*domain.Redemption, error) {
	account, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	reward, err := s.rewards.GetByID(ctx, rewardID)
	if err != nil {
		return nil, err
	}
	if !reward.Active {
		return nil, errors.NewConflictError(fmt.Sprintf("reward %s is no longer available", reward.Name))
	}
	if account.Points < reward.PointsCost {
		return nil, errors.NewConflictError(
			fmt.Sprintf("not enough points: have %d, need %d", account.Points, reward.PointsCost),
		)
	}

	account.Points -= reward.PointsCost
	if err := s.accounts.Save(ctx, *account); err != nil {
		return nil, err
	}

	redemption := domain.Redemption{
		ID:          uuid.NewString(),
		Email:       email,
		RewardID:    reward.ID,
		PointsSpent: reward.PointsCost,
	}
	if err := s.redemptions.Create(ctx, redemption); err != nil {
		return nil, err
	}

	return &redemption, nil
}
