package loyalty

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tavola/internal/domain"
	"tavola/internal/errors"
)

type mockTierRepository struct {
	listActiveFn func(ctx context.Context) ([]domain.LoyaltyTier, error)
}

func (m *mockTierRepository) List(ctx context.Context) ([]domain.LoyaltyTier, error) { return nil, nil }
func (m *mockTierRepository) ListActive(ctx context.Context) ([]domain.LoyaltyTier, error) {
	return m.listActiveFn(ctx)
}
func (m *mockTierRepository) GetByID(ctx context.Context, id string) (*domain.LoyaltyTier, error) {
	return nil, nil
}
func (m *mockTierRepository) Create(ctx context.Context, tier domain.LoyaltyTier) error { return nil }
func (m *mockTierRepository) Update(ctx context.Context, tier domain.LoyaltyTier) error { return nil }
func (m *mockTierRepository) Delete(ctx context.Context, id string) error               { return nil }

type mockRewardRepository struct {
	getByIDFn func(ctx context.Context, id string) (*domain.Reward, error)
}

func (m *mockRewardRepository) List(ctx context.Context) ([]domain.Reward, error) { return nil, nil }
func (m *mockRewardRepository) ListActive(ctx context.Context) ([]domain.Reward, error) {
	return nil, nil
}
func (m *mockRewardRepository) GetByID(ctx context.Context, id string) (*domain.Reward, error) {
	return m.getByIDFn(ctx, id)
}
func (m *mockRewardRepository) Create(ctx context.Context, reward domain.Reward) error { return nil }
func (m *mockRewardRepository) Update(ctx context.Context, reward domain.Reward) error { return nil }
func (m *mockRewardRepository) Delete(ctx context.Context, id string) error            { return nil }

type mockAccountRepository struct {
	getByEmailFn func(ctx context.Context, email string) (*domain.LoyaltyAccount, error)
	saveFn       func(ctx context.Context, account domain.LoyaltyAccount) error
}

func (m *mockAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.LoyaltyAccount, error) {
	return m.getByEmailFn(ctx, email)
}
func (m *mockAccountRepository) Save(ctx context.Context, account domain.LoyaltyAccount) error {
	return m.saveFn(ctx, account)
}

type mockRedemptionRepository struct {
	createFn      func(ctx context.Context, redemption domain.Redemption) error
	listByEmailFn func(ctx context.Context, email string) ([]domain.Redemption, error)
}

func (m *mockRedemptionRepository) Create(ctx context.Context, redemption domain.Redemption) error {
	return m.createFn(ctx, redemption)
}
func (m *mockRedemptionRepository) ListByEmail(ctx context.Context, email string) ([]domain.Redemption, error) {
	return m.listByEmailFn(ctx, email)
}

func standardTiers() []domain.LoyaltyTier {
	return []domain.LoyaltyTier{
		{ID: "t1", Name: "Bronze", MinPoints: 0, Multiplier: 1.0, Active: true},
		{ID: "t2", Name: "Silver", MinPoints: 500, Multiplier: 1.25, Active: true},
		{ID: "t3", Name: "Gold", MinPoints: 2000, Multiplier: 1.5, Active: true},
	}
}

func TestAccrueOnCompletion(t *testing.T) {
	tests := []struct {
		name           string
		account        *domain.LoyaltyAccount
		amount         int
		expectedEarned int
	}{
		{
			name:           "new account gets base points",
			account:        nil,
			amount:         3747,
			expectedEarned: 37,
		},
		{
			name:           "silver member gets multiplier",
			account:        &domain.LoyaltyAccount{Email: "ana@example.com", Points: 120, LifetimePoints: 600},
			amount:         4000,
			expectedEarned: 50,
		},
		{
			name:           "gold member gets top multiplier",
			account:        &domain.LoyaltyAccount{Email: "ana@example.com", Points: 10, LifetimePoints: 2500},
			amount:         2000,
			expectedEarned: 30,
		},
		{
			name:           "sub-unit order earns nothing",
			account:        &domain.LoyaltyAccount{Email: "ana@example.com"},
			amount:         99,
			expectedEarned: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var saved *domain.LoyaltyAccount
			accounts := &mockAccountRepository{
				getByEmailFn: func(ctx context.Context, email string) (*domain.LoyaltyAccount, error) {
					if tt.account == nil {
						return nil, errors.NewNotFoundError("no loyalty account for " + email)
					}
					copy := *tt.account
					return &copy, nil
				},
				saveFn: func(ctx context.Context, account domain.LoyaltyAccount) error {
					saved = &account
					return nil
				},
			}
			tiers := &mockTierRepository{
				listActiveFn: func(ctx context.Context) ([]domain.LoyaltyTier, error) {
					return standardTiers(), nil
				},
			}

			service := NewService(tiers, nil, accounts, nil, zap.NewNop())

			err := service.AccrueOnCompletion(context.Background(), domain.Order{
				ID:            "order-1",
				CustomerEmail: "ana@example.com",
				Amount:        tt.amount,
			})

			require.NoError(t, err)
			require.NotNil(t, saved)

			previousPoints, previousLifetime := 0, 0
			if tt.account != nil {
				previousPoints = tt.account.Points
				previousLifetime = tt.account.LifetimePoints
			}
			assert.Equal(t, previousPoints+tt.expectedEarned, saved.Points)
			assert.Equal(t, previousLifetime+tt.expectedEarned, saved.LifetimePoints)
		})
	}
}

func TestAccrueOnCompletionSkipsGuestOrders(t *testing.T) {
	accounts := &mockAccountRepository{
		getByEmailFn: func(ctx context.Context, email string) (*domain.LoyaltyAccount, error) {
			t.Fatal("guest orders must not touch the account store")
			return nil, nil
		},
		saveFn: func(ctx context.Context, account domain.LoyaltyAccount) error { return nil },
	}

	service := NewService(nil, nil, accounts, nil, zap.NewNop())

	err := service.AccrueOnCompletion(context.Background(), domain.Order{ID: "order-1", Amount: 5000})
	require.NoError(t, err)
}

func TestTierForPicksHighestReached(t *testing.T) {
	tiers := &mockTierRepository{
		listActiveFn: func(ctx context.Context) ([]domain.LoyaltyTier, error) {
			return standardTiers(), nil
		},
	}
	service := NewService(tiers, nil, nil, nil, zap.NewNop())

	tier, err := service.TierFor(context.Background(), domain.LoyaltyAccount{LifetimePoints: 1999})
	require.NoError(t, err)
	require.NotNil(t, tier)
	assert.Equal(t, "Silver", tier.Name)

	tier, err = service.TierFor(context.Background(), domain.LoyaltyAccount{LifetimePoints: 2000})
	require.NoError(t, err)
	require.NotNil(t, tier)
	assert.Equal(t, "Gold", tier.Name)
}

func TestTierForWithoutTiers(t *testing.T) {
	tiers := &mockTierRepository{
		listActiveFn: func(ctx context.Context) ([]domain.LoyaltyTier, error) { return nil, nil },
	}
	service := NewService(tiers, nil, nil, nil, zap.NewNop())

	tier, err := service.TierFor(context.Background(), domain.LoyaltyAccount{LifetimePoints: 9000})
	require.NoError(t, err)
	assert.Nil(t, tier)
}

func TestRedeem(t *testing.T) {
	reward := &domain.Reward{ID: "r1", Name: "Free Dessert", PointsCost: 200, Active: true}

	t.Run("success deducts points and records redemption", func(t *testing.T) {
		var saved *domain.LoyaltyAccount
		var created *domain.Redemption

		accounts := &mockAccountRepository{
			getByEmailFn: func(ctx context.Context, email string) (*domain.LoyaltyAccount, error) {
				return &domain.LoyaltyAccount{Email: email, Points: 350, LifetimePoints: 900}, nil
			},
			saveFn: func(ctx context.Context, account domain.LoyaltyAccount) error {
				saved = &account
				return nil
			},
		}
		rewards := &mockRewardRepository{
			getByIDFn: func(ctx context.Context, id string) (*domain.Reward, error) { return reward, nil },
		}
		redemptions := &mockRedemptionRepository{
			createFn: func(ctx context.Context, redemption domain.Redemption) error {
				created = &redemption
				return nil
			},
		}

		service := NewService(nil, rewards, accounts, redemptions, zap.NewNop())

		redemption, err := service.Redeem(context.Background(), "ana@example.com", "r1")
		require.NoError(t, err)

		assert.Equal(t, 150, saved.Points)
		assert.Equal(t, 900, saved.LifetimePoints)
		require.NotNil(t, created)
		assert.Equal(t, "r1", created.RewardID)
		assert.Equal(t, 200, created.PointsSpent)
		assert.NotEmpty(t, redemption.ID)
	})

	t.Run("insufficient points is a conflict", func(t *testing.T) {
		accounts := &mockAccountRepository{
			getByEmailFn: func(ctx context.Context, email string) (*domain.LoyaltyAccount, error) {
				return &domain.LoyaltyAccount{Email: email, Points: 50}, nil
			},
			saveFn: func(ctx context.Context, account domain.LoyaltyAccount) error {
				t.Fatal("balance must not change on a rejected redemption")
				return nil
			},
		}
		rewards := &mockRewardRepository{
			getByIDFn: func(ctx context.Context, id string) (*domain.Reward, error) { return reward, nil },
		}

		service := NewService(nil, rewards, accounts, nil, zap.NewNop())

		_, err := service.Redeem(context.Background(), "ana@example.com", "r1")
		require.Error(t, err)
		_, ok := errors.IsConflictError(err)
		assert.True(t, ok)
	})

	t.Run("inactive reward is a conflict", func(t *testing.T) {
		accounts := &mockAccountRepository{
			getByEmailFn: func(ctx context.Context, email string) (*domain.LoyaltyAccount, error) {
				return &domain.LoyaltyAccount{Email: email, Points: 1000}, nil
			},
		}
		rewards := &mockRewardRepository{
			getByIDFn: func(ctx context.Context, id string) (*domain.Reward, error) {
				return &domain.Reward{ID: "r2", Name: "Retired", PointsCost: 10, Active: false}, nil
			},
		}

		service := NewService(nil, rewards, accounts, nil, zap.NewNop())

		_, err := service.Redeem(context.Background(), "ana@example.com", "r2")
		require.Error(t, err)
		_, ok := errors.IsConflictError(err)
		assert.True(t, ok)
	})

	t.Run("unknown account propagates not found", func(t *testing.T) {
		accounts := &mockAccountRepository{
			getByEmailFn: func(ctx context.Context, email string) (*domain.LoyaltyAccount, error) {
				return nil, errors.NewNotFoundError("no loyalty account for " + email)
			},
		}

		service := NewService(nil, nil, accounts, nil, zap.NewNop())

		_, err := service.Redeem(context.Background(), "ghost@example.com", "r1")
		require.Error(t, err)
		_, ok := errors.IsNotFoundError(err)
		assert.True(t, ok)
	})
}
