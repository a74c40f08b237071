package repository

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavola/internal/domain"
	"tavola/internal/errors"
	"tavola/internal/testutil"
)

// Unit Tests

func TestNewMySQLAccountRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLAccountRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestAccountRepository_SaveAndGetByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLAccountRepository(db)

	account := domain.LoyaltyAccount{Email: "ana@example.com", Points: 120, LifetimePoints: 340}
	require.NoError(t, repo.Save(context.Background(), account))

	got, err := repo.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, 120, got.Points)
	assert.Equal(t, 340, got.LifetimePoints)

	// Saving again upserts rather than duplicating.
	account.Points = 80
	account.LifetimePoints = 400
	require.NoError(t, repo.Save(context.Background(), account))

	got, err = repo.GetByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Equal(t, 80, got.Points)
	assert.Equal(t, 400, got.LifetimePoints)
}

func TestAccountRepository_GetByEmail_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLAccountRepository(db)

	account, err := repo.GetByEmail(context.Background(), "ghost@example.com")
	assert.Error(t, err)
	assert.Nil(t, account)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestRedemptionRepository_CreateAndListByEmail(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLRedemptionRepository(db)

	require.NoError(t, repo.Create(context.Background(), domain.Redemption{
		ID: "red-1", Email: "ana@example.com", RewardID: "r1", PointsSpent: 200,
	}))
	require.NoError(t, repo.Create(context.Background(), domain.Redemption{
		ID: "red-2", Email: "ana@example.com", RewardID: "r2", PointsSpent: 150,
	}))
	require.NoError(t, repo.Create(context.Background(), domain.Redemption{
		ID: "red-3", Email: "other@example.com", RewardID: "r1", PointsSpent: 200,
	}))

	redemptions, err := repo.ListByEmail(context.Background(), "ana@example.com")
	require.NoError(t, err)
	assert.Len(t, redemptions, 2)

	redemptions, err = repo.ListByEmail(context.Background(), "ghost@example.com")
	require.NoError(t, err)
	assert.Empty(t, redemptions)
}
