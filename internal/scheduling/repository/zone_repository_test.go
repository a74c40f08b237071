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

func TestNewMySQLZoneRepository(t *testing.T) {
	db := &sql.DB{}
	repo := NewMySQLZoneRepository(db)

	assert.NotNil(t, repo)
	assert.Equal(t, db, repo.db)
}

// Integration Tests

func TestZoneRepository_CreateAndGetByID(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLZoneRepository(db)

	zone := domain.DeliveryZone{
		ID:                 "zone-1",
		Name:               "Downtown",
		ZipCodes:           []string{"62701", "62704"},
		Fee:                499,
		MinimumOrderAmount: 1500,
		EstimatedTime:      "30-45 min",
		Active:             true,
	}

	require.NoError(t, repo.Create(context.Background(), zone))

	got, err := repo.GetByID(context.Background(), "zone-1")
	require.NoError(t, err)
	assert.Equal(t, "Downtown", got.Name)
	assert.Equal(t, []string{"62701", "62704"}, got.ZipCodes)
	assert.Equal(t, 499, got.Fee)
	assert.Equal(t, 1500, got.MinimumOrderAmount)
	assert.True(t, got.Active)
}

func TestZoneRepository_GetByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLZoneRepository(db)

	zone, err := repo.GetByID(context.Background(), "missing")
	assert.Error(t, err)
	assert.Nil(t, zone)

	nfe, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
	assert.NotNil(t, nfe)
}

func TestZoneRepository_ListActive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLZoneRepository(db)

	require.NoError(t, repo.Create(context.Background(), domain.DeliveryZone{
		ID: "zone-1", Name: "Downtown", ZipCodes: []string{"62701"}, Fee: 499, Active: true,
	}))
	require.NoError(t, repo.Create(context.Background(), domain.DeliveryZone{
		ID: "zone-2", Name: "Retired", ZipCodes: []string{"62799"}, Fee: 899, Active: false,
	}))

	active, err := repo.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "zone-1", active[0].ID)

	all, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestZoneRepository_Update(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLZoneRepository(db)

	require.NoError(t, repo.Create(context.Background(), domain.DeliveryZone{
		ID: "zone-1", Name: "Downtown", ZipCodes: []string{"62701"}, Fee: 499, Active: true,
	}))

	err := repo.Update(context.Background(), domain.DeliveryZone{
		ID: "zone-1", Name: "Downtown", ZipCodes: []string{"62701", "62702"}, Fee: 599, Active: true,
	})
	require.NoError(t, err)

	got, err := repo.GetByID(context.Background(), "zone-1")
	require.NoError(t, err)
	assert.Equal(t, 599, got.Fee)
	assert.Equal(t, []string{"62701", "62702"}, got.ZipCodes)
}

func TestZoneRepository_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	defer testutil.CleanupTestDB(t, db)

	repo := NewMySQLZoneRepository(db)

	require.NoError(t, repo.Create(context.Background(), domain.DeliveryZone{
		ID: "zone-1", Name: "Downtown", ZipCodes: []string{"62701"}, Active: true,
	}))

	require.NoError(t, repo.Delete(context.Background(), "zone-1"))

	_, err := repo.GetByID(context.Background(), "zone-1")
	assert.Error(t, err)

	err = repo.Delete(context.Background(), "zone-1")
	assert.Error(t, err)
	_, ok := errors.IsNotFoundError(err)
	assert.True(t, ok)
}
