package testutil

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/go-sql-driver/mysql"
)

// SetupTestDB opens the integration test database. Expects a MySQL
// instance at localhost:3306 with a 'tavola_test' schema; skips the
// test when it is not reachable.
func SetupTestDB(t *testing.T) *sql.DB {
	dsn := "root:@tcp(localhost:3306)/tavola_test?parseTime=true&charset=utf8mb4"
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Ping(); err != nil {
		t.Skipf("test database not available: %v", err)
	}

	return db
}

// CleanupTestDB truncates every table and closes the connection.
func CleanupTestDB(t *testing.T, db *sql.DB) {
	if db == nil {
		return
	}

	tables := []string{
		"Redemptions", "LoyaltyAccounts", "Rewards", "LoyaltyTiers",
		"Orders", "MenuItems", "SpecialEvents", "PickupLocations", "DeliveryZones",
	}
	for _, table := range tables {
		_, err := db.Exec(fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}

	db.Close()
}

// SetupTestTables creates the schema used by the repository tests.
func SetupTestTables(t *testing.T, db *sql.DB) {
	createDeliveryZonesTable := `
	CREATE TABLE IF NOT EXISTS DeliveryZones (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		zipCodes JSON NOT NULL,
		fee INT NOT NULL DEFAULT 0,
		minimumOrderAmount INT NOT NULL DEFAULT 0,
		estimatedTime VARCHAR(50),
		isActive TINYINT(1) NOT NULL DEFAULT 1,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createPickupLocationsTable := `
	CREATE TABLE IF NOT EXISTS PickupLocations (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		address VARCHAR(255) NOT NULL,
		hours VARCHAR(100),
		estimatedTime VARCHAR(50),
		isActive TINYINT(1) NOT NULL DEFAULT 1,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createSpecialEventsTable := `
	CREATE TABLE IF NOT EXISTS SpecialEvents (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		startDate VARCHAR(10) NOT NULL,
		endDate VARCHAR(10) NOT NULL,
		slots JSON,
		isHoliday TINYINT(1) NOT NULL DEFAULT 0,
		isActive TINYINT(1) NOT NULL DEFAULT 1,
		specialMenu TINYINT(1) NOT NULL DEFAULT 0,
		specialPricing TINYINT(1) NOT NULL DEFAULT 0,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_dates (startDate, endDate)
	)`

	createMenuItemsTable := `
	CREATE TABLE IF NOT EXISTS MenuItems (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(150) NOT NULL,
		description TEXT,
		price INT NOT NULL,
		category VARCHAR(100),
		isAvailable TINYINT(1) NOT NULL DEFAULT 1,
		ageRestricted TINYINT(1) NOT NULL DEFAULT 0,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_category (category)
	)`

	createOrdersTable := `
	CREATE TABLE IF NOT EXISTS Orders (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		amount INT NOT NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'confirmed',
		paymentStatus VARCHAR(20) NOT NULL DEFAULT 'pending',
		customerName VARCHAR(150) NOT NULL,
		customerEmail VARCHAR(150) NOT NULL,
		customerPhone VARCHAR(30),
		items JSON NOT NULL,
		delivery JSON,
		isScheduled TINYINT(1) NOT NULL DEFAULT 0,
		scheduledInfo JSON,
		notifications JSON,
		ageVerified TINYINT(1) NOT NULL DEFAULT 0,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		INDEX idx_status (status),
		INDEX idx_email (customerEmail)
	)`

	createLoyaltyTiersTable := `
	CREATE TABLE IF NOT EXISTS LoyaltyTiers (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		minPoints INT NOT NULL DEFAULT 0,
		multiplier DOUBLE NOT NULL DEFAULT 1.0,
		benefits JSON,
		isActive TINYINT(1) NOT NULL DEFAULT 1,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createRewardsTable := `
	CREATE TABLE IF NOT EXISTS Rewards (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		description TEXT,
		pointsCost INT NOT NULL,
		isActive TINYINT(1) NOT NULL DEFAULT 1,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createLoyaltyAccountsTable := `
	CREATE TABLE IF NOT EXISTS LoyaltyAccounts (
		email VARCHAR(150) NOT NULL PRIMARY KEY,
		points INT NOT NULL DEFAULT 0,
		lifetimePoints INT NOT NULL DEFAULT 0,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updatedAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`

	createRedemptionsTable := `
	CREATE TABLE IF NOT EXISTS Redemptions (
		id VARCHAR(36) NOT NULL PRIMARY KEY,
		email VARCHAR(150) NOT NULL,
		rewardId VARCHAR(36) NOT NULL,
		pointsSpent INT NOT NULL,
		createdAt DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		INDEX idx_email (email)
	)`

	tables := []struct {
		name  string
		query string
	}{
		{"DeliveryZones", createDeliveryZonesTable},
		{"PickupLocations", createPickupLocationsTable},
		{"SpecialEvents", createSpecialEventsTable},
		{"MenuItems", createMenuItemsTable},
		{"Orders", createOrdersTable},
		{"LoyaltyTiers", createLoyaltyTiersTable},
		{"Rewards", createRewardsTable},
		{"LoyaltyAccounts", createLoyaltyAccountsTable},
		{"Redemptions", createRedemptionsTable},
	}

	for _, tbl := range tables {
		_, err := db.Exec(tbl.query)
		if err != nil {
			t.Logf("failed to create table %s: %v", tbl.name, err)
		}
	}
}
