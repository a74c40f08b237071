package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tavola/internal/domain"
	"tavola/internal/errors"
)

type MySQLAccountRepository struct {
	db *sql.DB
}

func NewMySQLAccountRepository(db *sql.DB) *MySQLAccountRepository {
	return &MySQLAccountRepository{db: db}
}

func (r *MySQLAccountRepository) GetByEmail(ctx context.Context, email string) (*domain.LoyaltyAccount, error) {
	query := `
		SELECT email, points, lifetimePoints, createdAt, updatedAt
		FROM LoyaltyAccounts
		WHERE email = ?
	`

	var account domain.LoyaltyAccount
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&account.Email, &account.Points, &account.LifetimePoints,
		&account.CreatedAt, &account.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("no loyalty account for %s", email))
	}
	if err != nil {
		return nil, fmt.Errorf("querying loyalty account: %w", err)
	}

	return &account, nil
}

// Save upserts the account balance. Last write wins; concurrent accruals
// are not serialized.
func (r *MySQLAccountRepository) Save(ctx context.Context, account domain.LoyaltyAccount) error {
	query := `
		INSERT INTO LoyaltyAccounts (email, points, lifetimePoints)
		VALUES (?, ?, ?)
		ON DUPLICATE KEY UPDATE points = VALUES(points), lifetimePoints = VALUES(lifetimePoints)
	`
	_, err := r.db.ExecContext(ctx, query, account.Email, account.Points, account.LifetimePoints)
	if err != nil {
		return fmt.Errorf("saving loyalty account: %w", err)
	}

	return nil
}

type MySQLRedemptionRepository struct {
	db *sql.DB
}

func NewMySQLRedemptionRepository(db *sql.DB) *MySQLRedemptionRepository {
	return &MySQLRedemptionRepository{db: db}
}

func (r *MySQLRedemptionRepository) Create(ctx context.Context, redemption domain.Redemption) error {
	query := `
		INSERT INTO Redemptions (id, email, rewardId, pointsSpent)
		VALUES (?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		redemption.ID, redemption.Email, redemption.RewardID, redemption.PointsSpent,
	)
	if err != nil {
		return fmt.Errorf("inserting redemption: %w", err)
	}

	return nil
}

func (r *MySQLRedemptionRepository) ListByEmail(ctx context.Context, email string) ([]domain.Redemption, error) {
	query := `
		SELECT id, email, rewardId, pointsSpent, createdAt
		FROM Redemptions
		WHERE email = ?
		ORDER BY createdAt DESC
	`

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, fmt.Errorf("querying redemptions: %w", err)
	}
	defer rows.Close()

	var redemptions []domain.Redemption
	for rows.Next() {
		var redemption domain.Redemption
		err := rows.Scan(
			&redemption.ID, &redemption.Email, &redemption.RewardID,
			&redemption.PointsSpent, &redemption.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning redemption: %w", err)
		}
		redemptions = append(redemptions, redemption)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating redemptions: %w", err)
	}

	return redemptions, nil
}
