package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tavola/internal/domain"
	"tavola/internal/errors"
)

type MySQLTierRepository struct {
	db *sql.DB
}

func NewMySQLTierRepository(db *sql.DB) *MySQLTierRepository {
	return &MySQLTierRepository{db: db}
}

const tierColumns = `id, name, minPoints, multiplier, benefits, isActive, createdAt, updatedAt`

func (r *MySQLTierRepository) List(ctx context.Context) ([]domain.LoyaltyTier, error) {
	query := `SELECT ` + tierColumns + ` FROM LoyaltyTiers ORDER BY minPoints ASC`
	return r.queryTiers(ctx, query)
}

func (r *MySQLTierRepository) ListActive(ctx context.Context) ([]domain.LoyaltyTier, error) {
	query := `SELECT ` + tierColumns + ` FROM LoyaltyTiers WHERE isActive = 1 ORDER BY minPoints ASC`
	return r.queryTiers(ctx, query)
}

func (r *MySQLTierRepository) queryTiers(ctx context.Context, query string) ([]domain.LoyaltyTier, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying loyalty tiers: %w", err)
	}
	defer rows.Close()

	var tiers []domain.LoyaltyTier
	for rows.Next() {
		tier, err := scanTier(rows)
		if err != nil {
			return nil, err
		}
		tiers = append(tiers, *tier)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating loyalty tiers: %w", err)
	}

	return tiers, nil
}

func (r *MySQLTierRepository) GetByID(ctx context.Context, id string) (*domain.LoyaltyTier, error) {
	query := `SELECT ` + tierColumns + ` FROM LoyaltyTiers WHERE id = ?`

	tier, err := scanTier(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("loyalty tier %s not found", id))
	}
	if err != nil {
		return nil, err
	}

	return tier, nil
}

func (r *MySQLTierRepository) Create(ctx context.Context, tier domain.LoyaltyTier) error {
	benefits, err := json.Marshal(tier.Benefits)
	if err != nil {
		return fmt.Errorf("marshaling tier benefits: %w", err)
	}

	query := `
		INSERT INTO LoyaltyTiers (id, name, minPoints, multiplier, benefits, isActive)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		tier.ID, tier.Name, tier.MinPoints, tier.Multiplier, benefits, tier.Active,
	)
	if err != nil {
		return fmt.Errorf("inserting loyalty tier: %w", err)
	}

	return nil
}

func (r *MySQLTierRepository) Update(ctx context.Context, tier domain.LoyaltyTier) error {
	benefits, err := json.Marshal(tier.Benefits)
	if err != nil {
		return fmt.Errorf("marshaling tier benefits: %w", err)
	}

	query := `
		UPDATE LoyaltyTiers
		SET name = ?, minPoints = ?, multiplier = ?, benefits = ?, isActive = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		tier.Name, tier.MinPoints, tier.Multiplier, benefits, tier.Active, tier.ID,
	)
	if err != nil {
		return fmt.Errorf("updating loyalty tier: %w", err)
	}

	return requireRowAffected(result, fmt.Sprintf("loyalty tier %s not found", tier.ID))
}

func (r *MySQLTierRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM LoyaltyTiers WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting loyalty tier: %w", err)
	}

	return requireRowAffected(result, fmt.Sprintf("loyalty tier %s not found", id))
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTier(row rowScanner) (*domain.LoyaltyTier, error) {
	var tier domain.LoyaltyTier
	var benefits []byte

	err := row.Scan(
		&tier.ID, &tier.Name, &tier.MinPoints, &tier.Multiplier, &benefits,
		&tier.Active, &tier.CreatedAt, &tier.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning loyalty tier: %w", err)
	}

	if len(benefits) > 0 {
		if err := json.Unmarshal(benefits, &tier.Benefits); err != nil {
			return nil, fmt.Errorf("unmarshaling tier benefits: %w", err)
		}
	}

	return &tier, nil
}

func requireRowAffected(result sql.Result, notFoundMsg string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(notFoundMsg)
	}
	return nil
}
