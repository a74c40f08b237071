package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tavola/internal/domain"
	"tavola/internal/errors"
)

type MySQLRewardRepository struct {
	db *sql.DB
}

func NewMySQLRewardRepository(db *sql.DB) *MySQLRewardRepository {
	return &MySQLRewardRepository{db: db}
}

const rewardColumns = `id, name, description, pointsCost, isActive, createdAt, updatedAt`

func (r *MySQLRewardRepository) List(ctx context.Context) ([]domain.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM Rewards ORDER BY pointsCost ASC`
	return r.queryRewards(ctx, query)
}

func (r *MySQLRewardRepository) ListActive(ctx context.Context) ([]domain.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM Rewards WHERE isActive = 1 ORDER BY pointsCost ASC`
	return r.queryRewards(ctx, query)
}

func (r *MySQLRewardRepository) queryRewards(ctx context.Context, query string) ([]domain.Reward, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying rewards: %w", err)
	}
	defer rows.Close()

	var rewards []domain.Reward
	for rows.Next() {
		var reward domain.Reward
		err := rows.Scan(
			&reward.ID, &reward.Name, &reward.Description, &reward.PointsCost,
			&reward.Active, &reward.CreatedAt, &reward.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning reward: %w", err)
		}
		rewards = append(rewards, reward)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rewards: %w", err)
	}

	return rewards, nil
}

func (r *MySQLRewardRepository) GetByID(ctx context.Context, id string) (*domain.Reward, error) {
	query := `SELECT ` + rewardColumns + ` FROM Rewards WHERE id = ?`

	var reward domain.Reward
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&reward.ID, &reward.Name, &reward.Description, &reward.PointsCost,
		&reward.Active, &reward.CreatedAt, &reward.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("reward %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying reward by id: %w", err)
	}

	return &reward, nil
}

func (r *MySQLRewardRepository) Create(ctx context.Context, reward domain.Reward) error {
	query := `
		INSERT INTO Rewards (id, name, description, pointsCost, isActive)
		VALUES (?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		reward.ID, reward.Name, reward.Description, reward.PointsCost, reward.Active,
	)
	if err != nil {
		return fmt.Errorf("inserting reward: %w", err)
	}

	return nil
}

func (r *MySQLRewardRepository) Update(ctx context.Context, reward domain.Reward) error {
	query := `
		UPDATE Rewards
		SET name = ?, description = ?, pointsCost = ?, isActive = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		reward.Name, reward.Description, reward.PointsCost, reward.Active, reward.ID,
	)
	if err != nil {
		return fmt.Errorf("updating reward: %w", err)
	}

	return requireRowAffected(result, fmt.Sprintf("reward %s not found", reward.ID))
}

func (r *MySQLRewardRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM Rewards WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting reward: %w", err)
	}

	return requireRowAffected(result, fmt.Sprintf("reward %s not found", id))
}
