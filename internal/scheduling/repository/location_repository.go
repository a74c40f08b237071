package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tavola/internal/domain"
	"tavola/internal/errors"
)

type MySQLLocationRepository struct {
	db *sql.DB
}

func NewMySQLLocationRepository(db *sql.DB) *MySQLLocationRepository {
	return &MySQLLocationRepository{db: db}
}

const locationColumns = `id, name, address, hours, estimatedTime, isActive, createdAt, updatedAt`

func (r *MySQLLocationRepository) List(ctx context.Context) ([]domain.PickupLocation, error) {
	query := `SELECT ` + locationColumns + ` FROM PickupLocations ORDER BY createdAt ASC`
	return r.queryLocations(ctx, query)
}

func (r *MySQLLocationRepository) ListActive(ctx context.Context) ([]domain.PickupLocation, error) {
	query := `SELECT ` + locationColumns + ` FROM PickupLocations WHERE isActive = 1 ORDER BY createdAt ASC`
	return r.queryLocations(ctx, query)
}

func (r *MySQLLocationRepository) queryLocations(ctx context.Context, query string) ([]domain.PickupLocation, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying pickup locations: %w", err)
	}
	defer rows.Close()

	var locations []domain.PickupLocation
	for rows.Next() {
		var loc domain.PickupLocation
		err := rows.Scan(
			&loc.ID, &loc.Name, &loc.Address, &loc.Hours, &loc.EstimatedTime,
			&loc.Active, &loc.CreatedAt, &loc.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning pickup location: %w", err)
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pickup locations: %w", err)
	}

	return locations, nil
}

func (r *MySQLLocationRepository) GetByID(ctx context.Context, id string) (*domain.PickupLocation, error) {
	query := `SELECT ` + locationColumns + ` FROM PickupLocations WHERE id = ?`

	var loc domain.PickupLocation
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&loc.ID, &loc.Name, &loc.Address, &loc.Hours, &loc.EstimatedTime,
		&loc.Active, &loc.CreatedAt, &loc.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("pickup location %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying pickup location by id: %w", err)
	}

	return &loc, nil
}

func (r *MySQLLocationRepository) Create(ctx context.Context, location domain.PickupLocation) error {
	query := `
		INSERT INTO PickupLocations (id, name, address, hours, estimatedTime, isActive)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		location.ID, location.Name, location.Address, location.Hours, location.EstimatedTime, location.Active,
	)
	if err != nil {
		return fmt.Errorf("inserting pickup location: %w", err)
	}

	return nil
}

func (r *MySQLLocationRepository) Update(ctx context.Context, location domain.PickupLocation) error {
	query := `
		UPDATE PickupLocations
		SET name = ?, address = ?, hours = ?, estimatedTime = ?, isActive = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		location.Name, location.Address, location.Hours, location.EstimatedTime, location.Active, location.ID,
	)
	if err != nil {
		return fmt.Errorf("updating pickup location: %w", err)
	}

	return requireRowAffected(result, fmt.Sprintf("pickup location %s not found", location.ID))
}

func (r *MySQLLocationRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM PickupLocations WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting pickup location: %w", err)
	}

	return requireRowAffected(result, fmt.Sprintf("pickup location %s not found", id))
}
