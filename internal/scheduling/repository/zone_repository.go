package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tavola/internal/domain"
	"tavola/internal/errors"
)

type MySQLZoneRepository struct {
	db *sql.DB
}

func NewMySQLZoneRepository(db *sql.DB) *MySQLZoneRepository {
	return &MySQLZoneRepository{db: db}
}

const zoneColumns = `id, name, zipCodes, fee, minimumOrderAmount, estimatedTime, isActive, createdAt, updatedAt`

func (r *MySQLZoneRepository) List(ctx context.Context) ([]domain.DeliveryZone, error) {
	query := `SELECT ` + zoneColumns + ` FROM DeliveryZones ORDER BY createdAt ASC`
	return r.queryZones(ctx, query)
}

func (r *MySQLZoneRepository) ListActive(ctx context.Context) ([]domain.DeliveryZone, error) {
	query := `SELECT ` + zoneColumns + ` FROM DeliveryZones WHERE isActive = 1 ORDER BY createdAt ASC`
	return r.queryZones(ctx, query)
}

func (r *MySQLZoneRepository) queryZones(ctx context.Context, query string, args ...interface{}) ([]domain.DeliveryZone, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying delivery zones: %w", err)
	}
	defer rows.Close()

	var zones []domain.DeliveryZone
	for rows.Next() {
		zone, err := scanZone(rows)
		if err != nil {
			return nil, err
		}
		zones = append(zones, *zone)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating delivery zones: %w", err)
	}

	return zones, nil
}

func (r *MySQLZoneRepository) GetByID(ctx context.Context, id string) (*domain.DeliveryZone, error) {
	query := `SELECT ` + zoneColumns + ` FROM DeliveryZones WHERE id = ?`

	zone, err := scanZone(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("delivery zone %s not found", id))
	}
	if err != nil {
		return nil, err
	}

	return zone, nil
}

func (r *MySQLZoneRepository) Create(ctx context.Context, zone domain.DeliveryZone) error {
	zipCodes, err := json.Marshal(zone.ZipCodes)
	if err != nil {
		return fmt.Errorf("marshaling zip codes: %w", err)
	}

	query := `
		INSERT INTO DeliveryZones (id, name, zipCodes, fee, minimumOrderAmount, estimatedTime, isActive)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		zone.ID, zone.Name, zipCodes, zone.Fee, zone.MinimumOrderAmount, zone.EstimatedTime, zone.Active,
	)
	if err != nil {
		return fmt.Errorf("inserting delivery zone: %w", err)
	}

	return nil
}

func (r *MySQLZoneRepository) Update(ctx context.Context, zone domain.DeliveryZone) error {
	zipCodes, err := json.Marshal(zone.ZipCodes)
	if err != nil {
		return fmt.Errorf("marshaling zip codes: %w", err)
	}

	query := `
		UPDATE DeliveryZones
		SET name = ?, zipCodes = ?, fee = ?, minimumOrderAmount = ?, estimatedTime = ?, isActive = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		zone.Name, zipCodes, zone.Fee, zone.MinimumOrderAmount, zone.EstimatedTime, zone.Active, zone.ID,
	)
	if err != nil {
		return fmt.Errorf("updating delivery zone: %w", err)
	}

	return requireRowAffected(result, fmt.Sprintf("delivery zone %s not found", zone.ID))
}

func (r *MySQLZoneRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM DeliveryZones WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting delivery zone: %w", err)
	}

	return requireRowAffected(result, fmt.Sprintf("delivery zone %s not found", id))
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanZone(row rowScanner) (*domain.DeliveryZone, error) {
	var zone domain.DeliveryZone
	var zipCodes []byte

	err := row.Scan(
		&zone.ID, &zone.Name, &zipCodes, &zone.Fee, &zone.MinimumOrderAmount,
		&zone.EstimatedTime, &zone.Active, &zone.CreatedAt, &zone.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning delivery zone: %w", err)
	}

	if err := json.Unmarshal(zipCodes, &zone.ZipCodes); err != nil {
		return nil, fmt.Errorf("unmarshaling zip codes: %w", err)
	}

	return &zone, nil
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
