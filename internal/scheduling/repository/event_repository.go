package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tavola/internal/domain"
	"tavola/internal/errors"
)

type MySQLEventRepository struct {
	db *sql.DB
}

func NewMySQLEventRepository(db *sql.DB) *MySQLEventRepository {
	return &MySQLEventRepository{db: db}
}

const eventColumns = `id, name, description, startDate, endDate, slots, isHoliday, isActive, specialMenu, specialPricing, createdAt, updatedAt`

// List and ListActive return events in insertion order; the overlay's
// holiday merge depends on that order when ranges overlap.
func (r *MySQLEventRepository) List(ctx context.Context) ([]domain.SpecialEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM SpecialEvents ORDER BY createdAt ASC`
	return r.queryEvents(ctx, query)
}

func (r *MySQLEventRepository) ListActive(ctx context.Context) ([]domain.SpecialEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM SpecialEvents WHERE isActive = 1 ORDER BY createdAt ASC`
	return r.queryEvents(ctx, query)
}

func (r *MySQLEventRepository) queryEvents(ctx context.Context, query string) ([]domain.SpecialEvent, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying special events: %w", err)
	}
	defer rows.Close()

	var events []domain.SpecialEvent
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, *event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating special events: %w", err)
	}

	return events, nil
}

func (r *MySQLEventRepository) GetByID(ctx context.Context, id string) (*domain.SpecialEvent, error) {
	query := `SELECT ` + eventColumns + ` FROM SpecialEvents WHERE id = ?`

	event, err := scanEvent(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("special event %s not found", id))
	}
	if err != nil {
		return nil, err
	}

	return event, nil
}

func (r *MySQLEventRepository) Create(ctx context.Context, event domain.SpecialEvent) error {
	slots, err := json.Marshal(event.Slots)
	if err != nil {
		return fmt.Errorf("marshaling event slots: %w", err)
	}

	query := `
		INSERT INTO SpecialEvents (id, name, description, startDate, endDate, slots, isHoliday, isActive, specialMenu, specialPricing)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		event.ID, event.Name, event.Description, event.StartDate, event.EndDate,
		slots, event.Holiday, event.Active, event.SpecialMenu, event.SpecialPricing,
	)
	if err != nil {
		return fmt.Errorf("inserting special event: %w", err)
	}

	return nil
}

func (r *MySQLEventRepository) Update(ctx context.Context, event domain.SpecialEvent) error {
	slots, err := json.Marshal(event.Slots)
	if err != nil {
		return fmt.Errorf("marshaling event slots: %w", err)
	}

	query := `
		UPDATE SpecialEvents
		SET name = ?, description = ?, startDate = ?, endDate = ?, slots = ?, isHoliday = ?, isActive = ?, specialMenu = ?, specialPricing = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		event.Name, event.Description, event.StartDate, event.EndDate, slots,
		event.Holiday, event.Active, event.SpecialMenu, event.SpecialPricing, event.ID,
	)
	if err != nil {
		return fmt.Errorf("updating special event: %w", err)
	}

	return requireRowAffected(result, fmt.Sprintf("special event %s not found", event.ID))
}

func (r *MySQLEventRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM SpecialEvents WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting special event: %w", err)
	}

	return requireRowAffected(result, fmt.Sprintf("special event %s not found", id))
}

func scanEvent(row rowScanner) (*domain.SpecialEvent, error) {
	var event domain.SpecialEvent
	var slots []byte

	err := row.Scan(
		&event.ID, &event.Name, &event.Description, &event.StartDate, &event.EndDate,
		&slots, &event.Holiday, &event.Active, &event.SpecialMenu, &event.SpecialPricing,
		&event.CreatedAt, &event.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning special event: %w", err)
	}

	if len(slots) > 0 {
		if err := json.Unmarshal(slots, &event.Slots); err != nil {
			return nil, fmt.Errorf("unmarshaling event slots: %w", err)
		}
	}

	return &event, nil
}
