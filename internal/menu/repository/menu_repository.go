package repository

import (
	"context"
	"database/sql"
	"fmt"

	"tavola/internal/domain"
	"tavola/internal/errors"
)

type MySQLMenuRepository struct {
	db *sql.DB
}

func NewMySQLMenuRepository(db *sql.DB) *MySQLMenuRepository {
	return &MySQLMenuRepository{db: db}
}

const menuColumns = `id, name, description, price, category, isAvailable, ageRestricted, createdAt, updatedAt`

func (r *MySQLMenuRepository) List(ctx context.Context) ([]domain.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM MenuItems ORDER BY category, name`
	return r.queryItems(ctx, query)
}

func (r *MySQLMenuRepository) ListAvailable(ctx context.Context) ([]domain.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM MenuItems WHERE isAvailable = 1 ORDER BY category, name`
	return r.queryItems(ctx, query)
}

func (r *MySQLMenuRepository) queryItems(ctx context.Context, query string) ([]domain.MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying menu items: %w", err)
	}
	defer rows.Close()

	var items []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		err := rows.Scan(
			&item.ID, &item.Name, &item.Description, &item.Price, &item.Category,
			&item.Available, &item.AgeRestricted, &item.CreatedAt, &item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning menu item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating menu items: %w", err)
	}

	return items, nil
}

func (r *MySQLMenuRepository) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	query := `SELECT ` + menuColumns + ` FROM MenuItems WHERE id = ?`

	var item domain.MenuItem
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&item.ID, &item.Name, &item.Description, &item.Price, &item.Category,
		&item.Available, &item.AgeRestricted, &item.CreatedAt, &item.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("menu item %s not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying menu item by id: %w", err)
	}

	return &item, nil
}

func (r *MySQLMenuRepository) Create(ctx context.Context, item domain.MenuItem) error {
	query := `
		INSERT INTO MenuItems (id, name, description, price, category, isAvailable, ageRestricted)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.Name, item.Description, item.Price, item.Category, item.Available, item.AgeRestricted,
	)
	if err != nil {
		return fmt.Errorf("inserting menu item: %w", err)
	}

	return nil
}

func (r *MySQLMenuRepository) Update(ctx context.Context, item domain.MenuItem) error {
	query := `
		UPDATE MenuItems
		SET name = ?, description = ?, price = ?, category = ?, isAvailable = ?, ageRestricted = ?
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query,
		item.Name, item.Description, item.Price, item.Category, item.Available, item.AgeRestricted, item.ID,
	)
	if err != nil {
		return fmt.Errorf("updating menu item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("menu item %s not found", item.ID))
	}

	return nil
}

func (r *MySQLMenuRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM MenuItems WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting menu item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("menu item %s not found", id))
	}

	return nil
}
