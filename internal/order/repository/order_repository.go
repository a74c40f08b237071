package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"tavola/internal/domain"
	"tavola/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

const orderColumns = `id, amount, status, paymentStatus, customerName, customerEmail, customerPhone,
	       items, delivery, isScheduled, scheduledInfo, notifications, ageVerified, createdAt, updatedAt`

func (r *MySQLOrderRepository) Create(ctx context.Context, order domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("marshaling order items: %w", err)
	}

	var delivery, scheduledInfo interface{}
	if order.Delivery != nil {
		data, err := json.Marshal(order.Delivery)
		if err != nil {
			return fmt.Errorf("marshaling delivery info: %w", err)
		}
		delivery = data
	}
	if order.ScheduledInfo != nil {
		data, err := json.Marshal(order.ScheduledInfo)
		if err != nil {
			return fmt.Errorf("marshaling scheduled info: %w", err)
		}
		scheduledInfo = data
	}

	query := `
		INSERT INTO Orders (id, amount, status, paymentStatus, customerName, customerEmail, customerPhone,
		                    items, delivery, isScheduled, scheduledInfo, ageVerified)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.ExecContext(ctx, query,
		order.ID, order.Amount, order.Status, order.PaymentStatus,
		order.CustomerName, order.CustomerEmail, order.CustomerPhone,
		items, delivery, order.Scheduled, scheduledInfo, order.AgeVerified,
	)
	if err != nil {
		return fmt.Errorf("inserting order: %w", err)
	}

	return nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM Orders WHERE id = ?`

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order %s not found", id))
	}
	if err != nil {
		return nil, err
	}

	return order, nil
}

func (r *MySQLOrderRepository) List(ctx context.Context) ([]domain.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM Orders ORDER BY createdAt DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("querying orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating orders: %w", err)
	}

	return orders, nil
}

func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, id string, status string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE Orders SET status = ? WHERE id = ?`, status, id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	return requireRowAffected(result, fmt.Sprintf("order %s not found", id))
}

func (r *MySQLOrderRepository) UpdatePaymentStatus(ctx context.Context, id string, paymentStatus string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE Orders SET paymentStatus = ? WHERE id = ?`, paymentStatus, id)
	if err != nil {
		return fmt.Errorf("updating payment status: %w", err)
	}

	return requireRowAffected(result, fmt.Sprintf("order %s not found", id))
}

// SetNotificationSent records the per-status notification timestamp, e.g.
// notifications.completedSent. A repeated send for the same status
// overwrites the previous timestamp.
func (r *MySQLOrderRepository) SetNotificationSent(ctx context.Context, id string, status string, sentAt string) error {
	query := `
		UPDATE Orders
		SET notifications = JSON_SET(COALESCE(notifications, JSON_OBJECT()), ?, ?)
		WHERE id = ?
	`
	result, err := r.db.ExecContext(ctx, query, "$."+status+"Sent", sentAt, id)
	if err != nil {
		return fmt.Errorf("recording notification timestamp: %w", err)
	}

	return requireRowAffected(result, fmt.Sprintf("order %s not found", id))
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var items, delivery, scheduledInfo, notifications []byte

	err := row.Scan(
		&order.ID, &order.Amount, &order.Status, &order.PaymentStatus,
		&order.CustomerName, &order.CustomerEmail, &order.CustomerPhone,
		&items, &delivery, &order.Scheduled, &scheduledInfo, &notifications,
		&order.AgeVerified, &order.CreatedAt, &order.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("scanning order: %w", err)
	}

	if len(items) > 0 {
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, fmt.Errorf("unmarshaling order items: %w", err)
		}
	}
	if len(delivery) > 0 {
		order.Delivery = &domain.DeliveryInfo{}
		if err := json.Unmarshal(delivery, order.Delivery); err != nil {
			return nil, fmt.Errorf("unmarshaling delivery info: %w", err)
		}
	}
	if len(scheduledInfo) > 0 {
		order.ScheduledInfo = &domain.ScheduledInfo{}
		if err := json.Unmarshal(scheduledInfo, order.ScheduledInfo); err != nil {
			return nil, fmt.Errorf("unmarshaling scheduled info: %w", err)
		}
	}
	if len(notifications) > 0 {
		if err := json.Unmarshal(notifications, &order.Notifications); err != nil {
			return nil, fmt.Errorf("unmarshaling notifications: %w", err)
		}
	}

	return &order, nil
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
