package menu

import (
	"context"

	"tavola/internal/domain"
)

type Repository interface {
	List(ctx context.Context) ([]domain.MenuItem, error)
	ListAvailable(ctx context.Context) ([]domain.MenuItem, error)
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
	Create(ctx context.Context, item domain.MenuItem) error
	Update(ctx context.Context, item domain.MenuItem) error
	Delete(ctx context.Context, id string) error
}
