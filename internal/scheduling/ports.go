package scheduling

import (
	"context"

	"tavola/internal/domain"
)

type ZoneRepository interface {
	List(ctx context.Context) ([]domain.DeliveryZone, error)
	ListActive(ctx context.Context) ([]domain.DeliveryZone, error)
	GetByID(ctx context.Context, id string) (*domain.DeliveryZone, error)
	Create(ctx context.Context, zone domain.DeliveryZone) error
	Update(ctx context.Context, zone domain.DeliveryZone) error
	Delete(ctx context.Context, id string) error
}

type LocationRepository interface {
	List(ctx context.Context) ([]domain.PickupLocation, error)
	ListActive(ctx context.Context) ([]domain.PickupLocation, error)
	GetByID(ctx context.Context, id string) (*domain.PickupLocation, error)
	Create(ctx context.Context, location domain.PickupLocation) error
	Update(ctx context.Context, location domain.PickupLocation) error
	Delete(ctx context.Context, id string) error
}

type EventRepository interface {
	List(ctx context.Context) ([]domain.SpecialEvent, error)
	ListActive(ctx context.Context) ([]domain.SpecialEvent, error)
	GetByID(ctx context.Context, id string) (*domain.SpecialEvent, error)
	Create(ctx context.Context, event domain.SpecialEvent) error
	Update(ctx context.Context, event domain.SpecialEvent) error
	Delete(ctx context.Context, id string) error
}
