package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tavola/internal/domain"
	"tavola/internal/dto"
	apperrors "tavola/internal/errors"
	"tavola/internal/scheduling"
)

// Mock implementations

type mockOrderRepository struct {
	CreateFunc   func(ctx context.Context, order domain.Order) error
	FindByIDFunc func(ctx context.Context, id string) (*domain.Order, error)
	created      []domain.Order
}

func (m *mockOrderRepository) Create(ctx context.Context, order domain.Order) error {
	m.created = append(m.created, order)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, order)
	}
	return nil
}

func (m *mockOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

type mockMenuReader struct {
	items map[string]domain.MenuItem
}

func (m *mockMenuReader) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	item, ok := m.items[id]
	if !ok {
		return nil, apperrors.NewNotFoundError("menu item not found")
	}
	return &item, nil
}

type mockSchedulingService struct {
	QuoteDeliveryFunc     func(ctx context.Context, zip string, subtotal int) (*scheduling.Quote, error)
	ValidScheduleDateFunc func(date string) bool
	PickupLocationFunc    func(ctx context.Context, id string) (*domain.PickupLocation, error)
}

func (m *mockSchedulingService) QuoteDelivery(ctx context.Context, zip string, subtotal int) (*scheduling.Quote, error) {
	return m.QuoteDeliveryFunc(ctx, zip, subtotal)
}

func (m *mockSchedulingService) ValidScheduleDate(date string) bool {
	return m.ValidScheduleDateFunc(date)
}

func (m *mockSchedulingService) PickupLocation(ctx context.Context, id string) (*domain.PickupLocation, error) {
	return m.PickupLocationFunc(ctx, id)
}

func standardMenu() *mockMenuReader {
	return &mockMenuReader{items: map[string]domain.MenuItem{
		"m1":  {ID: "m1", Name: "Margherita", Price: 1299, Available: true},
		"m2":  {ID: "m2", Name: "Tiramisu", Price: 650, Available: true},
		"m3":  {ID: "m3", Name: "Seasonal Special", Price: 1899, Available: false},
		"m4":  {ID: "m4", Name: "House Red", Price: 900, Available: true, AgeRestricted: true},
	}}
}

func deliverableScheduling() *mockSchedulingService {
	return &mockSchedulingService{
		QuoteDeliveryFunc: func(ctx context.Context, zip string, subtotal int) (*scheduling.Quote, error) {
			if zip != "10001" {
				return &scheduling.Quote{}, nil
			}
			return &scheduling.Quote{
				Zone:          &domain.DeliveryZone{ID: "z1", Fee: 499, MinimumOrderAmount: 2000},
				Fee:           499,
				EstimatedTime: "30-45 min",
				MeetsMinimum:  subtotal >= 2000,
			}, nil
		},
		ValidScheduleDateFunc: func(date string) bool { return date >= "2026-08-31" },
		PickupLocationFunc: func(ctx context.Context, id string) (*domain.PickupLocation, error) {
			if id != "loc-1" {
				return nil, apperrors.NewNotFoundError("pickup location not found")
			}
			return &domain.PickupLocation{ID: "loc-1", Name: "Main St", Active: true, EstimatedTime: "15-20 min"}, nil
		},
	}
}

func deliveryRequest() dto.CheckoutRequest {
	return dto.CheckoutRequest{
		Items: []dto.CheckoutItem{
			{MenuItemID: "m1", Quantity: 2},
			{MenuItemID: "m2", Quantity: 1},
		},
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Delivery: dto.DeliveryPayload{
			Method: domain.DeliveryMethodDelivery,
			Street: "1 Main St",
			City:   "New York",
			State:  "NY",
			Zip:    "10001",
			Phone:  "5551234567",
		},
	}
}

// Tests

func TestCheckout_Delivery(t *testing.T) {
	repo := &mockOrderRepository{}
	uc := NewCheckoutUseCase(repo, standardMenu(), deliverableScheduling(), zap.NewNop())

	result, err := uc.Checkout(context.Background(), deliveryRequest())

	require.NoError(t, err)
	assert.Equal(t, 3248, result.Subtotal)
	assert.Equal(t, 499, result.Fee)
	assert.Equal(t, 3747, result.Amount)
	assert.Equal(t, domain.OrderStatusConfirmed, result.Status)
	assert.NotEmpty(t, result.PaymentRef)

	require.Len(t, repo.created, 1)
	order := repo.created[0]
	assert.Equal(t, domain.PaymentStatusPending, order.PaymentStatus)
	assert.Equal(t, domain.DeliveryMethodDelivery, order.Delivery.Method)
	assert.Equal(t, "30-45 min", order.Delivery.EstimatedTime)
	// server-side repricing: prices come from the menu, not the client
	assert.Equal(t, 1299, order.Items[0].Price)
}

func TestCheckout_BelowMinimumStillAccepted(t *testing.T) {
	repo := &mockOrderRepository{}
	uc := NewCheckoutUseCase(repo, standardMenu(), deliverableScheduling(), zap.NewNop())

	req := deliveryRequest()
	req.Items = []dto.CheckoutItem{{MenuItemID: "m2", Quantity: 1}} // 650 < 2000 minimum

	result, err := uc.Checkout(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 650, result.Subtotal)
	assert.Equal(t, 499, result.Fee)
}

func TestCheckout_OutsideDeliveryZones(t *testing.T) {
	uc := NewCheckoutUseCase(&mockOrderRepository{}, standardMenu(), deliverableScheduling(), zap.NewNop())

	req := deliveryRequest()
	req.Delivery.Zip = "99999"

	_, err := uc.Checkout(context.Background(), req)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "delivery.zip", ve.Details[0].Field)
}

func TestCheckout_Pickup(t *testing.T) {
	repo := &mockOrderRepository{}
	uc := NewCheckoutUseCase(repo, standardMenu(), deliverableScheduling(), zap.NewNop())

	req := deliveryRequest()
	req.Delivery = dto.DeliveryPayload{
		Method:           domain.DeliveryMethodPickup,
		PickupLocationID: "loc-1",
		Phone:            "5551234567",
	}

	result, err := uc.Checkout(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 0, result.Fee)
	assert.Equal(t, result.Subtotal, result.Amount)

	order := repo.created[0]
	assert.Equal(t, "loc-1", order.Delivery.PickupLocationID)
	assert.Equal(t, "15-20 min", order.Delivery.EstimatedTime)
}

func TestCheckout_UnknownMenuItem(t *testing.T) {
	uc := NewCheckoutUseCase(&mockOrderRepository{}, standardMenu(), deliverableScheduling(), zap.NewNop())

	req := deliveryRequest()
	req.Items = []dto.CheckoutItem{{MenuItemID: "nope", Quantity: 1}}

	_, err := uc.Checkout(context.Background(), req)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "items[0].menuItemId", ve.Details[0].Field)
}

func TestCheckout_UnavailableMenuItem(t *testing.T) {
	uc := NewCheckoutUseCase(&mockOrderRepository{}, standardMenu(), deliverableScheduling(), zap.NewNop())

	req := deliveryRequest()
	req.Items = []dto.CheckoutItem{{MenuItemID: "m3", Quantity: 1}}

	_, err := uc.Checkout(context.Background(), req)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Contains(t, ve.Details[0].Message, "Seasonal Special")
}

func TestCheckout_AgeRestrictedRequiresVerification(t *testing.T) {
	uc := NewCheckoutUseCase(&mockOrderRepository{}, standardMenu(), deliverableScheduling(), zap.NewNop())

	req := deliveryRequest()
	req.Items = append(req.Items, dto.CheckoutItem{MenuItemID: "m4", Quantity: 1})

	_, err := uc.Checkout(context.Background(), req)
	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "ageVerified", ve.Details[0].Field)

	req.AgeVerified = true
	_, err = uc.Checkout(context.Background(), req)
	assert.NoError(t, err)
}

func TestCheckout_Scheduled(t *testing.T) {
	repo := &mockOrderRepository{}
	uc := NewCheckoutUseCase(repo, standardMenu(), deliverableScheduling(), zap.NewNop())

	req := deliveryRequest()
	req.Scheduled = true
	req.ScheduledInfo = &dto.SchedulePayload{Date: "2026-09-05", TimeSlot: "5:00 PM - 6:00 PM"}

	_, err := uc.Checkout(context.Background(), req)

	require.NoError(t, err)
	order := repo.created[0]
	assert.True(t, order.Scheduled)
	require.NotNil(t, order.ScheduledInfo)
	assert.Equal(t, "2026-09-05", order.ScheduledInfo.Date)
	assert.Equal(t, "5:00 PM - 6:00 PM", order.ScheduledInfo.TimeSlot)
}

func TestCheckout_ScheduledPastDateRejected(t *testing.T) {
	uc := NewCheckoutUseCase(&mockOrderRepository{}, standardMenu(), deliverableScheduling(), zap.NewNop())

	req := deliveryRequest()
	req.Scheduled = true
	req.ScheduledInfo = &dto.SchedulePayload{Date: "2026-08-01", TimeSlot: "5:00 PM - 6:00 PM"}

	_, err := uc.Checkout(context.Background(), req)

	ve, ok := apperrors.IsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "scheduledInfo.date", ve.Details[0].Field)
}

func TestCheckout_ScheduledWithoutInfoRejected(t *testing.T) {
	uc := NewCheckoutUseCase(&mockOrderRepository{}, standardMenu(), deliverableScheduling(), zap.NewNop())

	req := deliveryRequest()
	req.Scheduled = true

	_, err := uc.Checkout(context.Background(), req)

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}
