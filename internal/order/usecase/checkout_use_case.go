package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tavola/internal/domain"
	"tavola/internal/dto"
	apperrors "tavola/internal/errors"
	"tavola/internal/scheduling"
)

type OrderRepository interface {
	Create(ctx context.Context, order domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
}

type MenuReader interface {
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
}

type SchedulingService interface {
	QuoteDelivery(ctx context.Context, zip string, subtotal int) (*scheduling.Quote, error)
	ValidScheduleDate(date string) bool
	PickupLocation(ctx context.Context, id string) (*domain.PickupLocation, error)
}

// CheckoutUseCase creates an order pending payment. Items are repriced
// from the menu; the client-side cart total is never trusted.
type CheckoutUseCase struct {
	orders     OrderRepository
	menu       MenuReader
	scheduling SchedulingService
	logger     *zap.Logger
}

func NewCheckoutUseCase(
	orders OrderRepository,
	menu MenuReader,
	schedulingSvc SchedulingService,
	logger *zap.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		orders:     orders,
		menu:       menu,
		scheduling: schedulingSvc,
		logger:     logger,
	}
}

func (uc *CheckoutUseCase) Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResult, error) {
	items, ageRestricted, err := uc.priceItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	if ageRestricted && !req.AgeVerified {
		return nil, apperrors.NewValidationError("age verification required", apperrors.ValidationDetail{
			Field:   "ageVerified",
			Message: "the order contains age-restricted items",
		})
	}

	subtotal := 0
	for _, item := range items {
		subtotal += item.Price * item.Quantity
	}

	delivery, err := uc.buildDeliveryInfo(ctx, req.Delivery, subtotal)
	if err != nil {
		return nil, err
	}

	scheduledInfo, err := uc.buildScheduledInfo(req)
	if err != nil {
		return nil, err
	}

	order := domain.Order{
		ID:            uuid.New().String(),
		Amount:        subtotal + delivery.Fee,
		Status:        domain.OrderStatusConfirmed,
		PaymentStatus: domain.PaymentStatusPending,
		CustomerName:  req.CustomerName,
		CustomerEmail: req.CustomerEmail,
		CustomerPhone: req.CustomerPhone,
		Items:         items,
		Delivery:      delivery,
		Scheduled:     req.Scheduled,
		ScheduledInfo: scheduledInfo,
		AgeVerified:   req.AgeVerified,
	}

	if err := uc.orders.Create(ctx, order); err != nil {
		return nil, apperrors.NewInternalError("creating order", err)
	}

	uc.logger.Info("order created",
		zap.String("orderId", order.ID),
		zap.Int("amount", order.Amount),
		zap.String("method", delivery.Method),
		zap.Bool("scheduled", order.Scheduled))

	return &dto.CheckoutResult{
		OrderID:    order.ID,
		PaymentRef: uuid.New().String(),
		Amount:     order.Amount,
		Subtotal:   subtotal,
		Fee:        delivery.Fee,
		Status:     order.Status,
	}, nil
}

func (uc *CheckoutUseCase) priceItems(ctx context.Context, reqItems []dto.CheckoutItem) ([]domain.OrderItem, bool, error) {
	items := make([]domain.OrderItem, 0, len(reqItems))
	ageRestricted := false

	for i, reqItem := range reqItems {
		menuItem, err := uc.menu.GetByID(ctx, reqItem.MenuItemID)
		if err != nil {
			if _, ok := apperrors.IsNotFoundError(err); ok {
				return nil, false, apperrors.NewValidationError("unknown menu item", apperrors.ValidationDetail{
					Field:   fmt.Sprintf("items[%d].menuItemId", i),
					Message: "menu item does not exist",
				})
			}
			return nil, false, apperrors.NewInternalError("loading menu item", err)
		}

		if !menuItem.Available {
			return nil, false, apperrors.NewValidationError("item unavailable", apperrors.ValidationDetail{
				Field:   fmt.Sprintf("items[%d].menuItemId", i),
				Message: fmt.Sprintf("%s is currently unavailable", menuItem.Name),
			})
		}

		if menuItem.AgeRestricted {
			ageRestricted = true
		}

		items = append(items, domain.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Price:      menuItem.Price,
			Quantity:   reqItem.Quantity,
		})
	}

	return items, ageRestricted, nil
}

func (uc *CheckoutUseCase) buildDeliveryInfo(ctx context.Context, payload dto.DeliveryPayload, subtotal int) (*domain.DeliveryInfo, error) {
	switch payload.Method {
	case domain.DeliveryMethodDelivery:
		if payload.Street == "" || payload.City == "" || payload.Zip == "" {
			return nil, apperrors.NewValidationError("incomplete delivery address", apperrors.ValidationDetail{
				Field:   "delivery",
				Message: "street, city and zip are required for delivery",
			})
		}

		quote, err := uc.scheduling.QuoteDelivery(ctx, payload.Zip, subtotal)
		if err != nil {
			return nil, err
		}
		if quote.Zone == nil {
			return nil, apperrors.NewValidationError("address not deliverable", apperrors.ValidationDetail{
				Field:   "delivery.zip",
				Message: "we don't deliver to this address yet",
			})
		}

		// the zone minimum is surfaced at quote time for display only;
		// checkout does not block orders below it
		return &domain.DeliveryInfo{
			Method:        domain.DeliveryMethodDelivery,
			Street:        payload.Street,
			Apartment:     payload.Apartment,
			City:          payload.City,
			State:         payload.State,
			Zip:           payload.Zip,
			Instructions:  payload.Instructions,
			Phone:         payload.Phone,
			Fee:           quote.Fee,
			EstimatedTime: quote.EstimatedTime,
		}, nil

	case domain.DeliveryMethodPickup:
		if payload.PickupLocationID == "" {
			return nil, apperrors.NewValidationError("pickup location required", apperrors.ValidationDetail{
				Field:   "delivery.pickupLocationId",
				Message: "pickupLocationId is required for pickup",
			})
		}

		location, err := uc.scheduling.PickupLocation(ctx, payload.PickupLocationID)
		if err != nil {
			if nfe, ok := apperrors.IsNotFoundError(err); ok {
				return nil, apperrors.NewValidationError("invalid pickup location", apperrors.ValidationDetail{
					Field:   "delivery.pickupLocationId",
					Message: nfe.Message,
				})
			}
			return nil, err
		}

		return &domain.DeliveryInfo{
			Method:           domain.DeliveryMethodPickup,
			PickupLocationID: location.ID,
			Phone:            payload.Phone,
			Fee:              0,
			EstimatedTime:    location.EstimatedTime,
		}, nil

	default:
		return nil, apperrors.NewValidationError("invalid delivery method", apperrors.ValidationDetail{
			Field:   "delivery.method",
			Message: "method must be delivery or pickup",
		})
	}
}

func (uc *CheckoutUseCase) buildScheduledInfo(req dto.CheckoutRequest) (*domain.ScheduledInfo, error) {
	if !req.Scheduled {
		return nil, nil
	}

	if req.ScheduledInfo == nil {
		return nil, apperrors.NewValidationError("scheduling info required", apperrors.ValidationDetail{
			Field:   "scheduledInfo",
			Message: "scheduledInfo is required when isScheduled is true",
		})
	}

	if !uc.scheduling.ValidScheduleDate(req.ScheduledInfo.Date) {
		return nil, apperrors.NewValidationError("invalid schedule date", apperrors.ValidationDetail{
			Field:   "scheduledInfo.date",
			Message: "date must be today or later",
		})
	}

	return &domain.ScheduledInfo{
		Date:     req.ScheduledInfo.Date,
		TimeSlot: req.ScheduledInfo.TimeSlot,
	}, nil
}
