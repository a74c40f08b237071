package controller

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	validatorv10 "github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tavola/internal/domain"
	"tavola/internal/dto"
	apperrors "tavola/internal/errors"
	"tavola/internal/order/service"
	"tavola/internal/payment"
	"tavola/internal/validation"
)

type CheckoutUseCase interface {
	Checkout(ctx context.Context, req dto.CheckoutRequest) (*dto.CheckoutResult, error)
}

type PaymentWebhookUseCase interface {
	HandleEvent(ctx context.Context, event payment.WebhookEvent) error
}

type StatusUpdater interface {
	UpdateStatus(ctx context.Context, orderID string, newStatus string) (*service.StatusUpdate, error)
}

type OrderReader interface {
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
}

type OrderController struct {
	checkout      CheckoutUseCase
	webhook       PaymentWebhookUseCase
	status        StatusUpdater
	orders        OrderReader
	webhookSecret string
	validate      *validatorv10.Validate
	logger        *zap.Logger
}

func NewOrderController(
	checkout CheckoutUseCase,
	webhook PaymentWebhookUseCase,
	status StatusUpdater,
	orders OrderReader,
	webhookSecret string,
	validate *validatorv10.Validate,
	logger *zap.Logger,
) *OrderController {
	return &OrderController{
		checkout:      checkout,
		webhook:       webhook,
		status:        status,
		orders:        orders,
		webhookSecret: webhookSecret,
		validate:      validate,
		logger:        logger,
	}
}

func (c *OrderController) HandleCheckout(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CheckoutRequest
	if err := validation.DecodeAndValidate(r, &req, c.validate); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		logger.Warn("checkout validation failed", zap.String("message", ve.Message))
		c.writeValidationError(w, ve)
		return
	}

	result, err := c.checkout.Checkout(r.Context(), req)
	if err != nil {
		c.handleError(w, err, logger)
		return
	}

	logger.Info("checkout accepted", zap.String("orderId", result.OrderID))
	c.writeJSON(w, http.StatusCreated, result)
}

func (c *OrderController) HandleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := c.orders.FindByID(r.Context(), chi.URLParam(r, "orderId"))
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, toOrderResponse(*order))
}

func (c *OrderController) HandlePaymentWebhook(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "unreadable request body",
		})
		return
	}

	if !payment.VerifySignature(body, r.Header.Get(payment.SignatureHeader), c.webhookSecret) {
		c.logger.Warn("payment webhook signature rejected")
		c.writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":   "UNAUTHORIZED",
			"message": "invalid webhook signature",
		})
		return
	}

	var event payment.WebhookEvent
	if err := json.Unmarshal(body, &event); err != nil {
		c.writeJSON(w, http.StatusBadRequest, map[string]string{
			"error":   "VALIDATION_ERROR",
			"message": "request body must be valid JSON",
		})
		return
	}

	if err := c.webhook.HandleEvent(r.Context(), event); err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, map[string]bool{"received": true})
}

// Admin

func (c *OrderController) HandleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := c.orders.List(r.Context())
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	responses := make([]orderResponse, len(orders))
	for i, order := range orders {
		responses[i] = toOrderResponse(order)
	}
	c.writeJSON(w, http.StatusOK, map[string]interface{}{"orders": responses})
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

func (c *OrderController) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "orderId")

	var req updateStatusRequest
	if err := validation.DecodeAndValidate(r, &req, c.validate); err != nil {
		ve, _ := apperrors.IsValidationError(err)
		c.writeValidationError(w, ve)
		return
	}

	result, err := c.status.UpdateStatus(r.Context(), orderID, req.Status)
	if err != nil {
		c.handleError(w, err, c.logger)
		return
	}

	c.writeJSON(w, http.StatusOK, dto.StatusUpdateResult{
		OrderID:           result.Order.ID,
		Status:            result.Order.Status,
		NotificationSent:  result.NotificationSent,
		NotificationError: result.NotificationError,
	})
}

// Response mapping

type orderResponse struct {
	ID            string                `json:"id"`
	Amount        int                   `json:"amount"`
	Status        string                `json:"status"`
	PaymentStatus string                `json:"paymentStatus"`
	CustomerName  string                `json:"customerName"`
	CustomerEmail string                `json:"customerEmail"`
	CustomerPhone *string               `json:"customerPhone,omitempty"`
	Items         []domain.OrderItem    `json:"items"`
	Delivery      *domain.DeliveryInfo  `json:"delivery,omitempty"`
	Scheduled     bool                  `json:"isScheduled"`
	ScheduledInfo *domain.ScheduledInfo `json:"scheduledInfo,omitempty"`
	Notifications map[string]string     `json:"notifications,omitempty"`
	CreatedAt     time.Time             `json:"createdAt"`
}

func toOrderResponse(order domain.Order) orderResponse {
	return orderResponse{
		ID:            order.ID,
		Amount:        order.Amount,
		Status:        order.Status,
		PaymentStatus: order.PaymentStatus,
		CustomerName:  order.CustomerName,
		CustomerEmail: order.CustomerEmail,
		CustomerPhone: order.CustomerPhone,
		Items:         order.Items,
		Delivery:      order.Delivery,
		Scheduled:     order.Scheduled,
		ScheduledInfo: order.ScheduledInfo,
		Notifications: order.Notifications,
		CreatedAt:     order.CreatedAt,
	}
}

// Error handling

func (c *OrderController) handleError(w http.ResponseWriter, err error, logger *zap.Logger) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		c.writeValidationError(w, ve)
		return
	}

	if nfe, ok := apperrors.IsNotFoundError(err); ok {
		c.writeJSON(w, http.StatusNotFound, map[string]string{
			"error":   "NOT_FOUND",
			"message": nfe.Message,
		})
		return
	}

	if ce, ok := apperrors.IsConflictError(err); ok {
		c.writeJSON(w, http.StatusConflict, map[string]string{
			"error":   "CONFLICT",
			"message": ce.Message,
		})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	c.writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   "INTERNAL_ERROR",
		"message": "an unexpected error occurred",
	})
}

func (c *OrderController) writeValidationError(w http.ResponseWriter, ve *apperrors.ValidationError) {
	c.writeJSON(w, http.StatusBadRequest, map[string]interface{}{
		"error":   "VALIDATION_ERROR",
		"message": ve.Message,
		"details": ve.Details,
	})
}

func (c *OrderController) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		c.logger.Error("failed to encode response", zap.Error(err))
	}
}
