package usecase

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"tavola/internal/domain"
	apperrors "tavola/internal/errors"
	"tavola/internal/payment"
)

type mockPaymentOrderRepository struct {
	FindByIDFunc func(ctx context.Context, id string) (*domain.Order, error)
	writes       map[string]string
}

func (m *mockPaymentOrderRepository) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	return m.FindByIDFunc(ctx, id)
}

func (m *mockPaymentOrderRepository) UpdatePaymentStatus(ctx context.Context, id string, paymentStatus string) error {
	if m.writes == nil {
		m.writes = map[string]string{}
	}
	m.writes[id] = paymentStatus
	return nil
}

func existingOrderRepo() *mockPaymentOrderRepository {
	return &mockPaymentOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return &domain.Order{ID: id, Status: domain.OrderStatusConfirmed, PaymentStatus: domain.PaymentStatusPending}, nil
		},
	}
}

func TestHandleEvent_PaymentSucceeded(t *testing.T) {
	repo := existingOrderRepo()
	uc := NewPaymentWebhookUseCase(repo, zap.NewNop())

	err := uc.HandleEvent(context.Background(), payment.WebhookEvent{
		Type:    payment.EventPaymentSucceeded,
		OrderID: "ord-1",
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.writes["ord-1"] != domain.PaymentStatusPaid {
		t.Errorf("expected paymentStatus paid, got %q", repo.writes["ord-1"])
	}
}

func TestHandleEvent_PaymentFailed(t *testing.T) {
	repo := existingOrderRepo()
	uc := NewPaymentWebhookUseCase(repo, zap.NewNop())

	err := uc.HandleEvent(context.Background(), payment.WebhookEvent{
		Type:    payment.EventPaymentFailed,
		OrderID: "ord-1",
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.writes["ord-1"] != domain.PaymentStatusFailed {
		t.Errorf("expected paymentStatus failed, got %q", repo.writes["ord-1"])
	}
}

func TestHandleEvent_UnknownTypeIgnored(t *testing.T) {
	repo := existingOrderRepo()
	uc := NewPaymentWebhookUseCase(repo, zap.NewNop())

	err := uc.HandleEvent(context.Background(), payment.WebhookEvent{
		Type:    "payment.refunded",
		OrderID: "ord-1",
	})

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(repo.writes) != 0 {
		t.Errorf("expected no writes, got %v", repo.writes)
	}
}

func TestHandleEvent_OrderNotFound(t *testing.T) {
	repo := &mockPaymentOrderRepository{
		FindByIDFunc: func(ctx context.Context, id string) (*domain.Order, error) {
			return nil, apperrors.NewNotFoundError("order not found")
		},
	}
	uc := NewPaymentWebhookUseCase(repo, zap.NewNop())

	err := uc.HandleEvent(context.Background(), payment.WebhookEvent{
		Type:    payment.EventPaymentSucceeded,
		OrderID: "missing",
	})

	if _, ok := apperrors.IsNotFoundError(err); !ok {
		t.Errorf("expected not found error, got %v", err)
	}
}
