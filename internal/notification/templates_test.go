package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tavola/internal/domain"
)

func TestRenderStatusEmail_Confirmed(t *testing.T) {
	order := domain.Order{
		ID:            "3f8a9b2c-1111-2222-3333-444455556666",
		Amount:        3499,
		CustomerName:  "Ada",
		CustomerEmail: "ada@example.com",
		Scheduled:     true,
		ScheduledInfo: &domain.ScheduledInfo{Date: "2026-09-05", TimeSlot: "5:00 PM - 6:00 PM"},
	}

	msg, err := RenderStatusEmail(order, domain.OrderStatusConfirmed)

	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", msg.To)
	assert.Equal(t, "Your order is confirmed", msg.Subject)
	assert.Contains(t, msg.Body, "Hi Ada")
	assert.Contains(t, msg.Body, "#3f8a9b2c")
	assert.Contains(t, msg.Body, "$34.99")
	assert.Contains(t, msg.Body, "2026-09-05, 5:00 PM - 6:00 PM")
}

func TestRenderStatusEmail_ProcessingDelivery(t *testing.T) {
	order := domain.Order{
		ID:            "ord-1",
		CustomerName:  "Sam",
		CustomerEmail: "sam@example.com",
		Delivery:      &domain.DeliveryInfo{Method: domain.DeliveryMethodDelivery, EstimatedTime: "30-45 min"},
	}

	msg, err := RenderStatusEmail(order, domain.OrderStatusProcessing)

	require.NoError(t, err)
	assert.Contains(t, msg.Body, "Estimated delivery: 30-45 min")
}

func TestRenderStatusEmail_AllStatusesHaveTemplates(t *testing.T) {
	order := domain.Order{ID: "ord-1", CustomerName: "B", CustomerEmail: "b@example.com"}

	for _, status := range []string{
		domain.OrderStatusConfirmed,
		domain.OrderStatusProcessing,
		domain.OrderStatusCompleted,
		domain.OrderStatusCancelled,
	} {
		msg, err := RenderStatusEmail(order, status)
		require.NoError(t, err, status)
		assert.NotEmpty(t, msg.Subject, status)
		assert.NotEmpty(t, msg.Body, status)
	}
}

func TestRenderStatusEmail_UnknownStatus(t *testing.T) {
	_, err := RenderStatusEmail(domain.Order{}, "shipped")
	assert.Error(t, err)
}
