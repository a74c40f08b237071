package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrderStatus(t *testing.T) {
	for _, s := range []string{OrderStatusConfirmed, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled} {
		assert.True(t, ValidOrderStatus(s), s)
	}

	assert.False(t, ValidOrderStatus("pending"))
	assert.False(t, ValidOrderStatus("CONFIRMED"))
	assert.False(t, ValidOrderStatus(""))
}

func TestOrder_Subtotal(t *testing.T) {
	order := Order{
		Items: []OrderItem{
			{MenuItemID: "m1", Name: "Margherita", Price: 1299, Quantity: 2},
			{MenuItemID: "m2", Name: "Tiramisu", Price: 650, Quantity: 1},
		},
	}

	assert.Equal(t, 3248, order.Subtotal())
}

func TestOrder_Subtotal_Empty(t *testing.T) {
	assert.Equal(t, 0, Order{}.Subtotal())
}
