package domain

import "time"

type Order struct {
	ID            string
	Amount        int
	Status        string
	PaymentStatus string
	CustomerName  string
	CustomerEmail string
	CustomerPhone *string
	Items         []OrderItem
	Delivery      *DeliveryInfo
	Scheduled     bool
	ScheduledInfo *ScheduledInfo
	Notifications map[string]string
	AgeVerified   bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

const (
	OrderStatusConfirmed  = "confirmed"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
)

// ValidOrderStatus reports whether s is one of the four order statuses.
// Transitions between them are not guarded; any status may follow any other.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusConfirmed, OrderStatusProcessing, OrderStatusCompleted, OrderStatusCancelled:
		return true
	}
	return false
}

type OrderItem struct {
	MenuItemID string `json:"menuItemId"`
	Name       string `json:"name"`
	Price      int    `json:"price"`
	Quantity   int    `json:"quantity"`
}

// Subtotal is the item total in cents, before the delivery fee.
func (o Order) Subtotal() int {
	total := 0
	for _, item := range o.Items {
		total += item.Price * item.Quantity
	}
	return total
}

const (
	DeliveryMethodDelivery = "delivery"
	DeliveryMethodPickup   = "pickup"
)

type DeliveryInfo struct {
	Method           string  `json:"method"`
	Street           string  `json:"street,omitempty"`
	Apartment        *string `json:"apartment,omitempty"`
	City             string  `json:"city,omitempty"`
	State            string  `json:"state,omitempty"`
	Zip              string  `json:"zip,omitempty"`
	Instructions     *string `json:"instructions,omitempty"`
	PickupLocationID string  `json:"pickupLocationId,omitempty"`
	Phone            string  `json:"phone"`
	Fee              int     `json:"fee"`
	EstimatedTime    string  `json:"estimatedTime,omitempty"`
}

type ScheduledInfo struct {
	Date     string `json:"date"`
	TimeSlot string `json:"timeSlot"`
}
