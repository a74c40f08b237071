package dto

type CheckoutItem struct {
	MenuItemID string `json:"menuItemId" validate:"required"`
	Quantity   int    `json:"quantity" validate:"required,min=1,max=50"`
}

type DeliveryPayload struct {
	Method           string  `json:"method" validate:"required,oneof=delivery pickup"`
	Street           string  `json:"street,omitempty"`
	Apartment        *string `json:"apartment,omitempty"`
	City             string  `json:"city,omitempty"`
	State            string  `json:"state,omitempty"`
	Zip              string  `json:"zip,omitempty" validate:"omitempty,zip5"`
	Instructions     *string `json:"instructions,omitempty"`
	PickupLocationID string  `json:"pickupLocationId,omitempty"`
	Phone            string  `json:"phone" validate:"required"`
}

type SchedulePayload struct {
	Date     string `json:"date" validate:"required,datetime=2006-01-02"`
	TimeSlot string `json:"timeSlot" validate:"required"`
}

type CheckoutRequest struct {
	Items         []CheckoutItem   `json:"items" validate:"required,min=1,max=50,dive"`
	CustomerName  string           `json:"customerName" validate:"required"`
	CustomerEmail string           `json:"customerEmail" validate:"required,email"`
	CustomerPhone *string          `json:"customerPhone,omitempty"`
	Delivery      DeliveryPayload  `json:"delivery" validate:"required"`
	Scheduled     bool             `json:"isScheduled"`
	ScheduledInfo *SchedulePayload `json:"scheduledInfo,omitempty" validate:"omitempty"`
	AgeVerified   bool             `json:"ageVerified"`
}

type CheckoutResult struct {
	OrderID    string `json:"orderId"`
	PaymentRef string `json:"paymentRef"`
	Amount     int    `json:"amount"`
	Subtotal   int    `json:"subtotal"`
	Fee        int    `json:"fee"`
	Status     string `json:"status"`
}

type StatusUpdateResult struct {
	OrderID           string `json:"orderId"`
	Status            string `json:"status"`
	NotificationSent  bool   `json:"notificationSent"`
	NotificationError string `json:"notificationError,omitempty"`
}
