package domain

// TimeSlot is a bounded window an order can be scheduled into.
// MaxOrders is data-only; nothing enforces it against actual order counts.
type TimeSlot struct {
	ID        string `json:"id"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Display   string `json:"display"`
	Available bool   `json:"available"`
	MaxOrders *int   `json:"maxOrders,omitempty"`
}
