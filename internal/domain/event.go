package domain

import "time"

// SpecialEvent is an admin-defined override period (holiday or promotion).
// When Holiday is true its slots replace the day's regular slots; otherwise
// they are added on top of them.
type SpecialEvent struct {
	ID             string
	Name           string
	Description    string
	StartDate      string
	EndDate        string
	Slots          []SpecialTimeSlot
	Holiday        bool
	Active         bool
	SpecialMenu    bool
	SpecialPricing bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ContainsDate reports whether date falls inside the event's inclusive
// range. Dates are YYYY-MM-DD strings, compared lexically at day
// granularity.
func (e SpecialEvent) ContainsDate(date string) bool {
	return e.StartDate <= date && date <= e.EndDate
}

// SpecialTimeSlot is a TimeSlot with an optional percentage discount.
type SpecialTimeSlot struct {
	ID        string `json:"id"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Display   string `json:"display"`
	Available bool   `json:"available"`
	MaxOrders *int   `json:"maxOrders,omitempty"`
	Discount  *int   `json:"discount,omitempty"`
}

// AsTimeSlot converts for selection UIs, dropping discount and capacity.
func (s SpecialTimeSlot) AsTimeSlot() TimeSlot {
	return TimeSlot{
		ID:        s.ID,
		Start:     s.Start,
		End:       s.End,
		Display:   s.Display,
		Available: s.Available,
	}
}
