package scheduling

import "tavola/internal/domain"

type QuoteRequest struct {
	Zip      string `json:"zip" validate:"required,zip5"`
	Subtotal int    `json:"subtotal" validate:"gte=0"`
}

type QuoteResponse struct {
	Deliverable        bool   `json:"deliverable"`
	ZoneID             string `json:"zoneId,omitempty"`
	ZoneName           string `json:"zoneName,omitempty"`
	Fee                int    `json:"fee,omitempty"`
	MinimumOrderAmount int    `json:"minimumOrderAmount,omitempty"`
	MeetsMinimum       bool   `json:"meetsMinimum,omitempty"`
	EstimatedTime      string `json:"estimatedTime,omitempty"`
	Message            string `json:"message,omitempty"`
}

type SlotsResponse struct {
	Date            string            `json:"date"`
	Slots           []domain.TimeSlot `json:"slots"`
	HasSpecialSlots bool              `json:"hasSpecialSlots"`
	EventNames      []string          `json:"eventNames,omitempty"`
}

type SpecialSlotPayload struct {
	ID        string `json:"id" validate:"required"`
	Start     string `json:"start" validate:"required"`
	End       string `json:"end" validate:"required"`
	Display   string `json:"display" validate:"required"`
	Available bool   `json:"available"`
	MaxOrders *int   `json:"maxOrders,omitempty" validate:"omitempty,gt=0"`
	Discount  *int   `json:"discount,omitempty" validate:"omitempty,gte=0,lte=100"`
}

type ZonePayload struct {
	Name               string   `json:"name" validate:"required"`
	ZipCodes           []string `json:"zipCodes" validate:"required,min=1,dive,zip5"`
	Fee                int      `json:"fee" validate:"gte=0"`
	MinimumOrderAmount int      `json:"minimumOrderAmount" validate:"gte=0"`
	EstimatedTime      string   `json:"estimatedTime"`
	Active             bool     `json:"active"`
}

type LocationPayload struct {
	Name          string `json:"name" validate:"required"`
	Address       string `json:"address" validate:"required"`
	Hours         string `json:"hours"`
	EstimatedTime string `json:"estimatedTime"`
	Active        bool   `json:"active"`
}

type EventPayload struct {
	Name           string               `json:"name" validate:"required"`
	Description    string               `json:"description"`
	StartDate      string               `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate        string               `json:"endDate" validate:"required,datetime=2006-01-02"`
	Slots          []SpecialSlotPayload `json:"slots" validate:"dive"`
	Holiday        bool                 `json:"isHoliday"`
	Active         bool                 `json:"active"`
	SpecialMenu    bool                 `json:"specialMenu"`
	SpecialPricing bool                 `json:"specialPricing"`
}

func (p EventPayload) toSlots() []domain.SpecialTimeSlot {
	slots := make([]domain.SpecialTimeSlot, len(p.Slots))
	for i, s := range p.Slots {
		slots[i] = domain.SpecialTimeSlot{
			ID:        s.ID,
			Start:     s.Start,
			End:       s.End,
			Display:   s.Display,
			Available: s.Available,
			MaxOrders: s.MaxOrders,
			Discount:  s.Discount,
		}
	}
	return slots
}
