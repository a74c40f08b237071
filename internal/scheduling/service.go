package scheduling

import (
	"context"
	"time"

	"go.uber.org/zap"

	"tavola/internal/domain"
	apperrors "tavola/internal/errors"
)

type ZoneReader interface {
	ListActive(ctx context.Context) ([]domain.DeliveryZone, error)
}

type LocationReader interface {
	ListActive(ctx context.Context) ([]domain.PickupLocation, error)
	GetByID(ctx context.Context, id string) (*domain.PickupLocation, error)
}

type EventReader interface {
	ListActive(ctx context.Context) ([]domain.SpecialEvent, error)
}

// Service combines the pure slot generator with the special-event overlay
// and zone lookups backed by the store.
type Service struct {
	generator *Generator
	zones     ZoneReader
	locations LocationReader
	events    EventReader
	logger    *zap.Logger
}

func NewService(
	generator *Generator,
	zones ZoneReader,
	locations LocationReader,
	events EventReader,
	logger *zap.Logger,
) *Service {
	return &Service{
		generator: generator,
		zones:     zones,
		locations: locations,
		events:    events,
		logger:    logger,
	}
}

type SlotsResult struct {
	Date            string
	Slots           []domain.TimeSlot
	HasSpecialSlots bool
	EventNames      []string
}

// SlotsForDate produces the selectable slots for a date, overlaying any
// active special events whose range contains it. Holiday events replace
// everything accumulated before them in event order; non-holiday events
// are additive. Slots are not de-duplicated by id.
func (s *Service) SlotsForDate(ctx context.Context, date string) (*SlotsResult, error) {
	parsed, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, apperrors.NewValidationError("invalid date", apperrors.ValidationDetail{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}
	day := parsed.Format(dateLayout)

	events, err := s.events.ListActive(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("loading special events", err)
	}

	slots := s.generator.SlotsForDate(parsed)

	result := &SlotsResult{Date: day, Slots: slots}
	for _, event := range events {
		if !event.ContainsDate(day) {
			continue
		}
		result.HasSpecialSlots = true
		result.EventNames = append(result.EventNames, event.Name)

		if event.Holiday {
			result.Slots = nil
			s.logger.Debug("holiday event replaced slots",
				zap.String("date", day), zap.String("event", event.Name))
		}
		for _, slot := range event.Slots {
			result.Slots = append(result.Slots, slot.AsTimeSlot())
		}
	}

	return result, nil
}

// AvailableDates exposes the generator's scheduling window.
func (s *Service) AvailableDates() []string {
	return s.generator.AvailableDates()
}

// ValidScheduleDate exposes the generator's day-granularity validity check.
func (s *Service) ValidScheduleDate(date string) bool {
	return s.generator.ValidScheduleDate(date)
}

type Quote struct {
	Zone               *domain.DeliveryZone
	Fee                int
	MinimumOrderAmount int
	MeetsMinimum       bool
	EstimatedTime      string
}

// QuoteDelivery resolves the zone for a zip code and computes the delivery
// fee. A nil Zone means the address is outside every active zone. The
// minimum order amount is reported for display; it does not block a quote.
func (s *Service) QuoteDelivery(ctx context.Context, zip string, subtotal int) (*Quote, error) {
	zones, err := s.zones.ListActive(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("loading delivery zones", err)
	}

	zone := ResolveZone(zip, zones)
	if zone == nil {
		return &Quote{}, nil
	}

	return &Quote{
		Zone:               zone,
		Fee:                DeliveryFee(subtotal, *zone),
		MinimumOrderAmount: zone.MinimumOrderAmount,
		MeetsMinimum:       subtotal >= zone.MinimumOrderAmount,
		EstimatedTime:      zone.EstimatedTime,
	}, nil
}

// PickupLocations lists the active pickup locations for the checkout UI.
func (s *Service) PickupLocations(ctx context.Context) ([]domain.PickupLocation, error) {
	locations, err := s.locations.ListActive(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("loading pickup locations", err)
	}
	return locations, nil
}

// PickupLocation fetches one active pickup location for an order snapshot.
func (s *Service) PickupLocation(ctx context.Context, id string) (*domain.PickupLocation, error) {
	location, err := s.locations.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !location.Active {
		return nil, apperrors.NewNotFoundError("pickup location is not available")
	}
	return location, nil
}
