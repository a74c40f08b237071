package scheduling

import (
	"fmt"
	"time"

	"tavola/internal/config"
	"tavola/internal/domain"
)

const dateLayout = "2006-01-02"

// Generator produces the orderable time windows for a calendar date. It is
// a pure function of the date's weekday plus the configured operating
// hours; it never consults persisted state.
type Generator struct {
	openHour  int
	closeHour int
	leadDays  int
	now       func() time.Time
}

func NewGenerator(cfg config.SchedulingConfig) *Generator {
	open, close := cfg.OpenHour, cfg.CloseHour
	if open <= 0 {
		open = 11
	}
	if close <= open {
		close = 21
	}
	leadDays := cfg.LeadDays
	if leadDays <= 0 {
		leadDays = 7
	}
	return &Generator{
		openHour:  open,
		closeHour: close,
		leadDays:  leadDays,
		now:       time.Now,
	}
}

// SlotsForDate returns the hourly slots for the given date. Sundays run
// shortened hours: the first and last slots are excluded.
func (g *Generator) SlotsForDate(date time.Time) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, g.closeHour-g.openHour)
	for h := g.openHour; h < g.closeHour; h++ {
		slots = append(slots, domain.TimeSlot{
			ID:        fmt.Sprintf("%d-%d", h, h+1),
			Start:     fmt.Sprintf("%02d:00", h),
			End:       fmt.Sprintf("%02d:00", h+1),
			Display:   fmt.Sprintf("%s - %s", hourLabel(h), hourLabel(h+1)),
			Available: true,
		})
	}

	if date.Weekday() == time.Sunday && len(slots) > 2 {
		slots = slots[1 : len(slots)-1]
	}

	return slots
}

// AvailableDates returns the schedulable calendar dates: the next leadDays
// days starting tomorrow. Same-day scheduling is not offered through this
// path.
func (g *Generator) AvailableDates() []string {
	today := g.now()
	dates := make([]string, 0, g.leadDays)
	for i := 1; i <= g.leadDays; i++ {
		dates = append(dates, today.AddDate(0, 0, i).Format(dateLayout))
	}
	return dates
}

// ValidScheduleDate reports whether date (YYYY-MM-DD) is today or later,
// compared at day granularity.
func (g *Generator) ValidScheduleDate(date string) bool {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return false
	}
	return date >= g.now().Format(dateLayout)
}

func hourLabel(h int) string {
	switch {
	case h == 0 || h == 24:
		return "12:00 AM"
	case h < 12:
		return fmt.Sprintf("%d:00 AM", h)
	case h == 12:
		return "12:00 PM"
	default:
		return fmt.Sprintf("%d:00 PM", h-12)
	}
}
